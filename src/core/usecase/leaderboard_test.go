package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"squadrate/src/core/domain"
)

func TestLeaderboardWithheldUntilReady(t *testing.T) {
	r := newTestRepo(t, "alice", "bob", "carol")
	ratings := NewRatingService(r, testLogger())
	boards := NewLeaderboardService(r, testLogger())
	ctx := context.Background()

	require.NoError(t, ratings.Submit(ctx, "alice", entriesFor(8, "bob", "carol")))

	board, err := boards.Current(ctx)
	require.NoError(t, err)
	assert.False(t, board.Ready)
	assert.Equal(t, 1, board.Submitted)
	assert.Equal(t, 3, board.Eligible)
	assert.Empty(t, board.Entries)
}

func TestLeaderboardReadyWithAverages(t *testing.T) {
	r := newTestRepo(t, "alice", "bob", "carol")
	ratings := NewRatingService(r, testLogger())
	boards := NewLeaderboardService(r, testLogger())
	ctx := context.Background()

	require.NoError(t, ratings.Submit(ctx, "alice", entriesFor(8, "bob", "carol")))
	require.NoError(t, ratings.Submit(ctx, "bob", []domain.RatingEntry{
		{Ratee: "alice", Score: 10},
		{Ratee: "carol", Score: 4},
	}))
	require.NoError(t, ratings.Submit(ctx, "carol", []domain.RatingEntry{
		{Ratee: "alice", Score: 10},
		{Ratee: "bob", Score: 2},
	}))

	board, err := boards.Current(ctx)
	require.NoError(t, err)
	require.True(t, board.Ready)
	require.Len(t, board.Entries, 3)

	// alice: (10+10)/2 = 10, carol: (8+4)/2 = 6, bob: (8+2)/2 = 5
	assert.Equal(t, "alice", board.Entries[0].Ratee)
	assert.InDelta(t, 10.0, board.Entries[0].Average, 1e-9)
	assert.Equal(t, "carol", board.Entries[1].Ratee)
	assert.InDelta(t, 6.0, board.Entries[1].Average, 1e-9)
	assert.Equal(t, "bob", board.Entries[2].Ratee)
	assert.InDelta(t, 5.0, board.Entries[2].Average, 1e-9)
	assert.Equal(t, 2, board.Entries[0].Count)
}

func TestOverallCoversOnlyLockedRounds(t *testing.T) {
	r := newTestRepo(t, "alice", "bob")
	ratings := NewRatingService(r, testLogger())
	rounds := NewRoundService(r, testLogger())
	boards := NewLeaderboardService(r, testLogger())
	ctx := context.Background()

	require.NoError(t, ratings.Submit(ctx, "alice", entriesFor(4, "bob")))

	// Nothing locked yet, so overall is empty.
	entries, err := boards.Overall(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Reset locks round 1; its ratings become history.
	_, err = rounds.Reset(ctx)
	require.NoError(t, err)

	require.NoError(t, ratings.Submit(ctx, "alice", entriesFor(10, "bob")))

	entries, err = boards.Overall(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "bob", entries[0].Ratee)
	assert.InDelta(t, 4.0, entries[0].Average, 1e-9)
}
