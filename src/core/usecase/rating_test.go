package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"squadrate/src/core/domain"
)

func entriesFor(score int, ratees ...string) []domain.RatingEntry {
	entries := make([]domain.RatingEntry, 0, len(ratees))
	for _, r := range ratees {
		entries = append(entries, domain.RatingEntry{Ratee: r, Score: score})
	}
	return entries
}

func TestSubmitHappyPath(t *testing.T) {
	r := newTestRepo(t, "alice", "bob", "carol")
	svc := NewRatingService(r, testLogger())

	err := svc.Submit(context.Background(), "alice", entriesFor(7, "bob", "carol"))
	require.NoError(t, err)

	submitted, err := r.HasSubmitted(context.Background(), 1, "alice")
	require.NoError(t, err)
	assert.True(t, submitted)
}

func TestSubmitTwiceIsConflict(t *testing.T) {
	r := newTestRepo(t, "alice", "bob")
	svc := NewRatingService(r, testLogger())

	require.NoError(t, svc.Submit(context.Background(), "alice", entriesFor(5, "bob")))

	err := svc.Submit(context.Background(), "alice", entriesFor(9, "bob"))
	assert.True(t, domain.IsConflict(err), "expected conflict, got %v", err)
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		entries []domain.RatingEntry
	}{
		{"empty", nil},
		{"score too low", entriesFor(0, "bob")},
		{"score too high", entriesFor(11, "bob")},
		{"self rating", entriesFor(5, "alice")},
		{"unknown ratee", entriesFor(5, "mallory")},
		{"duplicate ratee", entriesFor(5, "bob", "bob")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRepo(t, "alice", "bob")
			svc := NewRatingService(r, testLogger())

			err := svc.Submit(context.Background(), "alice", tt.entries)
			assert.True(t, domain.IsValidationError(err), "expected validation error, got %v", err)
		})
	}
}

func TestSubmitExcludedPlayerForbidden(t *testing.T) {
	r := newTestRepo(t, "alice", "bob")
	require.NoError(t, r.SetCanRate(context.Background(), "alice", false))
	svc := NewRatingService(r, testLogger())

	err := svc.Submit(context.Background(), "alice", entriesFor(5, "bob"))
	assert.True(t, domain.IsForbidden(err), "expected forbidden, got %v", err)
}

func TestSubmitLockedRoundConflict(t *testing.T) {
	r := newTestRepo(t, "alice", "bob")
	_, err := r.SetRoundLocked(context.Background(), 1, true)
	require.NoError(t, err)
	svc := NewRatingService(r, testLogger())

	err = svc.Submit(context.Background(), "alice", entriesFor(5, "bob"))
	assert.True(t, domain.IsConflict(err), "expected conflict, got %v", err)
}

func TestStatusTracksProgress(t *testing.T) {
	r := newTestRepo(t, "alice", "bob", "carol")
	svc := NewRatingService(r, testLogger())
	ctx := context.Background()

	status, err := svc.Status(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 0, status.Submitted)
	assert.Equal(t, 3, status.Eligible)
	assert.False(t, status.Done)
	assert.False(t, status.Mine)

	require.NoError(t, svc.Submit(ctx, "alice", entriesFor(6, "bob", "carol")))

	status, err = svc.Status(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, status.Submitted)
	assert.True(t, status.Mine)
	assert.False(t, status.Done)

	require.NoError(t, svc.Submit(ctx, "bob", entriesFor(6, "alice", "carol")))
	require.NoError(t, svc.Submit(ctx, "carol", entriesFor(6, "alice", "bob")))

	status, err = svc.Status(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 3, status.Submitted)
	assert.True(t, status.Done)
}

func TestStatusDoneWhenRaterExcludedAfterSubmitting(t *testing.T) {
	r := newTestRepo(t, "alice", "bob")
	svc := NewRatingService(r, testLogger())
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx, "alice", entriesFor(8, "bob")))
	require.NoError(t, svc.Submit(ctx, "bob", entriesFor(8, "alice")))
	require.NoError(t, r.SetCanRate(ctx, "bob", false))

	// Submitted (2) now exceeds eligible (1); the board must not wedge.
	status, err := svc.Status(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, status.Done)
}

func TestOrderIsStableWithinADay(t *testing.T) {
	r := newTestRepo(t, "alice", "bob", "carol", "dave", "erin")
	svc := NewRatingService(r, testLogger())
	svc.now = func() time.Time { return time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC) }

	first, err := svc.Order(context.Background(), "alice")
	require.NoError(t, err)
	second, err := svc.Order(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 4)
	assert.NotContains(t, first, "alice")
}
