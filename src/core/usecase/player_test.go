package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"squadrate/src/core/domain"
)

func TestAddPlayer(t *testing.T) {
	r := newTestRepo(t)
	svc := NewPlayerService(r, "admin", testLogger())

	player, err := svc.Add(context.Background(), "  dave  ", "secret", true)
	require.NoError(t, err)
	assert.Equal(t, "dave", player.Name)
	assert.True(t, player.CanRate)

	_, err = svc.Add(context.Background(), "dave", "other", false)
	assert.True(t, domain.IsConflict(err))
}

func TestAddPlayerValidation(t *testing.T) {
	r := newTestRepo(t)
	svc := NewPlayerService(r, "admin", testLogger())

	_, err := svc.Add(context.Background(), "", "pw", true)
	assert.True(t, domain.IsValidationError(err))

	_, err = svc.Add(context.Background(), strings.Repeat("n", 51), "pw", true)
	assert.True(t, domain.IsValidationError(err))

	_, err = svc.Add(context.Background(), "dave", "", true)
	assert.True(t, domain.IsValidationError(err))
}

func TestRemovePlayer(t *testing.T) {
	r := newTestRepo(t, "admin", "alice")
	svc := NewPlayerService(r, "admin", testLogger())
	ctx := context.Background()

	require.NoError(t, svc.Remove(ctx, "alice"))
	assert.True(t, domain.IsNotFound(svc.Remove(ctx, "alice")))
	assert.True(t, domain.IsConflict(svc.Remove(ctx, "admin")))
}

func TestRemovePlayerCascadesRatings(t *testing.T) {
	r := newTestRepo(t, "admin", "alice", "bob")
	players := NewPlayerService(r, "admin", testLogger())
	ratings := NewRatingService(r, testLogger())
	ctx := context.Background()

	require.NoError(t, ratings.Submit(ctx, "alice", entriesFor(7, "bob", "admin")))
	require.NoError(t, players.Remove(ctx, "alice"))

	progress, err := r.GetRoundProgress(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, progress.Submitted)
}

func TestSetEligibility(t *testing.T) {
	r := newTestRepo(t, "alice")
	svc := NewPlayerService(r, "admin", testLogger())
	ctx := context.Background()

	player, err := svc.SetEligibility(ctx, "alice", false)
	require.NoError(t, err)
	assert.False(t, player.CanRate)

	_, err = svc.SetEligibility(ctx, "mallory", false)
	assert.True(t, domain.IsNotFound(err))
}
