package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"squadrate/src/core/domain"
)

func TestPostComment(t *testing.T) {
	r := newTestRepo(t, "alice")
	svc := NewCommentService(r, testLogger())

	comment, err := svc.Post(context.Background(), "  good hustle out there  ")
	require.NoError(t, err)
	assert.Equal(t, "good hustle out there", comment.Body)
	assert.Equal(t, int64(1), comment.MatchID)
}

func TestPostCommentValidation(t *testing.T) {
	r := newTestRepo(t, "alice")
	svc := NewCommentService(r, testLogger())

	_, err := svc.Post(context.Background(), "   ")
	assert.True(t, domain.IsValidationError(err))

	_, err = svc.Post(context.Background(), strings.Repeat("x", domain.MaxCommentLength+1))
	assert.True(t, domain.IsValidationError(err))
}

func TestPostCommentLockedRound(t *testing.T) {
	r := newTestRepo(t, "alice")
	_, err := r.SetRoundLocked(context.Background(), 1, true)
	require.NoError(t, err)
	svc := NewCommentService(r, testLogger())

	_, err = svc.Post(context.Background(), "too late")
	assert.True(t, domain.IsConflict(err))
}

func TestVoteToggleTransitions(t *testing.T) {
	r := newTestRepo(t, "alice", "bob")
	svc := NewCommentService(r, testLogger())
	ctx := context.Background()

	comment, err := svc.Post(ctx, "nice defense")
	require.NoError(t, err)

	// none -> like
	res, err := svc.Vote(ctx, comment.ID, "bob", domain.VoteLike)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Likes)
	assert.Equal(t, 0, res.Dislikes)
	require.NotNil(t, res.MyVote)
	assert.Equal(t, domain.VoteLike, *res.MyVote)

	// like -> dislike (switch)
	res, err = svc.Vote(ctx, comment.ID, "bob", domain.VoteDislike)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Likes)
	assert.Equal(t, 1, res.Dislikes)
	require.NotNil(t, res.MyVote)
	assert.Equal(t, domain.VoteDislike, *res.MyVote)

	// dislike -> dislike (toggle off)
	res, err = svc.Vote(ctx, comment.ID, "bob", domain.VoteDislike)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Likes)
	assert.Equal(t, 0, res.Dislikes)
	assert.Nil(t, res.MyVote)
}

func TestVoteCountsAcrossVoters(t *testing.T) {
	r := newTestRepo(t, "alice", "bob", "carol")
	svc := NewCommentService(r, testLogger())
	ctx := context.Background()

	comment, err := svc.Post(ctx, "we should rotate more")
	require.NoError(t, err)

	_, err = svc.Vote(ctx, comment.ID, "alice", domain.VoteLike)
	require.NoError(t, err)
	_, err = svc.Vote(ctx, comment.ID, "bob", domain.VoteLike)
	require.NoError(t, err)
	res, err := svc.Vote(ctx, comment.ID, "carol", domain.VoteDislike)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Likes)
	assert.Equal(t, 1, res.Dislikes)

	views, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 2, views[0].Likes)
	assert.Equal(t, 1, views[0].Dislikes)
	require.NotNil(t, views[0].MyVote)
	assert.Equal(t, domain.VoteLike, *views[0].MyVote)
}

func TestVoteValidation(t *testing.T) {
	r := newTestRepo(t, "alice")
	svc := NewCommentService(r, testLogger())
	ctx := context.Background()

	comment, err := svc.Post(ctx, "hello")
	require.NoError(t, err)

	_, err = svc.Vote(ctx, comment.ID, "alice", domain.VoteKind("meh"))
	assert.True(t, domain.IsValidationError(err))

	_, err = svc.Vote(ctx, 999, "alice", domain.VoteLike)
	assert.True(t, domain.IsNotFound(err))
}

func TestVoteOnPreviousRoundConflict(t *testing.T) {
	r := newTestRepo(t, "alice")
	comments := NewCommentService(r, testLogger())
	rounds := NewRoundService(r, testLogger())
	ctx := context.Background()

	comment, err := comments.Post(ctx, "old news")
	require.NoError(t, err)

	_, err = rounds.Reset(ctx)
	require.NoError(t, err)

	_, err = comments.Vote(ctx, comment.ID, "alice", domain.VoteLike)
	assert.True(t, domain.IsConflict(err))
}

func TestDeleteComment(t *testing.T) {
	r := newTestRepo(t, "alice")
	svc := NewCommentService(r, testLogger())
	ctx := context.Background()

	comment, err := svc.Post(ctx, "bye")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, comment.ID))
	assert.True(t, domain.IsNotFound(svc.Delete(ctx, comment.ID)))
}
