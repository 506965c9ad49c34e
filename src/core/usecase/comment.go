package usecase

import (
	"context"
	"log/slog"
	"strings"

	"squadrate/src/core/domain"
	"squadrate/src/core/ports"
)

// CommentService handles anonymous round comments and vote toggling.
type CommentService struct {
	repo ports.RatingRepository
	log  *slog.Logger
}

func NewCommentService(repo ports.RatingRepository, log *slog.Logger) *CommentService {
	return &CommentService{repo: repo, log: log}
}

// Post adds an anonymous comment to the current round.
func (s *CommentService) Post(ctx context.Context, body string) (*domain.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, domain.NewValidationError("body", "cannot be empty")
	}
	if len(body) > domain.MaxCommentLength {
		return nil, domain.NewValidationError("body", "too long")
	}

	round, err := s.repo.GetCurrentRound(ctx)
	if err != nil {
		return nil, err
	}
	if round.Locked {
		return nil, domain.NewConflictError("round is locked")
	}

	return s.repo.CreateComment(ctx, round.ID, body)
}

// List returns the current round's comments, newest first, with vote counts
// and the viewer's own vote.
func (s *CommentService) List(ctx context.Context, viewer string) ([]ports.CommentView, error) {
	round, err := s.repo.GetCurrentRound(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListComments(ctx, round.ID, viewer)
}

// VoteResult is the outcome of a vote transition.
type VoteResult struct {
	CommentID int64
	Likes     int
	Dislikes  int
	// MyVote is the voter's stored vote after the transition; nil after a
	// toggle-off.
	MyVote *domain.VoteKind
}

// Vote applies the toggle contract for (voter, comment):
// no stored vote -> insert; same kind -> clear; opposite kind -> switch.
func (s *CommentService) Vote(ctx context.Context, commentID int64, voter string, kind domain.VoteKind) (*VoteResult, error) {
	if !kind.Valid() {
		return nil, domain.NewValidationError("kind", "must be like or dislike")
	}

	comment, err := s.repo.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	round, err := s.repo.GetCurrentRound(ctx)
	if err != nil {
		return nil, err
	}
	if comment.MatchID != round.ID {
		return nil, domain.NewConflictError("comment belongs to a previous round")
	}

	current, err := s.repo.GetCommentVote(ctx, commentID, voter)
	if err != nil {
		return nil, err
	}

	var resulting *domain.VoteKind
	switch {
	case current != nil && *current == kind:
		if err := s.repo.DeleteCommentVote(ctx, commentID, voter); err != nil {
			return nil, err
		}
	default:
		// Covers both the first vote and the switch; the upsert is guarded
		// by the (comment_id, voter) primary key.
		if err := s.repo.UpsertCommentVote(ctx, commentID, voter, kind); err != nil {
			return nil, err
		}
		resulting = &kind
	}

	counts, err := s.repo.CountCommentVotes(ctx, commentID)
	if err != nil {
		return nil, err
	}
	return &VoteResult{
		CommentID: commentID,
		Likes:     counts.Likes,
		Dislikes:  counts.Dislikes,
		MyVote:    resulting,
	}, nil
}

// Delete removes a comment and its votes. Admin moderation only.
func (s *CommentService) Delete(ctx context.Context, commentID int64) error {
	if err := s.repo.DeleteComment(ctx, commentID); err != nil {
		return err
	}
	s.log.Info("comment deleted", "comment_id", commentID)
	return nil
}
