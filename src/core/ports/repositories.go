// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"squadrate/src/core/domain"
)

// Repository is the base interface for all repositories.
// Concrete repositories should embed this and add entity-specific methods.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// LeaderboardEntry is one ratee's aggregate standing.
type LeaderboardEntry struct {
	Ratee   string  `json:"name"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// RoundProgress counts submissions against the eligible raters of a round.
type RoundProgress struct {
	Submitted int
	Eligible  int
}

// CommentView is a comment decorated with vote counts and the viewer's vote.
type CommentView struct {
	Comment  domain.Comment
	Likes    int
	Dislikes int
	MyVote   *domain.VoteKind
}

// VoteCounts holds the like/dislike tallies for a single comment.
type VoteCounts struct {
	Likes    int
	Dislikes int
}

// RatingRepository is a composite repository covering all domain operations.
type RatingRepository interface {
	Repository

	// Players
	GetPlayer(ctx context.Context, name string) (*domain.Player, error)
	ListPlayers(ctx context.Context) ([]domain.Player, error)
	CreatePlayer(ctx context.Context, name, password string, canRate bool) (*domain.Player, error)
	DeletePlayer(ctx context.Context, name string) error
	SetCanRate(ctx context.Context, name string, canRate bool) error

	// Rounds. The current round is the one with the greatest ID; a seed
	// migration guarantees at least one exists.
	GetCurrentRound(ctx context.Context) (*domain.Round, error)
	SetRoundLocked(ctx context.Context, roundID int64, locked bool) (*domain.Round, error)
	// ResetRound locks the current round and opens a fresh one atomically,
	// returning the new current round.
	ResetRound(ctx context.Context) (*domain.Round, error)

	// Ratings
	HasSubmitted(ctx context.Context, matchID int64, rater string) (bool, error)
	// InsertRatings writes a rater's full submission in one transaction.
	// A duplicate submission surfaces as a conflict error.
	InsertRatings(ctx context.Context, matchID int64, rater string, entries []domain.RatingEntry) error
	GetRoundProgress(ctx context.Context, matchID int64) (*RoundProgress, error)
	GetRoundLeaderboard(ctx context.Context, matchID int64) ([]LeaderboardEntry, error)
	// GetOverallLeaderboard aggregates ratings across all locked rounds.
	GetOverallLeaderboard(ctx context.Context) ([]LeaderboardEntry, error)

	// Comments
	CreateComment(ctx context.Context, matchID int64, body string) (*domain.Comment, error)
	GetComment(ctx context.Context, commentID int64) (*domain.Comment, error)
	ListComments(ctx context.Context, matchID int64, viewer string) ([]CommentView, error)
	DeleteComment(ctx context.Context, commentID int64) error

	// Comment votes. GetCommentVote returns nil when the voter has no stored
	// vote; UpsertCommentVote inserts or switches in a single statement
	// guarded by the (comment_id, voter) primary key.
	GetCommentVote(ctx context.Context, commentID int64, voter string) (*domain.VoteKind, error)
	UpsertCommentVote(ctx context.Context, commentID int64, voter string, kind domain.VoteKind) error
	DeleteCommentVote(ctx context.Context, commentID int64, voter string) error
	CountCommentVotes(ctx context.Context, commentID int64) (*VoteCounts, error)
}
