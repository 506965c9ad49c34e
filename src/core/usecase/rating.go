package usecase

import (
	"context"
	"log/slog"
	"time"

	"squadrate/src/core/domain"
	"squadrate/src/core/ports"
)

// RatingService handles rating submission, order, and progress.
type RatingService struct {
	repo ports.RatingRepository
	log  *slog.Logger
	now  func() time.Time
}

func NewRatingService(repo ports.RatingRepository, log *slog.Logger) *RatingService {
	return &RatingService{repo: repo, log: log, now: time.Now}
}

// Order returns the rater's deterministic rating order for today: every other
// roster member, shuffled per (rater, UTC day).
func (s *RatingService) Order(ctx context.Context, rater string) ([]string, error) {
	players, err := s.repo.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name)
	}
	return domain.RatingOrder(rater, names, s.now()), nil
}

// Submit records the rater's full rating set for the current round.
// Submission is one-shot: a second attempt in the same round is a conflict.
func (s *RatingService) Submit(ctx context.Context, rater string, entries []domain.RatingEntry) error {
	player, err := s.repo.GetPlayer(ctx, rater)
	if err != nil {
		return err
	}
	if !player.CanRate {
		return domain.NewForbiddenError("player is excluded from rating")
	}

	round, err := s.repo.GetCurrentRound(ctx)
	if err != nil {
		return err
	}
	if round.Locked {
		return domain.NewConflictError("round is locked")
	}

	if err := s.validateEntries(ctx, rater, entries); err != nil {
		return err
	}

	submitted, err := s.repo.HasSubmitted(ctx, round.ID, rater)
	if err != nil {
		return err
	}
	if submitted {
		return domain.NewConflictError("already submitted this round")
	}

	if err := s.repo.InsertRatings(ctx, round.ID, rater, entries); err != nil {
		return err
	}
	s.log.Info("ratings submitted", "round_id", round.ID, "rater", rater, "count", len(entries))
	return nil
}

func (s *RatingService) validateEntries(ctx context.Context, rater string, entries []domain.RatingEntry) error {
	if len(entries) == 0 {
		return domain.NewValidationError("ratings", "cannot be empty")
	}

	players, err := s.repo.ListPlayers(ctx)
	if err != nil {
		return err
	}
	roster := make(map[string]bool, len(players))
	for _, p := range players {
		roster[p.Name] = true
	}

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Score < domain.MinScore || e.Score > domain.MaxScore {
			return domain.NewValidationError("score", "must be between 1 and 10")
		}
		if e.Ratee == rater {
			return domain.NewValidationError("ratee", "cannot rate yourself")
		}
		if !roster[e.Ratee] {
			return domain.NewValidationError("ratee", "unknown player: "+e.Ratee)
		}
		if seen[e.Ratee] {
			return domain.NewValidationError("ratee", "duplicate ratee: "+e.Ratee)
		}
		seen[e.Ratee] = true
	}
	return nil
}

// StatusResult describes submission progress for the current round.
type StatusResult struct {
	RoundID   int64
	Locked    bool
	Submitted int
	Eligible  int
	Done      bool
	Mine      bool
}

// Status reports how many eligible players have submitted and whether the
// caller has.
func (s *RatingService) Status(ctx context.Context, rater string) (*StatusResult, error) {
	round, err := s.repo.GetCurrentRound(ctx)
	if err != nil {
		return nil, err
	}
	progress, err := s.repo.GetRoundProgress(ctx, round.ID)
	if err != nil {
		return nil, err
	}
	mine, err := s.repo.HasSubmitted(ctx, round.ID, rater)
	if err != nil {
		return nil, err
	}
	return &StatusResult{
		RoundID:   round.ID,
		Locked:    round.Locked,
		Submitted: progress.Submitted,
		Eligible:  progress.Eligible,
		Done:      leaderboardReady(progress),
		Mine:      mine,
	}, nil
}

// leaderboardReady is the readiness rule: every currently eligible player has
// submitted. Raters excluded after submitting can push Submitted past
// Eligible, so >= rather than == keeps the board from wedging.
func leaderboardReady(p *ports.RoundProgress) bool {
	return p.Submitted >= p.Eligible
}
