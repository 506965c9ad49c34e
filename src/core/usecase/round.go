package usecase

import (
	"context"
	"log/slog"

	"squadrate/src/core/domain"
	"squadrate/src/core/ports"
)

// RoundService handles round lifecycle.
type RoundService struct {
	repo ports.RatingRepository
	log  *slog.Logger
}

func NewRoundService(repo ports.RatingRepository, log *slog.Logger) *RoundService {
	return &RoundService{repo: repo, log: log}
}

// Current returns the current round.
func (s *RoundService) Current(ctx context.Context) (*domain.Round, error) {
	return s.repo.GetCurrentRound(ctx)
}

// Lock marks the current round read-only. Locking an already locked round is
// a no-op.
func (s *RoundService) Lock(ctx context.Context) (*domain.Round, error) {
	return s.setLocked(ctx, true)
}

// Unlock reopens the current round for rating.
func (s *RoundService) Unlock(ctx context.Context) (*domain.Round, error) {
	return s.setLocked(ctx, false)
}

func (s *RoundService) setLocked(ctx context.Context, locked bool) (*domain.Round, error) {
	round, err := s.repo.GetCurrentRound(ctx)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.SetRoundLocked(ctx, round.ID, locked)
	if err != nil {
		return nil, err
	}
	s.log.Info("round lock changed", "round_id", updated.ID, "locked", updated.Locked)
	return updated, nil
}

// Reset locks the current round and opens a fresh one.
func (s *RoundService) Reset(ctx context.Context) (*domain.Round, error) {
	round, err := s.repo.ResetRound(ctx)
	if err != nil {
		return nil, err
	}
	s.log.Info("round reset", "new_round_id", round.ID)
	return round, nil
}
