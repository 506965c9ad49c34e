package usecase

import (
	"context"
	"log/slog"
	"strings"

	"squadrate/src/core/domain"
	"squadrate/src/core/ports"
)

const maxPlayerNameLength = 50

// PlayerService manages the roster.
type PlayerService struct {
	repo      ports.RatingRepository
	adminName string
	log       *slog.Logger
}

func NewPlayerService(repo ports.RatingRepository, adminName string, log *slog.Logger) *PlayerService {
	return &PlayerService{repo: repo, adminName: adminName, log: log}
}

// List returns the full roster ordered by name.
func (s *PlayerService) List(ctx context.Context) ([]domain.Player, error) {
	return s.repo.ListPlayers(ctx)
}

// Add creates a new roster member. Duplicate names surface as a conflict.
func (s *PlayerService) Add(ctx context.Context, name, password string, canRate bool) (*domain.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "cannot be empty")
	}
	if len(name) > maxPlayerNameLength {
		return nil, domain.NewValidationError("name", "too long")
	}
	if password == "" {
		return nil, domain.NewValidationError("password", "cannot be empty")
	}

	player, err := s.repo.CreatePlayer(ctx, name, password, canRate)
	if err != nil {
		return nil, err
	}
	s.log.Info("player added", "name", player.Name, "can_rate", player.CanRate)
	return player, nil
}

// Remove deletes a player along with their ratings and comment votes.
// The admin account cannot be removed.
func (s *PlayerService) Remove(ctx context.Context, name string) error {
	if name == s.adminName {
		return domain.NewConflictError("cannot remove the admin account")
	}
	if err := s.repo.DeletePlayer(ctx, name); err != nil {
		return err
	}
	s.log.Info("player removed", "name", name)
	return nil
}

// SetEligibility toggles whether a player may rate in the current round.
func (s *PlayerService) SetEligibility(ctx context.Context, name string, canRate bool) (*domain.Player, error) {
	if err := s.repo.SetCanRate(ctx, name, canRate); err != nil {
		return nil, err
	}
	s.log.Info("player eligibility changed", "name", name, "can_rate", canRate)
	return s.repo.GetPlayer(ctx, name)
}
