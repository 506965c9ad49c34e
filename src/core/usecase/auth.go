package usecase

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"squadrate/src/core/domain"
	"squadrate/src/core/ports"
)

// AuthService verifies player credentials against the roster.
type AuthService struct {
	repo      ports.RatingRepository
	adminName string
	log       *slog.Logger
}

func NewAuthService(repo ports.RatingRepository, adminName string, log *slog.Logger) *AuthService {
	return &AuthService{repo: repo, adminName: adminName, log: log}
}

// LoginResult bundles everything the client needs after a successful login.
type LoginResult struct {
	Player  *domain.Player
	IsAdmin bool
	Round   *domain.Round
}

// Authenticate checks name and password against the stored roster row.
// Unknown names and wrong passwords produce the same error so the response
// does not reveal which half was wrong.
func (s *AuthService) Authenticate(ctx context.Context, name, password string) (*domain.Player, error) {
	if name == "" || password == "" {
		return nil, domain.NewValidationError("credentials", "name and password are required")
	}

	player, err := s.repo.GetPlayer(ctx, name)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(player.Password), []byte(password)) != 1 {
		return nil, domain.NewUnauthorizedError("invalid credentials")
	}
	return player, nil
}

// Login authenticates and returns the player, admin flag, and current round.
func (s *AuthService) Login(ctx context.Context, name, password string) (*LoginResult, error) {
	player, err := s.Authenticate(ctx, name, password)
	if err != nil {
		return nil, err
	}

	round, err := s.repo.GetCurrentRound(ctx)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Player:  player,
		IsAdmin: s.IsAdmin(player.Name),
		Round:   round,
	}, nil
}

// IsAdmin reports whether the given roster name is the configured admin.
func (s *AuthService) IsAdmin(name string) bool {
	return name == s.adminName
}
