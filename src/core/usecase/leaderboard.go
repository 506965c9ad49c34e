package usecase

import (
	"context"
	"log/slog"

	"squadrate/src/core/ports"
)

// LeaderboardService exposes per-player averages.
type LeaderboardService struct {
	repo ports.RatingRepository
	log  *slog.Logger
}

func NewLeaderboardService(repo ports.RatingRepository, log *slog.Logger) *LeaderboardService {
	return &LeaderboardService{repo: repo, log: log}
}

// BoardResult is the current-round leaderboard, withheld until ready.
type BoardResult struct {
	RoundID   int64
	Ready     bool
	Submitted int
	Eligible  int
	Entries   []ports.LeaderboardEntry
}

// Current returns the current round's leaderboard once every eligible player
// has submitted. Before that it reports only the progress counts.
func (s *LeaderboardService) Current(ctx context.Context) (*BoardResult, error) {
	round, err := s.repo.GetCurrentRound(ctx)
	if err != nil {
		return nil, err
	}
	progress, err := s.repo.GetRoundProgress(ctx, round.ID)
	if err != nil {
		return nil, err
	}

	result := &BoardResult{
		RoundID:   round.ID,
		Ready:     leaderboardReady(progress),
		Submitted: progress.Submitted,
		Eligible:  progress.Eligible,
	}
	if !result.Ready {
		return result, nil
	}

	entries, err := s.repo.GetRoundLeaderboard(ctx, round.ID)
	if err != nil {
		return nil, err
	}
	result.Entries = entries
	return result, nil
}

// Overall returns historical averages across all locked rounds. There is no
// readiness gate: locked rounds are final by definition.
func (s *LeaderboardService) Overall(ctx context.Context) ([]ports.LeaderboardEntry, error) {
	return s.repo.GetOverallLeaderboard(ctx)
}
