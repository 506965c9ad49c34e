package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"squadrate/src/core/ports"
	"squadrate/src/infra/repo"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// seedPlayers adds the given names with password "pw" and can_rate=true.
func seedPlayers(t *testing.T, r ports.RatingRepository, names ...string) {
	t.Helper()
	for _, n := range names {
		_, err := r.CreatePlayer(context.Background(), n, "pw", true)
		require.NoError(t, err)
	}
}

func newTestRepo(t *testing.T, names ...string) *repo.MemoryRepository {
	t.Helper()
	r := repo.NewMemoryRepository()
	seedPlayers(t, r, names...)
	return r
}
