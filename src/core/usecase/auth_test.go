package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"squadrate/src/core/domain"
)

func TestAuthLogin(t *testing.T) {
	r := newTestRepo(t, "admin", "alice")
	svc := NewAuthService(r, "admin", testLogger())

	res, err := svc.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "alice", res.Player.Name)
	assert.False(t, res.IsAdmin)
	assert.Equal(t, int64(1), res.Round.ID)

	res, err = svc.Login(context.Background(), "admin", "pw")
	require.NoError(t, err)
	assert.True(t, res.IsAdmin)
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	r := newTestRepo(t, "alice")
	svc := NewAuthService(r, "admin", testLogger())

	tests := []struct {
		name     string
		player   string
		password string
	}{
		{"wrong password", "alice", "nope"},
		{"unknown player", "mallory", "pw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.player, tt.password)
			assert.True(t, domain.IsUnauthorized(err), "expected unauthorized, got %v", err)
		})
	}
}

func TestAuthLoginRequiresCredentials(t *testing.T) {
	r := newTestRepo(t, "alice")
	svc := NewAuthService(r, "admin", testLogger())

	_, err := svc.Login(context.Background(), "", "pw")
	assert.True(t, domain.IsValidationError(err))

	_, err = svc.Login(context.Background(), "alice", "")
	assert.True(t, domain.IsValidationError(err))
}
