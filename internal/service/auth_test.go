package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cooksync/backend/internal/storage"
	"github.com/cooksync/backend/internal/store"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	kv, err := storage.NewFileKV(t.TempDir())
	require.NoError(t, err)
	return NewAuthService(store.New(context.Background(), kv), "test-secret")
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc := newTestAuthService(t)

	user, token, err := svc.Login(context.Background(), "minji@example.com", "pw")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Nickname, claims.Nickname)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := newTestAuthService(t)

	_, token, err := svc.Login(context.Background(), "minji@example.com", "pw")
	require.NoError(t, err)

	other := newTestAuthService(t)
	other.jwtSecret = "a-different-secret"
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
