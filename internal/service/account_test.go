package service_test

import (
	"context"
	"testing"

	"github.com/Seba01D/pm-app/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_RegisterAndLogin(t *testing.T) {
	e := newEnv(t, nil, 3)
	ctx := context.Background()

	user, token, err := e.accounts.Register(ctx, " Ada@Example.com ", "Ada", "password123")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEmpty(t, token)

	parsed, err := e.issuer.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, parsed)

	_, _, err = e.accounts.Register(ctx, "ada@example.com", "Ada", "password123")
	assert.ErrorIs(t, err, service.ErrConflict)

	logged, _, err := e.accounts.Login(ctx, "ADA@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	_, _, err = e.accounts.Login(ctx, "ada@example.com", "wrong")
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}
