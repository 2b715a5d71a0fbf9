package auth

import (
	"context"
	"errors"

	"github.com/Seba01D/pm-app/internal/model"

	"github.com/google/uuid"
)

// ErrUnknownUser is returned for a well-formed token whose user is gone.
var ErrUnknownUser = errors.New("unknown user")

// IdentityProvider exchanges a bearer token for the user it was issued to.
type IdentityProvider interface {
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
}

type UserLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// JWTIdentityProvider verifies tokens signed by TokenIssuer and confirms the
// user row still exists.
type JWTIdentityProvider struct {
	issuer *TokenIssuer
	users  UserLookup
}

var _ IdentityProvider = (*JWTIdentityProvider)(nil)

func NewJWTIdentityProvider(issuer *TokenIssuer, users UserLookup) *JWTIdentityProvider {
	return &JWTIdentityProvider{issuer: issuer, users: users}
}

func (p *JWTIdentityProvider) Authenticate(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := p.issuer.ParseToken(token)
	if err != nil {
		return uuid.Nil, err
	}

	user, err := p.users.GetByID(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}
	if user == nil {
		return uuid.Nil, ErrUnknownUser
	}
	return user.ID, nil
}
