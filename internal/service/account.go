package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Seba01D/pm-app/internal/auth"
	"github.com/Seba01D/pm-app/internal/model"
	"github.com/Seba01D/pm-app/internal/repository"
)

// AccountService is the in-process identity provider front: it registers
// users and hands out session tokens.
type AccountService struct {
	users  repository.UserRepositoryInterface
	issuer *auth.TokenIssuer
}

func NewAccountService(users repository.UserRepositoryInterface, issuer *auth.TokenIssuer) *AccountService {
	return &AccountService{users: users, issuer: issuer}
}

func (s *AccountService) Register(ctx context.Context, email, name, password string) (*model.User, string, error) {
	const op = "Register"

	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", newError(op, ErrPersistence, "Failed to check existing user", err)
	}
	if existing != nil {
		return nil, "", newError(op, ErrConflict, "User with this email already exists", nil)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", newError(op, ErrUnexpected, "Failed to hash password", err)
	}

	user := &model.User{
		Email:          email,
		Name:           strings.TrimSpace(name),
		HashedPassword: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", newError(op, ErrConflict, "User with this email already exists", err)
		}
		return nil, "", newError(op, ErrPersistence, "Failed to create user", err)
	}

	token, err := s.issuer.GenerateToken(user.ID)
	if err != nil {
		return nil, "", newError(op, ErrUnexpected, "Failed to generate token", err)
	}
	return user, token, nil
}

func (s *AccountService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	const op = "Login"

	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", newError(op, ErrPersistence, "Failed to find user", err)
	}
	if user == nil || !auth.CheckPassword(user.HashedPassword, password) {
		return nil, "", newError(op, ErrUnauthorized, "Invalid credentials", nil)
	}

	token, err := s.issuer.GenerateToken(user.ID)
	if err != nil {
		return nil, "", newError(op, ErrUnexpected, "Failed to generate token", err)
	}
	return user, token, nil
}
