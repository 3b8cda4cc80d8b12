// Package services contains server-side business logic. This file implements
// UserService, which handles signup, login, and minting JWTs.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"database/sql"

	"github.com/mlukash/todoshare/internal/common"
	"github.com/mlukash/todoshare/internal/server/auth"
	"github.com/mlukash/todoshare/internal/server/config"
	"github.com/mlukash/todoshare/internal/server/models"
	"github.com/mlukash/todoshare/internal/server/repositories/repomanager"
)

// UserService provides account operations:
// - Signup: create a user and mint its first token
// - Login: verify credentials and mint a token with profile claims
// - ListUsers: enumerate accounts for the public directory
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Signup validates the profile fields, hashes the password and creates the
// account. Returns the stored user and a signed token carrying
// {userId, email}. A taken email yields common.ErrorAlreadyExists.
func (s *UserService) Signup(ctx context.Context, user *models.User, password string) (*models.User, string, error) {

	if user.UserName == "" || user.FamilyName == "" || user.Email == "" || password == "" ||
		user.Sex == "" || user.Color == "" || user.Age == "" {
		return nil, "", common.ErrorValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", common.ErrorInternal
	}
	user.PasswordHash = hash

	repo := s.repomanager.Users(s.db)

	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, "", common.ErrorAlreadyExists
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(auth.Claims{
		UserID: user.ID,
		Email:  user.Email,
	}, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Login verifies the credentials and mints a token with profile claims.
// Unknown email yields common.ErrorNotFound, a wrong password
// common.ErrorUnauthorized; neither issues a token.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {

	if email == "" || password == "" {
		return "", common.ErrorValidation
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(auth.Claims{
		UserID:     user.ID,
		UserName:   user.UserName,
		FamilyName: user.FamilyName,
		Color:      user.Color,
	}, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// ListUsers returns every account.
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	repo := s.repomanager.Users(s.db)

	result, err := repo.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error selecting users: %w", err)
	}
	return result, nil
}
