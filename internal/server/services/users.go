// Package services contains server-side business logic. UserService handles
// registration, credential verification and issuing session tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/dmitrijs2005/watchlist/internal/common"
	"github.com/dmitrijs2005/watchlist/internal/server/auth"
	"github.com/dmitrijs2005/watchlist/internal/server/models"
	"github.com/dmitrijs2005/watchlist/internal/server/repositories/repomanager"
)

const (
	MaxUsernameLength = 64
	MaxPasswordBytes  = 72
)

// dummyPassword is hashed once at the configured cost and compared against
// when a username is unknown, so both login paths run bcrypt.
const dummyPassword = "watchlist-no-such-user"

// UserService provides authentication-related operations.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
	issuer      *auth.TokenIssuer
	dummyHash   func() string
}

// NewUserService constructs a UserService.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.PasswordHasher, issuer *auth.TokenIssuer) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		issuer:      issuer,
		dummyHash: sync.OnceValue(func() string {
			h, err := hasher.Hash(dummyPassword)
			if err != nil {
				return ""
			}
			return h
		}),
	}
}

// Register creates a user with a bcrypt hash of password and returns its id.
func (s *UserService) Register(ctx context.Context, username, password string) (int64, error) {
	username, ok := normalizeCredentials(username, password)
	if !ok {
		return 0, common.ErrInvalidInput
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, &models.User{UserName: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) {
			return 0, err
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}
	return u.ID, nil
}

// Verify checks the credentials. Unknown username and wrong password both
// yield common.ErrInvalidCredentials.
func (s *UserService) Verify(ctx context.Context, username, password string) (*models.User, error) {
	username, ok := normalizeCredentials(username, password)
	if !ok {
		return nil, common.ErrInvalidCredentials
	}

	repo := s.repomanager.Users(s.db)
	user, lookupErr := repo.GetUserByLogin(ctx, username)

	target := s.dummyHash()
	switch {
	case lookupErr == nil:
		target = user.PasswordHash
	case !errors.Is(lookupErr, common.ErrorNotFound):
		return nil, fmt.Errorf("error loading user: %w", lookupErr)
	}

	valid, verifyErr := s.hasher.Verify(password, target)
	if lookupErr != nil {
		return nil, common.ErrInvalidCredentials
	}
	if verifyErr != nil {
		return nil, fmt.Errorf("error verifying password: %w", verifyErr)
	}
	if !valid {
		return nil, common.ErrInvalidCredentials
	}
	return user, nil
}

// Login verifies the credentials and returns a signed session token.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.Verify(ctx, username, password)
	if err != nil {
		return "", err
	}

	token, err := s.issuer.Issue(user.ID, user.UserName)
	if err != nil {
		return "", fmt.Errorf("error issuing token: %w", err)
	}
	return token, nil
}

func normalizeCredentials(username, password string) (string, bool) {
	username = strings.TrimSpace(username)
	n := utf8.RuneCountInString(username)
	if n == 0 || n > MaxUsernameLength {
		return "", false
	}
	if password == "" || len(password) > MaxPasswordBytes {
		return "", false
	}
	return username, true
}
