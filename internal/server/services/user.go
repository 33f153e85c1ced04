// Package services contains server-side business logic. This file implements
// UserService: registration, login/logout with token-secret rotation, and
// request authentication.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/bucketlist/internal/common"
	"github.com/dmitrijs2005/bucketlist/internal/dbx"
	"github.com/dmitrijs2005/bucketlist/internal/server/auth"
	"github.com/dmitrijs2005/bucketlist/internal/server/config"
	"github.com/dmitrijs2005/bucketlist/internal/server/models"
	"github.com/dmitrijs2005/bucketlist/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

const tokenSecretBytes = 32

// UserService provides authentication-related operations.
//
// Token validity is secret-derived, not registry-tracked: a token verifies
// only against the user's current secret, so rotating the secret on login
// and logout is the whole revocation mechanism.
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	tokenValidityDuration time.Duration
	bcryptCost            int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		tokenValidityDuration: cfg.TokenValidityDuration,
		bcryptCost:            cfg.BcryptCost,
	}
}

// Register creates a new user with a bcrypt-hashed password and a fresh
// token secret. Missing username or password fails with ErrorValidation.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, common.ErrorValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	secret, err := common.MakeRandHexString(tokenSecretBytes)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{UserName: username, PasswordHash: hash, TokenSecret: secret}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the password and, on success, rotates the user's token
// secret and issues a token signed with the new secret. The rotation commits
// before the token is built, so the stored secret always matches the token
// handed back, and every previously issued token stops verifying.
//
// Unknown username and wrong password are reported identically.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", common.ErrorValidation
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUserName(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return "", common.ErrorUnauthorized
	}

	secret, err := s.rotateSecret(ctx, user.ID)
	if err != nil {
		return "", err
	}

	token, err := auth.GenerateToken(strconv.FormatInt(user.ID, 10), []byte(secret), s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// Logout rotates the secret once more, invalidating the token used for the
// request along with any other outstanding tokens for the user.
func (s *UserService) Logout(ctx context.Context, userID int64) error {
	if _, err := s.rotateSecret(ctx, userID); err != nil {
		return err
	}
	return nil
}

// Authenticate resolves the acting user from a bearer token. Every failure
// mode (missing, malformed, expired, signature mismatch, unknown user) is
// collapsed into ErrorUnauthorized before crossing the trust boundary.
func (s *UserService) Authenticate(ctx context.Context, tokenString string) (int64, error) {
	if tokenString == "" {
		return 0, common.ErrorUnauthorized
	}

	lookup := func(claimedUserID string) ([]byte, error) {
		id, err := strconv.ParseInt(claimedUserID, 10, 64)
		if err != nil {
			return nil, common.ErrInvalidToken
		}
		user, err := s.repomanager.Users(s.db).GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return []byte(user.TokenSecret), nil
	}

	uid, err := auth.GetUserIDFromToken(tokenString, lookup)
	if err != nil {
		return 0, common.ErrorUnauthorized
	}

	id, err := strconv.ParseInt(uid, 10, 64)
	if err != nil {
		return 0, common.ErrorUnauthorized
	}
	return id, nil
}

// rotateSecret mints a new secret and persists it inside a transaction.
// Two concurrent rotations serialize on the row update, so the stored secret
// is always the one whose token the winning caller received.
func (s *UserService) rotateSecret(ctx context.Context, userID int64) (string, error) {
	secret, err := common.MakeRandHexString(tokenSecretBytes)
	if err != nil {
		return "", common.ErrorInternal
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Users(tx).RotateTokenSecret(ctx, userID, secret)
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}
	return secret, nil
}
