// Package services contains server-side business logic. AuthService
// implements the account workflows: registration, login, logout and token
// refresh and validation. Database and cache handles are borrowed from
// their pools one step at a time.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ourchat/ourchat/internal/common"
	"github.com/ourchat/ourchat/internal/logging"
	"github.com/ourchat/ourchat/internal/pool"
	"github.com/ourchat/ourchat/internal/server/auth"
	"github.com/ourchat/ourchat/internal/server/cache"
	"github.com/ourchat/ourchat/internal/server/database"
	"github.com/ourchat/ourchat/internal/server/models"
	"github.com/ourchat/ourchat/internal/server/repositories/repomanager"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("ourchat/services")

// AuthService provides authentication-related operations.
type AuthService struct {
	dbPool      *pool.Pool[*database.Client]
	cachePool   *pool.Pool[*cache.Client]
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
	tokens      *auth.TokenCodec
	logger      logging.Logger
}

func NewAuthService(
	dbPool *pool.Pool[*database.Client],
	cachePool *pool.Pool[*cache.Client],
	m repomanager.RepositoryManager,
	hasher auth.PasswordHasher,
	tokens *auth.TokenCodec,
	logger logging.Logger,
) *AuthService {
	return &AuthService{
		dbPool:      dbPool,
		cachePool:   cachePool,
		repomanager: m,
		hasher:      hasher,
		tokens:      tokens,
		logger:      logger.With("component", "auth"),
	}
}

// Register stores a new user and returns its id. Duplicates and storage
// errors both come back as common.ErrRegistrationFailed.
func (s *AuthService) Register(ctx context.Context, username, password, email string) (int64, error) {
	ctx, span := tracer.Start(ctx, "AuthService.Register")
	defer span.End()

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return 0, fail(span, fmt.Errorf("error hashing password: %w", common.ErrorInternal))
	}

	lease, err := s.dbPool.Acquire(ctx)
	if err != nil {
		s.logger.Error(ctx, "database unavailable", "op", "register", "error", err)
		return 0, fail(span, common.ErrorUnavailable)
	}
	defer lease.Release()

	user, err := s.repomanager.Users(lease.Value()).Create(ctx, &models.User{
		UserName:     username,
		PasswordHash: hash,
		Email:        email,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			s.logger.Info(ctx, "username taken", "username", username)
		} else {
			s.logger.Error(ctx, "error creating user", "username", username, "error", err)
		}
		return 0, fail(span, common.ErrRegistrationFailed)
	}

	span.SetAttributes(attribute.Int64("user.id", user.ID))
	return user.ID, nil
}

// Login checks the credentials and issues a token. Unknown usernames and
// wrong passwords both yield common.ErrorUnauthorized. The session entries
// are best effort: a cache failure is logged and the token still returned.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	ctx, span := tracer.Start(ctx, "AuthService.Login")
	defer span.End()

	user, err := s.lookupUser(ctx, username)
	if err != nil {
		return nil, fail(span, err)
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, fail(span, common.ErrorUnauthorized)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fail(span, fmt.Errorf("error issuing token: %w", common.ErrorInternal))
	}

	s.saveSession(ctx, token, user.ID)

	span.SetAttributes(attribute.Int64("user.id", user.ID))
	return &models.Session{UserID: user.ID, Token: token}, nil
}

// Logout drops user_token:<id>. It never fails.
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	ctx, span := tracer.Start(ctx, "AuthService.Logout", trace.WithAttributes(attribute.Int64("user.id", userID)))
	defer span.End()

	lease, err := s.cachePool.Acquire(ctx)
	if err != nil {
		s.logger.Warn(ctx, "cache unavailable, session not removed", "user_id", userID, "error", err)
		return nil
	}
	defer lease.Release()

	if err := s.repomanager.Sessions(lease.Value()).DeleteUserToken(ctx, userID); err != nil {
		s.logger.Warn(ctx, "error removing session", "user_id", userID, "error", err)
	}
	return nil
}

// RefreshToken verifies token and issues a fresh one for the same user.
// The previous token:<t> entry is left to expire.
func (s *AuthService) RefreshToken(ctx context.Context, token string) (string, error) {
	ctx, span := tracer.Start(ctx, "AuthService.RefreshToken")
	defer span.End()

	userID, err := s.tokens.Verify(token)
	if err != nil {
		return "", fail(span, common.ErrInvalidToken)
	}

	fresh, err := s.tokens.Issue(userID)
	if err != nil {
		return "", fail(span, fmt.Errorf("error issuing token: %w", common.ErrorInternal))
	}

	s.saveSession(ctx, fresh, userID)

	span.SetAttributes(attribute.Int64("user.id", userID))
	return fresh, nil
}

// ValidateToken checks signature and expiry only; the cache is not consulted.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (int64, error) {
	_, span := tracer.Start(ctx, "AuthService.ValidateToken")
	defer span.End()

	userID, err := s.tokens.Verify(token)
	if err != nil {
		return 0, fail(span, common.ErrInvalidToken)
	}
	span.SetAttributes(attribute.Int64("user.id", userID))
	return userID, nil
}

// lookupUser holds a database lease only for the query.
func (s *AuthService) lookupUser(ctx context.Context, username string) (*models.User, error) {
	lease, err := s.dbPool.Acquire(ctx)
	if err != nil {
		s.logger.Error(ctx, "database unavailable", "op", "login", "error", err)
		return nil, common.ErrorUnavailable
	}
	defer lease.Release()

	user, err := s.repomanager.Users(lease.Value()).GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "error loading user", "username", username, "error", err)
		return nil, common.ErrorInternal
	}
	return user, nil
}

func (s *AuthService) saveSession(ctx context.Context, token string, userID int64) {
	lease, err := s.cachePool.Acquire(ctx)
	if err != nil {
		s.logger.Warn(ctx, "cache unavailable, session not stored", "user_id", userID, "error", err)
		return
	}
	defer lease.Release()

	if err := s.repomanager.Sessions(lease.Value()).Save(ctx, token, userID, s.tokens.TTL()); err != nil {
		s.logger.Warn(ctx, "error storing session", "user_id", userID, "error", err)
	}
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
