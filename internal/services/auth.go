// Package services contains the application services behind the dashboard:
// authentication with token issue/verify/refresh, and wellness log CRUD.
// Every call crosses a simulated asynchronous boundary (a fixed artificial
// delay) because there is no real backend.
package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/wellnesslog/internal/auth"
	"github.com/dmitrijs2005/wellnesslog/internal/common"
	"github.com/dmitrijs2005/wellnesslog/internal/config"
	"github.com/dmitrijs2005/wellnesslog/internal/logging"
	"github.com/dmitrijs2005/wellnesslog/internal/models"
	"github.com/dmitrijs2005/wellnesslog/internal/repositories/settings"
	"github.com/dmitrijs2005/wellnesslog/internal/repositories/users"
	"github.com/dmitrijs2005/wellnesslog/internal/validation"
)

// TokenPair bundles the authenticated user with a short-lived access token
// and a long-lived refresh token.
type TokenPair struct {
	User         *models.User
	AccessToken  string
	RefreshToken string
}

// ValidationError carries the per-field messages of a rejected signup.
// errors.Is(err, common.ErrValidation) matches it.
type ValidationError struct {
	Fields validation.Errors
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation error: %s", strings.Join(fields, ", "))
}

func (e *ValidationError) Is(target error) bool { return target == common.ErrValidation }

// AuthService authenticates users, issues/verifies/refreshes tokens, and
// persists the token pair in local settings.
type AuthService struct {
	users      users.Repository
	settings   settings.Repository
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	window     time.Duration
	latency    time.Duration
	log        logging.Logger
}

// NewAuthService constructs an AuthService from the repositories and config.
func NewAuthService(u users.Repository, s settings.Repository, cfg *config.Config, log logging.Logger) *AuthService {
	return &AuthService{
		users:      u,
		settings:   s,
		secret:     []byte(cfg.SecretKey),
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
		window:     cfg.ExpiryWindow,
		latency:    cfg.AuthLatency,
		log:        log,
	}
}

// Login verifies the credentials against the registry, persists a fresh
// token pair, and returns it. Unknown emails and wrong passwords both yield
// common.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrorInternal
	}
	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	return s.issueAndPersist(ctx, user)
}

// Signup validates the form, registers a new user, and logs them in.
// Malformed fields yield a *ValidationError; a taken email yields
// common.ErrUserExists. The new user's id is its creation timestamp and the
// name is the local part of the email.
func (s *AuthService) Signup(ctx context.Context, email, password, confirmPassword string) (*TokenPair, error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	if errs := validation.ValidateSignup(email, password, confirmPassword); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrUserExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	now := time.Now()
	user := &models.User{
		ID:           strconv.FormatInt(now.UnixMilli(), 10),
		Email:        email,
		Name:         strings.SplitN(email, "@", 2)[0],
		PasswordHash: hash,
		CreatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.issueAndPersist(ctx, user)
}

// Verify decodes an access token and returns the bound user. Malformed,
// expired, or wrong-kind tokens all resolve to nil; Verify never reports
// an error for bad input.
func (s *AuthService) Verify(ctx context.Context, accessToken string) *models.User {
	claims, err := auth.ParseToken(accessToken, s.secret)
	if err != nil || claims.Kind != auth.KindAccess {
		return nil
	}

	user, err := s.users.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil
	}
	return user
}

// Refresh validates a refresh token and mints a new access token bound to
// the same user, leaving the refresh token unchanged. Expired, malformed, or
// wrong-kind tokens fail with common.ErrInvalidToken / common.ErrTokenExpired.
// Nothing is persisted; the caller stores the new token with
// PersistAccessToken once it decides the session is still current.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	claims, err := auth.ParseToken(refreshToken, s.secret)
	if err != nil {
		return nil, err
	}
	if claims.Kind != auth.KindRefresh {
		return nil, common.ErrWrongTokenUse
	}

	user, err := s.users.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	access, err := auth.GenerateToken(user.ID, user.Email, auth.KindAccess, s.secret, s.accessTTL)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &TokenPair{User: user, AccessToken: access, RefreshToken: refreshToken}, nil
}

// PersistAccessToken stores a refreshed access token, leaving the refresh
// token untouched.
func (s *AuthService) PersistAccessToken(ctx context.Context, accessToken string) error {
	if err := s.settings.Set(ctx, settings.KeyAccessToken, accessToken); err != nil {
		return fmt.Errorf("error persisting access token: %w", err)
	}
	return nil
}

// IsExpiringSoon reports whether the access token's expiry falls within the
// configured window of now. Invalid tokens count as expiring.
func (s *AuthService) IsExpiringSoon(accessToken string) bool {
	return auth.ExpiringSoon(accessToken, s.secret, s.window)
}

// Logout clears the persisted token pair unconditionally. It never fails;
// storage trouble is logged and swallowed.
func (s *AuthService) Logout(ctx context.Context) {
	if err := s.settings.Delete(ctx, settings.KeyAccessToken); err != nil {
		s.log.Warn(ctx, "failed to clear access token", "error", err)
	}
	if err := s.settings.Delete(ctx, settings.KeyRefreshToken); err != nil {
		s.log.Warn(ctx, "failed to clear refresh token", "error", err)
	}
}

// StoredTokens returns the persisted token pair; absent tokens come back as
// empty strings.
func (s *AuthService) StoredTokens(ctx context.Context) (accessToken, refreshToken string) {
	accessToken, err := s.settings.Get(ctx, settings.KeyAccessToken)
	if err != nil {
		s.log.Warn(ctx, "failed to read access token", "error", err)
	}
	refreshToken, err = s.settings.Get(ctx, settings.KeyRefreshToken)
	if err != nil {
		s.log.Warn(ctx, "failed to read refresh token", "error", err)
	}
	return accessToken, refreshToken
}

func (s *AuthService) issueAndPersist(ctx context.Context, user *models.User) (*TokenPair, error) {
	access, err := auth.GenerateToken(user.ID, user.Email, auth.KindAccess, s.secret, s.accessTTL)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := auth.GenerateToken(user.ID, user.Email, auth.KindRefresh, s.secret, s.refreshTTL)
	if err != nil {
		return nil, common.ErrorInternal
	}

	if err := s.settings.Set(ctx, settings.KeyAccessToken, access); err != nil {
		return nil, fmt.Errorf("error persisting access token: %w", err)
	}
	if err := s.settings.Set(ctx, settings.KeyRefreshToken, refresh); err != nil {
		return nil, fmt.Errorf("error persisting refresh token: %w", err)
	}

	return &TokenPair{User: user, AccessToken: access, RefreshToken: refresh}, nil
}
