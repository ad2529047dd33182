package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"checky/internal/core/domain"
	"checky/internal/core/ports"
	"checky/pkg/apperror"
	"checky/pkg/async"

	"github.com/rs/zerolog"
)

// AuthServiceImpl implements ports.AuthService for customer accounts.
// Login and signup resolve after a simulated latency.
type AuthServiceImpl struct {
	users    ports.UserRepository
	hashSvc  ports.HashService
	tokenSvc ports.TokenService
	latency  time.Duration
	ids      monotonicMillis
	log      zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	users ports.UserRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	latency time.Duration,
	log zerolog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		users:    users,
		hashSvc:  hashSvc,
		tokenSvc: tokenSvc,
		latency:  latency,
		log:      log,
	}
}

// Signup registers a customer and signs them in.
func (s *AuthServiceImpl) Signup(ctx context.Context, req ports.SignupRequest) (*ports.AuthSession, error) {
	return async.Go(s.latency, func() (*ports.AuthSession, error) {
		return s.signup(context.WithoutCancel(ctx), req)
	}).Await(ctx)
}

func (s *AuthServiceImpl) signup(ctx context.Context, req ports.SignupRequest) (*ports.AuthSession, error) {
	email := strings.TrimSpace(req.Email)

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check email: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrEmailExists()
	}

	hash, err := s.hashSvc.Hash(req.Password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           fmt.Sprintf("USER_%d", s.ids.next(now)),
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
		Role:         domain.UserRoleCustomer,
		PasswordHash: hash,
		CreatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Lost a race with a concurrent signup for the same email.
		if dup, _ := s.users.GetByEmail(ctx, email); dup != nil {
			return nil, apperror.ErrEmailExists()
		}
		return nil, apperror.InternalError(fmt.Errorf("create user: %w", err))
	}

	s.log.Info().Str("user_id", user.ID).Msg("customer signed up")

	return s.issue(user)
}

// Login matches the email exactly. Seeded accounts carry no hash and accept any password.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*ports.AuthSession, error) {
	return async.Go(s.latency, func() (*ports.AuthSession, error) {
		return s.login(context.WithoutCancel(ctx), email, password)
	}).Await(ctx)
}

func (s *AuthServiceImpl) login(ctx context.Context, email, password string) (*ports.AuthSession, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup user: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials()
	}

	if user.HasPassword() {
		match, err := s.hashSvc.Verify(password, user.PasswordHash)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("verify password: %w", err))
		}
		if !match {
			return nil, apperror.ErrInvalidCredentials()
		}
	}

	s.log.Info().Str("user_id", user.ID).Msg("customer logged in")

	return s.issue(user)
}

func (s *AuthServiceImpl) issue(user *domain.User) (*ports.AuthSession, error) {
	token, expiresAt, err := s.tokenSvc.Generate(user.ID, ports.TokenKindCustomer, string(user.Role))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}
	return &ports.AuthSession{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *AuthServiceImpl) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup user: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrNotFound("User")
	}
	return user, nil
}

// UpdateProfile applies the non-nil fields of update.
func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.User, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = strings.TrimSpace(*update.Name)
	}
	if update.Phone != nil {
		user.Phone = strings.TrimSpace(*update.Phone)
	}
	if update.Avatar != nil {
		user.Avatar = strings.TrimSpace(*update.Avatar)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update user: %w", err))
	}

	s.log.Info().Str("user_id", user.ID).Msg("profile updated")
	return user, nil
}
