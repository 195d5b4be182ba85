package identity

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/ferrisys/backend/internal/application/entitlement"
	"github.com/ferrisys/backend/internal/domain/identity"
	"github.com/ferrisys/backend/internal/domain/shared"
	"github.com/ferrisys/backend/internal/infrastructure/auth"
)

// AuthService handles login, registration and logout
type AuthService struct {
	users     identity.UserRepository
	tokens    *auth.TokenService
	composer  *entitlement.Composer
	blacklist auth.TokenBlacklist
	logger    *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	users identity.UserRepository,
	tokens *auth.TokenService,
	composer *entitlement.Composer,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		composer:  composer,
		blacklist: blacklist,
		logger:    logger,
	}
}

// Login authenticates a user and issues an access token. The resolved
// authority set is returned so clients can shape their UI without a second
// round trip; the server re-resolves it on every request regardless.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.users.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("login for unknown user", zap.String("username", input.Username))
			return nil, shared.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("invalid password", zap.String("username", input.Username))
		return nil, shared.ErrInvalidCredentials
	}

	if !user.IsActive() {
		s.logger.Warn("login for deactivated account", zap.String("username", input.Username))
		return nil, shared.ErrAccountDeactivated
	}

	authorities, err := s.composer.Compose(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in",
		zap.String("username", user.Username),
		zap.String("user_id", user.ID.String()),
	)

	return &LoginResult{
		Token:       token,
		ExpiresAt:   claims.ExpiresAt.Time,
		User:        toUserInfo(user),
		Authorities: authorities.Values(),
	}, nil
}

// Register creates a new account. The account starts without a role; an
// administrator assigns one before the user gains any authority.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*UserInfo, error) {
	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return nil, shared.NewDomainError("USERNAME_TAKEN", "Username is already in use")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	user, err := identity.NewUser(input.Username, input.Email, input.FullName, input.Password)
	if err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.String("username", user.Username))
	info := toUserInfo(user)
	return &info, nil
}

// Logout revokes the presented token for the remainder of its lifetime.
// Without a blacklist configured logout is a client-side operation.
func (s *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if s.blacklist == nil {
		return nil
	}
	return s.blacklist.Revoke(ctx, tokenID, time.Until(expiresAt))
}

func toUserInfo(u *identity.User) UserInfo {
	return UserInfo{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
		Status:   u.Status,
	}
}
