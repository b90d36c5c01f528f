package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yigit/ojtportal/internal/app/models/dto"
	"github.com/yigit/ojtportal/internal/pkg/apperrors"
	"github.com/yigit/ojtportal/internal/pkg/session"
)

// AuthService signs users in and out of their portal session.
// Credentials reach the API through the session store, which forwards them unmodified.
type AuthService struct {
	logger zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(logger zerolog.Logger) *AuthService {
	return &AuthService{
		logger: logger,
	}
}

// Login forwards the credentials and, on success, stores the token and user in the session
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	store := session.MustFromContext(ctx)

	resp, err := store.Login(ctx, req)
	if err != nil {
		s.logger.Warn().Err(err).Str("usernameOrEmail", req.UsernameOrEmail).Msg("Login failed")
		return nil, apperrors.NewCustomError(err, apperrors.BannerMessage(err, MsgLoginFailed))
	}

	if err := store.Persist(ctx, resp); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist session")
		return nil, err
	}

	s.logger.Info().Str("userID", resp.User.ID).Msg("User logged in")
	return resp, nil
}

// Register creates a coordinator/admin account. The session is not changed.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	resp, err := session.MustFromContext(ctx).Register(ctx, req)
	if err != nil {
		s.logger.Warn().Err(err).Str("username", req.Username).Msg("Account registration failed")
		return nil, apperrors.NewCustomError(err, apperrors.BannerMessage(err, MsgRegistrationFailed))
	}
	return resp, nil
}

// Logout clears the session and returns where the browser should go next
func (s *AuthService) Logout(ctx context.Context) (*dto.LogoutResponse, error) {
	store := session.MustFromContext(ctx)
	if err := store.Logout(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Failed to clear session")
		return nil, err
	}
	return &dto.LogoutResponse{Redirect: store.LoginPath()}, nil
}

// Session describes the current session
func (s *AuthService) Session(ctx context.Context) *dto.SessionResponse {
	store := session.MustFromContext(ctx)
	return &dto.SessionResponse{
		Authenticated: store.IsAuthenticated(ctx),
		User:          store.Identity(),
	}
}
