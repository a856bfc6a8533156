package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tastapp/tast-backend/internal/app/models/dto"
	"github.com/tastapp/tast-backend/internal/app/repositories"
	"github.com/tastapp/tast-backend/internal/pkg/apperrors"
	"github.com/tastapp/tast-backend/internal/pkg/auth"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login authenticates a user by username and password and returns an
// access token. Unknown users and wrong passwords are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Error().Err(err).Str("username", req.Username).Msg("Failed to look up user")
		return nil, err
	}
	if user == nil {
		s.logger.Debug().Str("username", req.Username).Msg("Login attempt for unknown user")
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Debug().Str("username", req.Username).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to generate access token")
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("username", user.Username).Bool("isAdmin", user.IsAdmin).Msg("User logged in")

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		User: dto.UserInfo{
			ID:       user.ID,
			Username: user.Username,
			IsAdmin:  user.IsAdmin,
		},
	}, nil
}
