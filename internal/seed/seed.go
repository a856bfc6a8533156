package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/tastapp/tast-backend/internal/app/models"
	"github.com/tastapp/tast-backend/internal/app/repositories"
	"github.com/tastapp/tast-backend/internal/config"
	"github.com/tastapp/tast-backend/internal/pkg/auth"
)

// CreateDefaultAdmin ensures the configured admin account exists. Without
// it no one could log in to create courses on a fresh database.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	existing, err := userRepo.GetByUsername(ctx, cfg.Admin.Username)
	if err != nil {
		return fmt.Errorf("failed to check for existing admin user: %w", err)
	}
	if existing != nil {
		lgr.Debug().Str("username", cfg.Admin.Username).Msg("Admin user already exists, skipping seed")
		return nil
	}

	passwordHash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Username:     cfg.Admin.Username,
		PasswordHash: passwordHash,
		IsAdmin:      true,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	lgr.Info().Str("username", admin.Username).Int64("userID", admin.ID).Msg("Default admin user created")
	return nil
}
