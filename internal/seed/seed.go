package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/emre/studentms/internal/app/models"
	appRepos "github.com/emre/studentms/internal/app/repositories"
	"github.com/emre/studentms/internal/config"
	"github.com/emre/studentms/internal/pkg/auth"
)

// CreateDefaultData ensures a fresh deployment has a usable admin
// login. Existing accounts are never touched.
func CreateDefaultData(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	username := cfg.Seed.AdminUsername
	if username == "" {
		username = "admin"
	}

	exists, err := userRepo.UsernameExists(ctx, username)
	if err != nil {
		return fmt.Errorf("error checking default admin user: %w", err)
	}
	if exists {
		lgr.Debug().Str("username", username).Msg("Default admin user already present")
		return nil
	}

	password := cfg.Seed.AdminPassword
	if password == "" {
		lgr.Warn().Msg("No seed admin password configured, skipping default admin creation")
		return nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing default admin password: %w", err)
	}

	admin := &appModels.User{
		Username: username,
		Password: hashed,
		Role:     appModels.RoleAdmin,
	}

	if _, err := userRepo.CreateUser(ctx, admin); err != nil {
		return fmt.Errorf("error creating default admin user: %w", err)
	}

	lgr.Info().Str("username", username).Msg("Default admin user created")
	return nil
}
