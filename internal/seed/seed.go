// Package seed provisions default records after migrations.
package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/deniz/technexus/internal/app/models"
	"github.com/deniz/technexus/internal/app/repositories"
	"github.com/deniz/technexus/internal/pkg/auth"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "changeme123"
)

// CreateDefaultData seeds a default admin account when none exists, so a
// fresh deployment can log in and manage content immediately. The password
// must be rotated through /admin/create on first use.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminRepo := repositories.NewAdminRepository(dbPool)

	exists, err := adminRepo.UsernameExists(ctx, defaultAdminUsername)
	if err != nil {
		return err
	}
	if exists {
		lgr.Debug().Msg("Default admin already present, skipping seed")
		return nil
	}

	hashed, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Username:       defaultAdminUsername,
		HashedPassword: hashed,
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		return err
	}

	lgr.Info().Str("username", defaultAdminUsername).Msg("Default admin account seeded")
	return nil
}
