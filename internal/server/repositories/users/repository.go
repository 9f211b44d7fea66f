package users

import (
	"context"

	"github.com/Toxic209/noteForge/internal/server/models"
)

// Repository is the user record store. Lookups that match no row return
// common.ErrorNotFound; writes that violate a unique constraint return
// common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUsername(ctx context.Context, id string, username string) error
	UpdateEmail(ctx context.Context, id string, email string) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	Delete(ctx context.Context, id string) error
}
