// Package users stores the registry of known journal owners.
package users

import (
	"context"

	"github.com/dmitrijs2005/wellnesslog/internal/models"
)

// Repository describes the user registry operations. Implementations are
// backed by a local SQLite database or by PostgreSQL.
type Repository interface {
	// Create inserts a new user. The caller assigns the id.
	Create(ctx context.Context, user *models.User) error

	// GetByEmail returns the user registered under email, or
	// common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// Count returns the number of registered users.
	Count(ctx context.Context) (int64, error)
}
