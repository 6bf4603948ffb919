// Package logs stores wellness log entries and answers the dashboard's
// filtered, ordered list queries.
package logs

import (
	"context"

	"github.com/dmitrijs2005/wellnesslog/internal/models"
)

// Repository describes CRUD and query operations for wellness logs.
// Implementations are backed by a local SQLite database or by PostgreSQL.
type Repository interface {
	// Insert stores a new log entry. The caller assigns the id.
	Insert(ctx context.Context, log *models.WellnessLog) error

	// List returns the logs owned by userID, newest date first with
	// insertion order as the tiebreak. A non-empty search term keeps only
	// entries whose activity notes contain it case-insensitively.
	List(ctx context.Context, userID, search string) ([]models.WellnessLog, error)

	// GetByID returns a single entry, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.WellnessLog, error)

	// Update overwrites the mutable fields of the entry with log's values,
	// matched by log.ID. Returns common.ErrorNotFound if the id is absent.
	Update(ctx context.Context, log *models.WellnessLog) error

	// DeleteByID removes an entry. Returns common.ErrorNotFound if absent.
	DeleteByID(ctx context.Context, id string) error
}
