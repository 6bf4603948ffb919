package logs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/wellnesslog/internal/common"
	"github.com/dmitrijs2005/wellnesslog/internal/dbx"
	"github.com/dmitrijs2005/wellnesslog/internal/models"
)

// PostgresRepository implements Repository over a PostgreSQL DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, log *models.WellnessLog) error {
	query := `INSERT INTO wellness_logs (id, user_id, mood, sleep_duration, activity_notes, log_date, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		log.ID, log.UserID, string(log.Mood), log.SleepDuration,
		log.ActivityNotes, log.Date, log.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert log: %w", err)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context, userID, search string) ([]models.WellnessLog, error) {
	query := `SELECT id, user_id, mood, sleep_duration, activity_notes, log_date, created_at
			FROM wellness_logs
			WHERE user_id = $1
	`
	args := []any{userID}
	if search != "" {
		// lower() here folds per the database collation, so unlike the
		// sqlite backend non-ASCII letters fold too
		query += ` AND strpos(lower(activity_notes), lower($2)) > 0`
		args = append(args, search)
	}
	query += ` ORDER BY log_date DESC, created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select logs: %w", err)
	}
	defer rows.Close()

	return collectLogs(rows)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.WellnessLog, error) {
	query := `SELECT id, user_id, mood, sleep_duration, activity_notes, log_date, created_at
			FROM wellness_logs WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, query, id)

	log, err := scanLog(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return log, nil
}

func (r *PostgresRepository) Update(ctx context.Context, log *models.WellnessLog) error {
	query := `UPDATE wellness_logs
			SET mood = $1, sleep_duration = $2, activity_notes = $3, log_date = $4
			WHERE id = $5
	`
	res, err := r.db.ExecContext(ctx, query,
		string(log.Mood), log.SleepDuration, log.ActivityNotes, log.Date, log.ID)
	if err != nil {
		return fmt.Errorf("failed to update log: %w", err)
	}
	return requireOneRow(res)
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM wellness_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete log: %w", err)
	}
	return requireOneRow(res)
}

func nanosToTime(ns int64) time.Time {
	return time.Unix(0, ns)
}
