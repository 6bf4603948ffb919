package logs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/wellnesslog/internal/common"
	"github.com/dmitrijs2005/wellnesslog/internal/dbx"
	"github.com/dmitrijs2005/wellnesslog/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, log *models.WellnessLog) error {
	query := `INSERT INTO wellness_logs (id, user_id, mood, sleep_duration, activity_notes, log_date, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		log.ID, log.UserID, string(log.Mood), log.SleepDuration,
		log.ActivityNotes, log.Date, log.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert log: %w", err)
	}
	return nil
}

// List relies on log_date being ISO formatted, so lexicographic DESC is
// chronological DESC; created_at keeps insertion order among equal dates.
func (r *SQLiteRepository) List(ctx context.Context, userID, search string) ([]models.WellnessLog, error) {
	query := `SELECT id, user_id, mood, sleep_duration, activity_notes, log_date, created_at
			FROM wellness_logs
			WHERE user_id = ?
	`
	args := []any{userID}
	if search != "" {
		// sqlite's lower() folds ASCII only, so the match is
		// case-insensitive for Latin letters and exact for anything else
		query += ` AND instr(lower(activity_notes), lower(?)) > 0`
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

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.WellnessLog, error) {
	query := `SELECT id, user_id, mood, sleep_duration, activity_notes, log_date, created_at
			FROM wellness_logs WHERE id = ?
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

func (r *SQLiteRepository) Update(ctx context.Context, log *models.WellnessLog) error {
	query := `UPDATE wellness_logs
			SET mood = ?, sleep_duration = ?, activity_notes = ?, log_date = ?
			WHERE id = ?
	`
	res, err := r.db.ExecContext(ctx, query,
		string(log.Mood), log.SleepDuration, log.ActivityNotes, log.Date, log.ID)
	if err != nil {
		return fmt.Errorf("failed to update log: %w", err)
	}
	return requireOneRow(res)
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM wellness_logs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete log: %w", err)
	}
	return requireOneRow(res)
}

func requireOneRow(res sql.Result) error {
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func scanLog(scan func(dest ...any) error) (*models.WellnessLog, error) {
	log := &models.WellnessLog{}
	var mood string
	var createdAt int64
	if err := scan(&log.ID, &log.UserID, &mood, &log.SleepDuration,
		&log.ActivityNotes, &log.Date, &createdAt); err != nil {
		return nil, err
	}
	log.Mood = models.Mood(mood)
	log.CreatedAt = nanosToTime(createdAt)
	return log, nil
}

func collectLogs(rows *sql.Rows) ([]models.WellnessLog, error) {
	var result []models.WellnessLog
	for rows.Next() {
		log, err := scanLog(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *log)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
