package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/wellnesslog/internal/config"
	"github.com/dmitrijs2005/wellnesslog/internal/logging"
	"github.com/dmitrijs2005/wellnesslog/internal/models"
	"github.com/dmitrijs2005/wellnesslog/internal/repositories/logs"
)

// LogService provides CRUD and search over one user's wellness logs, behind
// the same simulated asynchronous boundary as AuthService.
type LogService struct {
	repo    logs.Repository
	latency time.Duration
	log     logging.Logger
}

// NewLogService constructs a LogService from the repository and config.
func NewLogService(repo logs.Repository, cfg *config.Config, log logging.Logger) *LogService {
	return &LogService{repo: repo, latency: cfg.APILatency, log: log}
}

// List returns the logs owned by userID, newest date first. A non-empty
// search term keeps only entries whose activity notes contain it
// case-insensitively.
func (s *LogService) List(ctx context.Context, userID, search string) ([]models.WellnessLog, error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	result, err := s.repo.List(ctx, userID, search)
	if err != nil {
		return nil, fmt.Errorf("error listing logs: %w", err)
	}
	return result, nil
}

// Create assigns a fresh id to the draft, stores it, and returns the stored
// copy. The id is the creation timestamp in nanoseconds, which keeps ids
// unique and roughly monotonic.
func (s *LogService) Create(ctx context.Context, draft models.WellnessLog) (*models.WellnessLog, error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	now := time.Now()
	draft.ID = strconv.FormatInt(now.UnixNano(), 10)
	draft.CreatedAt = now

	if err := s.repo.Insert(ctx, &draft); err != nil {
		return nil, fmt.Errorf("error creating log: %w", err)
	}
	return &draft, nil
}

// Update shallow-merges the patch into the stored entry and returns the
// result. A missing id yields common.ErrorNotFound.
func (s *LogService) Update(ctx context.Context, id string, patch models.LogPatch) (*models.WellnessLog, error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(existing)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes an entry and returns it. A missing id yields
// common.ErrorNotFound, so deleting twice succeeds exactly once.
func (s *LogService) Delete(ctx context.Context, id string) (*models.WellnessLog, error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	removed, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return nil, err
	}
	return removed, nil
}
