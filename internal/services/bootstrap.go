package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/wellnesslog/internal/logging"
	"github.com/dmitrijs2005/wellnesslog/internal/models"
	"github.com/dmitrijs2005/wellnesslog/internal/repositories/logs"
	"github.com/dmitrijs2005/wellnesslog/internal/repositories/users"
)

// Demo account seeded on first run.
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "password123"
)

// DataTx runs fn with repositories bound to one transaction on the journal
// data store. database.DB.DataTx satisfies it.
type DataTx func(ctx context.Context, fn func(u users.Repository, l logs.Repository) error) error

// Bootstrap seeds the demo user and a few starter logs when the registry is
// empty, so a fresh install has something to show. The seed runs in a single
// transaction; a half-seeded registry never becomes visible.
func Bootstrap(ctx context.Context, runTx DataTx, log logging.Logger) error {
	seeded := false
	err := runTx(ctx, func(u users.Repository, l logs.Repository) error {
		n, err := u.Count(ctx)
		if err != nil {
			return fmt.Errorf("error counting users: %w", err)
		}
		if n > 0 {
			return nil
		}
		if err := seedDemoData(ctx, u, l); err != nil {
			return err
		}
		seeded = true
		return nil
	})
	if err != nil {
		return err
	}

	if seeded {
		log.Info(ctx, "seeded demo data", "email", DemoEmail)
	}
	return nil
}

func seedDemoData(ctx context.Context, u users.Repository, l logs.Repository) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing demo password: %w", err)
	}

	now := time.Now()
	demo := &models.User{
		ID:           "1",
		Email:        DemoEmail,
		Name:         "Demo User",
		PasswordHash: hash,
		CreatedAt:    now,
	}
	if err := u.Create(ctx, demo); err != nil {
		return fmt.Errorf("error creating demo user: %w", err)
	}

	starters := []models.WellnessLog{
		{
			ID:            "1",
			Mood:          models.MoodHappy,
			SleepDuration: 8,
			ActivityNotes: "Had a great workout session and felt energized all day",
			Date:          "2024-01-15",
		},
		{
			ID:            "2",
			Mood:          models.MoodStressed,
			SleepDuration: 6,
			ActivityNotes: "Work deadline approaching, feeling overwhelmed",
			Date:          "2024-01-14",
		},
		{
			ID:            "3",
			Mood:          models.MoodFocused,
			SleepDuration: 7,
			ActivityNotes: "Meditation session helped me concentrate better",
			Date:          "2024-01-13",
		},
	}
	for i, entry := range starters {
		entry.UserID = demo.ID
		entry.CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
		if err := l.Insert(ctx, &entry); err != nil {
			return fmt.Errorf("error seeding logs: %w", err)
		}
	}
	return nil
}
