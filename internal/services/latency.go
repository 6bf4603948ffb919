package services

import (
	"context"
	"time"
)

// simulateLatency models the network delay of the mocked backend. It honors
// context cancellation and is a no-op for non-positive durations, which is
// how tests switch it off.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
