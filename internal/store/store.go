// Package store holds the observable application state: session status,
// the journal entries with their search term, and the UI preferences.
// Mutations go through the services and every settled change is pushed to
// subscribers as an immutable Snapshot.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/wellnesslog/internal/config"
	"github.com/dmitrijs2005/wellnesslog/internal/logging"
	"github.com/dmitrijs2005/wellnesslog/internal/models"
	"github.com/dmitrijs2005/wellnesslog/internal/repositories/settings"
	"github.com/dmitrijs2005/wellnesslog/internal/services"
)

// SessionStatus is the lifecycle of the signed-in session.
type SessionStatus string

const (
	SessionUnknown         SessionStatus = "unknown"
	SessionVerifying       SessionStatus = "verifying"
	SessionAuthenticated   SessionStatus = "authenticated"
	SessionUnauthenticated SessionStatus = "unauthenticated"
)

// ResultStatus tracks an in-flight asynchronous action.
type ResultStatus int

const (
	StatusIdle ResultStatus = iota
	StatusPending
	StatusOK
	StatusErr
)

// Result is the outcome of the most recent asynchronous action of a kind.
type Result struct {
	Status ResultStatus
	Err    error
}

// SessionState describes who is signed in and how the last auth action went.
type SessionState struct {
	Status SessionStatus
	User   *models.User
	Auth   Result
}

// JournalState holds the loaded entries, the active search term, and the
// status of the last list fetch and the last mutation.
type JournalState struct {
	Entries    []models.WellnessLog
	SearchTerm string
	List       Result
	Mutation   Result
}

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	MinPanelWidth     = 25
	MaxPanelWidth     = 50
	DefaultPanelWidth = 33
)

// UIState holds the persisted display preferences.
type UIState struct {
	Theme          string
	LeftPanelWidth int
}

// Snapshot is a point-in-time copy of the whole state. Slices inside it are
// never mutated after publication.
type Snapshot struct {
	Session SessionState
	Journal JournalState
	UI      UIState
}

// Store owns the state and serializes all mutations behind a mutex. Service
// calls happen outside the lock; their results are applied under it.
type Store struct {
	auth     *services.AuthService
	logs     *services.LogService
	settings settings.Repository
	cfg      *config.Config
	log      logging.Logger

	mu    sync.Mutex
	state Snapshot
	subs  []func(Snapshot)

	// epoch increments on every login and logout; an async result minted
	// under an older epoch must be discarded.
	epoch uint64

	searchTimer *time.Timer

	watcherCancel context.CancelFunc
	wg            sync.WaitGroup
}

// New constructs a Store in the Unknown session state with default UI
// preferences.
func New(auth *services.AuthService, logs *services.LogService, s settings.Repository, cfg *config.Config, log logging.Logger) *Store {
	return &Store{
		auth:     auth,
		logs:     logs,
		settings: s,
		cfg:      cfg,
		log:      log,
		state: Snapshot{
			Session: SessionState{Status: SessionUnknown},
			UI:      UIState{Theme: ThemeLight, LeftPanelWidth: DefaultPanelWidth},
		},
	}
}

// Subscribe registers a callback invoked after every state change with the
// new snapshot. Callbacks run outside the store lock and must not block.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// mutate applies fn to the state under the lock and notifies subscribers
// with the resulting snapshot.
func (s *Store) mutate(fn func(*Snapshot)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.state
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// Close stops the background refresh watcher and waits for it to exit.
func (s *Store) Close() {
	s.mu.Lock()
	cancel := s.watcherCancel
	s.watcherCancel = nil
	if s.searchTimer != nil {
		s.searchTimer.Stop()
		s.searchTimer = nil
	}
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}
