package store

import (
	"context"
	"time"

	"github.com/dmitrijs2005/wellnesslog/internal/models"
)

// LoadLogs fetches the signed-in user's entries filtered by the current
// search term. Responses are applied in arrival order; a stale response may
// briefly overwrite a newer one until the newer one lands.
func (s *Store) LoadLogs(ctx context.Context) {
	s.mu.Lock()
	user := s.state.Session.User
	term := s.state.Journal.SearchTerm
	s.mu.Unlock()
	if user == nil {
		return
	}

	s.mutate(func(st *Snapshot) {
		st.Journal.List = Result{Status: StatusPending}
	})

	entries, err := s.logs.List(ctx, user.ID, term)
	if err != nil {
		s.mutate(func(st *Snapshot) {
			st.Journal.List = Result{Status: StatusErr, Err: err}
		})
		return
	}

	s.mutate(func(st *Snapshot) {
		st.Journal.Entries = entries
		st.Journal.List = Result{Status: StatusOK}
	})
}

// SetSearchTerm records the term immediately and schedules a fetch after the
// configured idle window. Each call resets the timer; the fetch runs with
// whatever term is current when the timer fires.
func (s *Store) SetSearchTerm(ctx context.Context, term string) {
	s.mu.Lock()
	s.state.Journal.SearchTerm = term
	if s.searchTimer != nil {
		s.searchTimer.Stop()
	}
	s.searchTimer = time.AfterFunc(s.cfg.SearchDebounce, func() {
		s.LoadLogs(ctx)
	})
	snap := s.state
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// CreateLog persists a new entry and prepends it to the loaded list.
func (s *Store) CreateLog(ctx context.Context, draft models.WellnessLog) (*models.WellnessLog, error) {
	s.mutate(func(st *Snapshot) {
		st.Journal.Mutation = Result{Status: StatusPending}
	})

	created, err := s.logs.Create(ctx, draft)
	if err != nil {
		s.mutate(func(st *Snapshot) {
			st.Journal.Mutation = Result{Status: StatusErr, Err: err}
		})
		return nil, err
	}

	s.mutate(func(st *Snapshot) {
		entries := make([]models.WellnessLog, 0, len(st.Journal.Entries)+1)
		entries = append(entries, *created)
		entries = append(entries, st.Journal.Entries...)
		st.Journal.Entries = entries
		st.Journal.Mutation = Result{Status: StatusOK}
	})
	return created, nil
}

// UpdateLog applies a patch and replaces the entry in place.
func (s *Store) UpdateLog(ctx context.Context, id string, patch models.LogPatch) (*models.WellnessLog, error) {
	s.mutate(func(st *Snapshot) {
		st.Journal.Mutation = Result{Status: StatusPending}
	})

	updated, err := s.logs.Update(ctx, id, patch)
	if err != nil {
		s.mutate(func(st *Snapshot) {
			st.Journal.Mutation = Result{Status: StatusErr, Err: err}
		})
		return nil, err
	}

	s.mutate(func(st *Snapshot) {
		entries := make([]models.WellnessLog, len(st.Journal.Entries))
		copy(entries, st.Journal.Entries)
		for i := range entries {
			if entries[i].ID == id {
				entries[i] = *updated
				break
			}
		}
		st.Journal.Entries = entries
		st.Journal.Mutation = Result{Status: StatusOK}
	})
	return updated, nil
}

// DeleteLog removes the entry from storage and filters it out of the list.
func (s *Store) DeleteLog(ctx context.Context, id string) (*models.WellnessLog, error) {
	s.mutate(func(st *Snapshot) {
		st.Journal.Mutation = Result{Status: StatusPending}
	})

	removed, err := s.logs.Delete(ctx, id)
	if err != nil {
		s.mutate(func(st *Snapshot) {
			st.Journal.Mutation = Result{Status: StatusErr, Err: err}
		})
		return nil, err
	}

	s.mutate(func(st *Snapshot) {
		entries := make([]models.WellnessLog, 0, len(st.Journal.Entries))
		for _, e := range st.Journal.Entries {
			if e.ID != id {
				entries = append(entries, e)
			}
		}
		st.Journal.Entries = entries
		st.Journal.Mutation = Result{Status: StatusOK}
	})
	return removed, nil
}
