package store

import (
	"context"
	"time"
)

// Init restores the session from persisted state. With no stored tokens the
// session is immediately Unauthenticated; otherwise it passes through
// Verifying while the access token is checked, falling back to a refresh
// attempt before giving up and clearing the pair.
func (s *Store) Init(ctx context.Context) {
	s.loadUI(ctx)

	access, refresh := s.auth.StoredTokens(ctx)
	if access == "" && refresh == "" {
		s.mutate(func(st *Snapshot) {
			st.Session.Status = SessionUnauthenticated
		})
		return
	}

	s.mutate(func(st *Snapshot) {
		st.Session.Status = SessionVerifying
	})

	if user := s.auth.Verify(ctx, access); user != nil {
		s.mutate(func(st *Snapshot) {
			st.Session.Status = SessionAuthenticated
			st.Session.User = user
		})
		return
	}

	if refresh != "" {
		if pair, err := s.auth.Refresh(ctx, refresh); err == nil {
			if err := s.auth.PersistAccessToken(ctx, pair.AccessToken); err != nil {
				s.log.Warn(ctx, "failed to persist refreshed access token", "error", err)
			}
			s.mutate(func(st *Snapshot) {
				st.Session.Status = SessionAuthenticated
				st.Session.User = pair.User
			})
			return
		}
	}

	s.auth.Logout(ctx)
	s.mutate(func(st *Snapshot) {
		st.Session.Status = SessionUnauthenticated
		st.Session.User = nil
	})
}

// Login signs the user in and, on success, starts a fresh session epoch.
// The epoch is bumped before the credentials are checked so that any refresh
// still in flight is invalidated before the new session's tokens land in
// storage.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.mutate(func(st *Snapshot) {
		s.epoch++
		st.Session.Auth = Result{Status: StatusPending}
	})

	pair, err := s.auth.Login(ctx, email, password)
	if err != nil {
		s.mutate(func(st *Snapshot) {
			st.Session.Auth = Result{Status: StatusErr, Err: err}
		})
		return err
	}

	s.mutate(func(st *Snapshot) {
		st.Session = SessionState{
			Status: SessionAuthenticated,
			User:   pair.User,
			Auth:   Result{Status: StatusOK},
		}
		st.Journal = JournalState{}
	})
	return nil
}

// Signup registers a new account and signs it in. As with Login, the epoch
// is bumped up front so an in-flight refresh cannot outlive the old session.
func (s *Store) Signup(ctx context.Context, email, password, confirmPassword string) error {
	s.mutate(func(st *Snapshot) {
		s.epoch++
		st.Session.Auth = Result{Status: StatusPending}
	})

	pair, err := s.auth.Signup(ctx, email, password, confirmPassword)
	if err != nil {
		s.mutate(func(st *Snapshot) {
			st.Session.Auth = Result{Status: StatusErr, Err: err}
		})
		return err
	}

	s.mutate(func(st *Snapshot) {
		st.Session = SessionState{
			Status: SessionAuthenticated,
			User:   pair.User,
			Auth:   Result{Status: StatusOK},
		}
		st.Journal = JournalState{}
	})
	return nil
}

// Logout clears the persisted tokens and resets the session and journal.
// The epoch bump invalidates any refresh still in flight.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.epoch++
	if s.searchTimer != nil {
		s.searchTimer.Stop()
		s.searchTimer = nil
	}
	s.mu.Unlock()

	s.auth.Logout(ctx)

	s.mutate(func(st *Snapshot) {
		st.Session = SessionState{Status: SessionUnauthenticated}
		st.Journal = JournalState{}
	})
}

// StartRefreshWatcher runs a background loop that silently refreshes the
// access token shortly before it expires. Calling it again replaces the
// previous watcher.
func (s *Store) StartRefreshWatcher(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	prev := s.watcherCancel
	s.watcherCancel = cancel
	s.mu.Unlock()
	if prev != nil {
		prev()
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.cfg.RefreshCheckInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.refreshIfNeeded(ctx)
			}
		}
	}()
}

func (s *Store) refreshIfNeeded(ctx context.Context) {
	s.mu.Lock()
	epoch := s.epoch
	active := s.state.Session.Status == SessionAuthenticated
	s.mu.Unlock()
	if !active {
		return
	}

	access, refresh := s.auth.StoredTokens(ctx)
	if refresh == "" || !s.auth.IsExpiringSoon(access) {
		return
	}

	pair, err := s.auth.Refresh(ctx, refresh)

	if err != nil {
		s.mu.Lock()
		stale := s.epoch != epoch
		s.mu.Unlock()
		if stale {
			// A logout or re-login raced this refresh and wins.
			return
		}
		s.log.Warn(ctx, "silent token refresh failed", "error", err)
		s.auth.Logout(ctx)
		s.mutate(func(st *Snapshot) {
			st.Session = SessionState{Status: SessionUnauthenticated}
			st.Journal = JournalState{}
		})
		return
	}

	// The epoch check and the persist happen under the same lock hold, so a
	// refresh from a superseded session can never overwrite the tokens of a
	// session that logged in after it started.
	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		return
	}
	perr := s.auth.PersistAccessToken(ctx, pair.AccessToken)
	s.mu.Unlock()

	if perr != nil {
		s.log.Warn(ctx, "failed to persist refreshed access token", "error", perr)
		return
	}
	s.log.Debug(ctx, "access token refreshed", "user", pair.User.Email)
}
