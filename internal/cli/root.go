package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/wellnesslog/internal/store"
)

// getStatus renders the prompt status: the signed-in email plus the active
// theme, or empty while signed out.
func (a *App) getStatus() string {
	snap := a.store.Snapshot()
	s := ""
	if snap.Session.Status == store.SessionAuthenticated && snap.Session.User != nil {
		s = snap.Session.User.Email + " " + snap.UI.Theme
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root restores the session, starts the silent refresh watcher, and hands
// control to the REPL until EOF or exit.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the Wellness Journal CLI (type 'help' for commands)")

	a.store.Init(ctx)
	if snap := a.store.Snapshot(); snap.Session.Status == store.SessionAuthenticated {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", snap.Session.User.Name)
	}
	a.store.StartRefreshWatcher(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
