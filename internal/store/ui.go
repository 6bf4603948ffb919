package store

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/wellnesslog/internal/repositories/settings"
)

// loadUI restores theme and panel width from local settings. Missing or
// unparseable values fall back to the defaults silently.
func (s *Store) loadUI(ctx context.Context) {
	theme := ThemeLight
	if v, err := s.settings.Get(ctx, settings.KeyTheme); err == nil && (v == ThemeLight || v == ThemeDark) {
		theme = v
	}

	width := DefaultPanelWidth
	if v, err := s.settings.Get(ctx, settings.KeyPanelWidth); err == nil && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			width = clampWidth(n)
		}
	}

	s.mutate(func(st *Snapshot) {
		st.UI.Theme = theme
		st.UI.LeftPanelWidth = width
	})
}

// ToggleTheme flips between light and dark and persists the choice.
func (s *Store) ToggleTheme(ctx context.Context) string {
	var theme string
	s.mutate(func(st *Snapshot) {
		if st.UI.Theme == ThemeDark {
			st.UI.Theme = ThemeLight
		} else {
			st.UI.Theme = ThemeDark
		}
		theme = st.UI.Theme
	})

	if err := s.settings.Set(ctx, settings.KeyTheme, theme); err != nil {
		s.log.Warn(ctx, "failed to persist theme", "error", err)
	}
	return theme
}

// SetLeftPanelWidth clamps the width to the allowed range and persists it.
func (s *Store) SetLeftPanelWidth(ctx context.Context, width int) int {
	width = clampWidth(width)
	s.mutate(func(st *Snapshot) {
		st.UI.LeftPanelWidth = width
	})

	if err := s.settings.Set(ctx, settings.KeyPanelWidth, strconv.Itoa(width)); err != nil {
		s.log.Warn(ctx, "failed to persist panel width", "error", err)
	}
	return width
}

func clampWidth(w int) int {
	if w < MinPanelWidth {
		return MinPanelWidth
	}
	if w > MaxPanelWidth {
		return MaxPanelWidth
	}
	return w
}
