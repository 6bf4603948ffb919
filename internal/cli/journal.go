package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/wellnesslog/internal/common"
	"github.com/dmitrijs2005/wellnesslog/internal/models"
	"github.com/dmitrijs2005/wellnesslog/internal/validation"
)

// List reloads the journal with the current search term and prints it.
func (a *App) List(ctx context.Context) error {
	a.store.LoadLogs(ctx)
	return a.printEntries()
}

// Search records the term and fetches the filtered list immediately. The
// debounce window only matters for keystroke-level input, not for a
// submitted command.
func (a *App) Search(ctx context.Context, term string) error {
	a.store.SetSearchTerm(ctx, term)
	a.store.LoadLogs(ctx)
	return a.printEntries()
}

func (a *App) printEntries() error {
	snap := a.store.Snapshot()
	if snap.Journal.List.Err != nil {
		fmt.Fprintf(a.out, "error: %v\n", snap.Journal.List.Err)
		return snap.Journal.List.Err
	}
	if len(snap.Journal.Entries) == 0 {
		if snap.Journal.SearchTerm != "" {
			fmt.Fprintf(a.out, "No entries match %q\n", snap.Journal.SearchTerm)
		} else {
			fmt.Fprintln(a.out, "No entries yet. Type 'add' to create one.")
		}
		return nil
	}

	for _, e := range snap.Journal.Entries {
		notes := e.ActivityNotes
		if len(notes) > 40 {
			notes = notes[:37] + "..."
		}
		fmt.Fprintf(a.out, "%s  %s  %-8s  %.1fh  %s\n", e.ID, e.Date, e.Mood, e.SleepDuration, notes)
	}
	return nil
}

// Add collects a new entry interactively, validates it, and persists it.
func (a *App) Add(ctx context.Context) error {
	user := a.store.Snapshot().Session.User
	if user == nil {
		fmt.Fprintln(a.out, "Sign in first")
		return nil
	}

	form, err := a.inputLogForm(validation.LogForm{})
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	if errs := validation.ValidateWellnessLog(*form); len(errs) > 0 {
		a.printFieldErrors(errs)
		return common.ErrValidation
	}

	created, err := a.store.CreateLog(ctx, models.WellnessLog{
		Mood:          form.Mood,
		SleepDuration: form.SleepDuration,
		ActivityNotes: form.ActivityNotes,
		Date:          form.Date,
		UserID:        user.ID,
	})
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Entry %s created\n", created.ID)
	return nil
}

// Edit patches an existing entry. Empty input keeps the current value of a
// field; the merged result is validated before it is persisted.
func (a *App) Edit(ctx context.Context, id string) error {
	current, ok := a.findEntry(ctx, id)
	if !ok {
		fmt.Fprintf(a.out, "Entry %s not found\n", id)
		return common.ErrorNotFound
	}

	form, err := a.inputLogForm(validation.LogForm{
		Mood:          current.Mood,
		SleepDuration: current.SleepDuration,
		ActivityNotes: current.ActivityNotes,
		Date:          current.Date,
	})
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	if errs := validation.ValidateWellnessLog(*form); len(errs) > 0 {
		a.printFieldErrors(errs)
		return common.ErrValidation
	}

	patch := models.LogPatch{}
	if form.Mood != current.Mood {
		patch.Mood = &form.Mood
	}
	if form.SleepDuration != current.SleepDuration {
		patch.SleepDuration = &form.SleepDuration
	}
	if form.ActivityNotes != current.ActivityNotes {
		patch.ActivityNotes = &form.ActivityNotes
	}
	if form.Date != current.Date {
		patch.Date = &form.Date
	}

	if _, err := a.store.UpdateLog(ctx, id, patch); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Entry %s updated\n", id)
	return nil
}

// Delete removes an entry by id.
func (a *App) Delete(ctx context.Context, id string) error {
	removed, err := a.store.DeleteLog(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintf(a.out, "Entry %s not found\n", id)
		} else {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Entry %s (%s) deleted\n", removed.ID, removed.Date)
	return nil
}

// Show prints the full fields of a single entry.
func (a *App) Show(ctx context.Context, id string) error {
	entry, ok := a.findEntry(ctx, id)
	if !ok {
		fmt.Fprintf(a.out, "Entry %s not found\n", id)
		return common.ErrorNotFound
	}

	fmt.Fprintf(a.out, "ID:    %s\n", entry.ID)
	fmt.Fprintf(a.out, "Date:  %s\n", entry.Date)
	fmt.Fprintf(a.out, "Mood:  %s\n", entry.Mood)
	fmt.Fprintf(a.out, "Sleep: %.1f hours\n", entry.SleepDuration)
	fmt.Fprintf(a.out, "Notes: %s\n", entry.ActivityNotes)
	return nil
}

// Theme toggles the color scheme and reports the new one.
func (a *App) Theme(ctx context.Context) error {
	theme := a.store.ToggleTheme(ctx)
	fmt.Fprintf(a.out, "Theme set to %s\n", theme)
	return nil
}

// findEntry looks the entry up in the loaded journal, reloading once if the
// journal has not been fetched yet.
func (a *App) findEntry(ctx context.Context, id string) (*models.WellnessLog, bool) {
	for pass := 0; pass < 2; pass++ {
		for _, e := range a.store.Snapshot().Journal.Entries {
			if e.ID == id {
				return &e, true
			}
		}
		a.store.LoadLogs(ctx)
	}
	return nil, false
}

// inputLogForm prompts for the four entry fields. With non-zero defaults the
// current values are shown and kept when the user submits an empty line.
func (a *App) inputLogForm(defaults validation.LogForm) (*validation.LogForm, error) {
	form := defaults
	editing := defaults != (validation.LogForm{})

	moodPrompt := fmt.Sprintf("Select mood %s", moodOptions())
	if editing {
		moodPrompt += fmt.Sprintf(" (current: %s)", defaults.Mood)
	}
	moodInput, err := GetSimpleText(a.reader, moodPrompt, a.out)
	if err != nil {
		return nil, err
	}
	if moodInput != "" || !editing {
		form.Mood = parseMood(moodInput)
	}

	sleepPrompt := "Enter sleep duration in hours (0-12)"
	if editing {
		sleepPrompt += fmt.Sprintf(" (current: %.1f)", defaults.SleepDuration)
	}
	sleepInput, err := GetSimpleText(a.reader, sleepPrompt, a.out)
	if err != nil {
		return nil, err
	}
	if sleepInput != "" || !editing {
		v, err := strconv.ParseFloat(sleepInput, 64)
		if err != nil {
			// out-of-range marker so validation reports the field
			v = -1
		}
		form.SleepDuration = v
	}

	notesPrompt := "Enter activity notes"
	if editing {
		notesPrompt += fmt.Sprintf(" (current: %s)", defaults.ActivityNotes)
	}
	notes, err := GetSimpleText(a.reader, notesPrompt, a.out)
	if err != nil {
		return nil, err
	}
	if notes != "" || !editing {
		form.ActivityNotes = notes
	}

	datePrompt := "Enter date (YYYY-MM-DD)"
	if editing {
		datePrompt += fmt.Sprintf(" (current: %s)", defaults.Date)
	}
	date, err := GetSimpleText(a.reader, datePrompt, a.out)
	if err != nil {
		return nil, err
	}
	if date != "" || !editing {
		form.Date = date
	}

	return &form, nil
}

// parseMood accepts a mood name in any case, or a 1-based index into the
// options list. Anything else comes back as-is and fails validation.
func parseMood(input string) models.Mood {
	moods := models.Moods()
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(moods) {
		return moods[n-1]
	}
	for _, m := range moods {
		if strings.EqualFold(string(m), input) {
			return m
		}
	}
	return models.Mood(input)
}

func moodOptions() string {
	moods := models.Moods()
	parts := make([]string, len(moods))
	for i, m := range moods {
		parts[i] = fmt.Sprintf("%d=%s", i+1, m)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
