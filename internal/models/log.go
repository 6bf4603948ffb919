package models

import "time"

// Mood classifies the emotional state attached to a log entry.
type Mood string

const (
	MoodHappy    Mood = "Happy"
	MoodStressed Mood = "Stressed"
	MoodTired    Mood = "Tired"
	MoodFocused  Mood = "Focused"
)

// Moods lists all valid values in display order.
func Moods() []Mood {
	return []Mood{MoodHappy, MoodStressed, MoodTired, MoodFocused}
}

// Valid reports whether m is one of the enumerated moods.
func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodStressed, MoodTired, MoodFocused:
		return true
	}
	return false
}

// DateLayout is the calendar-date format used by Date fields ("2024-03-01").
// Lexicographic order on this layout matches chronological order.
const DateLayout = "2006-01-02"

// WellnessLog is one dated journal entry. ID is assigned at creation and
// immutable afterwards; every other field is mutable via update.
type WellnessLog struct {
	ID            string
	Mood          Mood
	SleepDuration float64 // hours, within [0, 12]
	ActivityNotes string  // at most 200 characters
	Date          string  // DateLayout
	UserID        string
	CreatedAt     time.Time
}

// LogPatch carries the fields of a shallow update. Nil pointers leave the
// corresponding field untouched.
type LogPatch struct {
	Mood          *Mood
	SleepDuration *float64
	ActivityNotes *string
	Date          *string
}

// Apply merges the patch into l.
func (p LogPatch) Apply(l *WellnessLog) {
	if p.Mood != nil {
		l.Mood = *p.Mood
	}
	if p.SleepDuration != nil {
		l.SleepDuration = *p.SleepDuration
	}
	if p.ActivityNotes != nil {
		l.ActivityNotes = *p.ActivityNotes
	}
	if p.Date != nil {
		l.Date = *p.Date
	}
}
