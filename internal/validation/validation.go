// Package validation contains pure form validators. Each validator returns a
// map from field name to a human-readable message for every field that fails
// its rule; an empty map means the payload is valid. No side effects.
package validation

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/wellnesslog/internal/models"
)

// Errors maps a field name to its validation message.
type Errors map[string]string

// Permissive on purpose: anything@anything.anything.
var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	minPasswordLen = 8
	maxNotesLen    = 200
	maxSleepHours  = 12
)

func validateEmail(errs Errors, email string) {
	if email == "" {
		errs["email"] = "Email is required"
	} else if !emailRegexp.MatchString(email) {
		errs["email"] = "Please enter a valid email address"
	}
}

func validatePassword(errs Errors, password string) {
	if password == "" {
		errs["password"] = "Password is required"
	} else if len(password) < minPasswordLen {
		errs["password"] = fmt.Sprintf("Password must be at least %d characters long", minPasswordLen)
	}
}

// ValidateLogin checks the login form fields.
func ValidateLogin(email, password string) Errors {
	errs := Errors{}
	validateEmail(errs, email)
	validatePassword(errs, password)
	return errs
}

// ValidateSignup checks the signup form fields, including the password
// confirmation match.
func ValidateSignup(email, password, confirmPassword string) Errors {
	errs := Errors{}
	validateEmail(errs, email)
	validatePassword(errs, password)

	if confirmPassword == "" {
		errs["confirmPassword"] = "Please confirm your password"
	} else if password != confirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}

	return errs
}

// LogForm is the candidate payload for creating or editing a wellness log.
type LogForm struct {
	Mood          models.Mood
	SleepDuration float64
	ActivityNotes string
	Date          string
}

// ValidateWellnessLog checks a wellness-log form. A zero Mood counts as
// missing; a zero SleepDuration is a valid value (0 hours).
func ValidateWellnessLog(form LogForm) Errors {
	errs := Errors{}

	if form.Mood == "" {
		errs["mood"] = "Please select your mood"
	} else if !form.Mood.Valid() {
		errs["mood"] = "Please select your mood"
	}

	if form.SleepDuration < 0 || form.SleepDuration > maxSleepHours {
		errs["sleepDuration"] = fmt.Sprintf("Sleep duration must be between 0 and %d hours", maxSleepHours)
	}

	// the limit counts characters, not bytes
	if form.ActivityNotes == "" {
		errs["activityNotes"] = "Activity notes are required"
	} else if utf8.RuneCountInString(form.ActivityNotes) > maxNotesLen {
		errs["activityNotes"] = fmt.Sprintf("Activity notes must be %d characters or less", maxNotesLen)
	}

	if form.Date == "" {
		errs["date"] = "Date is required"
	} else if _, err := time.Parse(models.DateLayout, form.Date); err != nil {
		errs["date"] = "Date must be in YYYY-MM-DD format"
	}

	return errs
}
