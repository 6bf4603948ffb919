// Package models defines the domain types of the wellness journal:
// users and their dated mood/sleep/activity log entries.
package models

import "time"

// User is a registered journal owner. Immutable once created; Name is
// derived from the email local part at signup.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash []byte
	CreatedAt    time.Time
}
