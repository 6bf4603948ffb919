package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/wellnesslog/internal/common"
	"github.com/dmitrijs2005/wellnesslog/internal/services"
	"github.com/dmitrijs2005/wellnesslog/internal/validation"
)

// Login prompts for credentials and signs the user in. On success the
// journal is loaded so list commands have data right away.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	if err := a.store.Login(ctx, email, password); err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Invalid email or password")
		} else {
			fmt.Fprintf(a.out, "Login failed: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", email)
	a.store.LoadLogs(ctx)
	return nil
}

// Signup prompts for a new account and signs it in. Field-level validation
// messages are printed one per line.
func (a *App) Signup(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	if err := a.store.Signup(ctx, email, password, confirm); err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			a.printFieldErrors(verr.Fields)
		case errors.Is(err, common.ErrUserExists):
			fmt.Fprintln(a.out, "An account with this email already exists")
		default:
			fmt.Fprintf(a.out, "Signup failed: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Account created, signed in as %s\n", email)
	a.store.LoadLogs(ctx)
	return nil
}

// Logout signs the user out and clears the persisted tokens.
func (a *App) Logout(ctx context.Context) error {
	a.store.Logout(ctx)
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) printFieldErrors(fields validation.Errors) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(a.out, "%s: %s\n", name, fields[name])
	}
}
