package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/amelnikov/learnly/internal/client/api"
	"github.com/amelnikov/learnly/internal/client/models"
	"github.com/amelnikov/learnly/internal/client/session"
)

// Statuses the backend uses for field-level login/registration failures.
const (
	statusInvalidEmail     = 421
	statusEmailRegistered  = http.StatusConflict
	statusValidationFailed = http.StatusUnprocessableEntity
)

func (a *App) loginCmd(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			switch apiErr.Status {
			case statusInvalidEmail:
				fmt.Fprintln(a.out, "No account exists for that email.")
			case http.StatusLocked:
				fmt.Fprintln(a.out, "Invalid password.")
			default:
				a.reportError(ctx, err)
			}
			return
		}
		a.reportError(ctx, err)
		return
	}

	state := a.session.State()
	fmt.Fprintf(a.out, "Welcome back, %s!\n", state.User.FirstName)
}

func (a *App) registerCmd(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	firstName, err := GetSimpleText(a.reader, "Enter first name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	lastName, err := GetSimpleText(a.reader, "Enter last name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if err := a.session.Register(ctx, email, password, firstName, lastName); err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			switch apiErr.Status {
			case statusEmailRegistered, statusValidationFailed:
				fmt.Fprintln(a.out, "That email is already registered.")
			default:
				a.reportError(ctx, err)
			}
			return
		}
		a.reportError(ctx, err)
		return
	}

	state := a.session.State()
	fmt.Fprintf(a.out, "Account created. Welcome, %s!\n", state.User.FirstName)
}

func (a *App) logoutCmd(ctx context.Context) {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
}

func (a *App) whoamiCmd() {
	state := a.session.State()
	if !state.IsAuthenticated {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}
	fmt.Fprintf(a.out, "%s %s <%s> role=%s\n", state.User.FirstName, state.User.LastName, state.User.Email, state.User.Role)
	if expiry, ok := session.TokenExpiry(state.Token); ok {
		fmt.Fprintf(a.out, "Session valid until %s\n", expiry.Local().Format("2006-01-02 15:04:05"))
	}
}

func (a *App) profileCmd(ctx context.Context) {
	user, err := a.auth.Profile(ctx)
	if err != nil {
		a.reportError(ctx, err)
		return
	}
	fmt.Fprintf(a.out, "%s %s <%s> role=%s\n", user.FirstName, user.LastName, user.Email, user.Role)
	if user.ProfileImageURL != "" {
		fmt.Fprintf(a.out, "Profile image: %s\n", user.ProfileImageURL)
	}
}

// updateCmd edits the profile. Empty answers keep the current values.
func (a *App) updateCmd(ctx context.Context) {
	state := a.session.State()
	if !state.IsAuthenticated {
		fmt.Fprintln(a.out, "Please login first.")
		return
	}

	firstName, err := GetSimpleText(a.reader, fmt.Sprintf("First name [%s]", state.User.FirstName), a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	lastName, err := GetSimpleText(a.reader, fmt.Sprintf("Last name [%s]", state.User.LastName), a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	partial := models.User{FirstName: firstName, LastName: lastName}
	if err := a.session.UpdateUser(ctx, partial); err != nil {
		a.reportError(ctx, err)
		return
	}

	updated := a.session.State().User
	fmt.Fprintf(a.out, "Profile updated: %s %s\n", updated.FirstName, updated.LastName)
}
