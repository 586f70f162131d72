package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amelnikov/learnly/internal/client/api"
)

func (a *App) getStatus() string {
	state := a.session.State()
	if state.User != nil {
		return fmt.Sprintf("(%s)", state.User.Email)
	}
	return ""
}

// Root runs the command loop until exit or EOF.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to learnly (type 'help' for commands)")

	if state := a.session.State(); state.IsAuthenticated {
		fmt.Fprintf(a.out, "Logged in as %s\n", state.User.Email)
	}

	for {
		fmt.Fprintf(a.out, "learnly %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()
		case "login":
			a.loginCmd(ctx)
		case "register":
			a.registerCmd(ctx)
		case "logout":
			a.logoutCmd(ctx)
		case "whoami":
			a.whoamiCmd()
		case "profile":
			a.profileCmd(ctx)
		case "update":
			a.updateCmd(ctx)
		case "courses":
			a.coursesCmd(ctx)
		case "course":
			a.courseCmd(ctx, args)
		case "videos":
			a.videosCmd(ctx, args)
		case "enroll":
			a.enrollCmd(ctx, args)
		case "my":
			a.enrollmentsCmd(ctx)
		case "play":
			a.playCmd(ctx, args)
		case "progress":
			a.progressCmd(ctx, args)
		case "newcourse":
			a.newCourseCmd(ctx)
		case "upload":
			a.uploadCmd(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.session.State().IsAuthenticated {
		fmt.Fprintln(a.out, "Available commands: whoami, profile, update, courses, course <id>, videos <id>, enroll <id>, my, play <courseID> <videoID>, progress <courseID> <videoID> <pct>, newcourse, upload <courseID> <file>, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: login, register, courses, course <id>, exit")
	}
}

// reportError prints a failure to the user and applies the session-expired
// policy: when the shared transport reports an expired session while we
// still hold one, the store and in-memory session are wiped and the user is
// sent back to the login flow. Already being logged out skips the policy,
// mirroring "don't redirect when already on the login page".
func (a *App) reportError(ctx context.Context, err error) {
	if errors.Is(err, api.ErrSessionExpired) {
		if a.session.State().IsAuthenticated {
			a.session.Expire(ctx)
			fmt.Fprintln(a.out, "Session expired. Please login again.")
			return
		}
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if apiErr.Detail != "" {
			fmt.Fprintf(a.out, "%s (%s)\n", apiErr.Message, apiErr.Detail)
		} else {
			fmt.Fprintln(a.out, apiErr.Message)
		}
		return
	}
	fmt.Fprintf(a.out, "error: %v\n", err)
}
