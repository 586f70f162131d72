package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"

	"github.com/amelnikov/learnly/internal/client/api"
	"github.com/amelnikov/learnly/internal/client/config"
	"github.com/amelnikov/learnly/internal/client/repositories/sessionstore"
	"github.com/amelnikov/learnly/internal/client/session"
	"github.com/amelnikov/learnly/internal/client/storage"
	"github.com/amelnikov/learnly/internal/logging"
)

// App wires the client together: config, local store, HTTP transport,
// session manager, and the REPL that drives them.
type App struct {
	config  *config.Config
	db      *sql.DB
	store   *sessionstore.Store
	session *session.Manager
	auth    *api.AuthAPI
	courses *api.CourseAPI
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp builds a ready-to-run App from cfg. A local store that cannot be
// opened is logged and skipped; the client still works, it just starts
// unauthenticated on every run.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	var db *sql.DB
	if cfg.StorePath != "" {
		opened, err := storage.Open(ctx, cfg.StorePath)
		if err != nil {
			log.Warn(ctx, "local store unavailable, continuing without it", "path", cfg.StorePath, "error", err)
		} else {
			db = opened
		}
	}

	store := sessionstore.New(db, log)
	client := api.New(cfg.APIBaseURL, store, log, api.WithTimeout(cfg.RequestTimeout))
	auth := api.NewAuthAPI(client)

	return &App{
		config:  cfg,
		db:      db,
		store:   store,
		session: session.NewManager(auth, store, log),
		auth:    auth,
		courses: api.NewCourseAPI(client),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run hydrates the session and enters the command loop.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.session.Hydrate(ctx)
	a.Root(ctx)
}

// Close releases the local store handle.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}
