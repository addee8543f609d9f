// Package cli implements the interactive DocBot terminal application: a
// read-eval-print loop over the session manager, conversation log, and the
// symptom/report helpers.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/docbotdev/docbot/internal/assistant"
	"github.com/docbotdev/docbot/internal/config"
	"github.com/docbotdev/docbot/internal/logging"
	"github.com/docbotdev/docbot/internal/session"
	"github.com/docbotdev/docbot/internal/users"
)

type App struct {
	config   *config.Config
	sessions *session.Manager
	session  *session.Session
	log      logging.Logger
	reader   *bufio.Reader
	db       *sql.DB
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := users.OpenStore(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("error opening credential store: %w", err)
	}

	userService := users.NewService(users.NewSQLiteRepository(db), log)
	orchestrator := assistant.NewClient(assistant.Config{
		APIKey:         cfg.APIKey,
		BaseURL:        cfg.APIBaseURL,
		Model:          cfg.Model,
		RequestTimeout: cfg.RequestTimeout,
	}, log)

	return &App{
		config:   cfg,
		sessions: session.NewManager(userService, orchestrator, log),
		session:  session.NewSession(),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		db:       db,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to DocBot (type 'help' for commands)")
	printlnFn("DocBot provides general health information only. " +
		"It is NOT a replacement for professional medical advice.")
	a.repl(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

func (a *App) status() string {
	if name := a.session.Username(); name != "" {
		return fmt.Sprintf("(%s) ", name)
	}
	return ""
}
