package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docbotdev/docbot/internal/chatlog"
	"github.com/docbotdev/docbot/internal/config"
	"github.com/docbotdev/docbot/internal/logging"
	"github.com/docbotdev/docbot/internal/session"
	"github.com/docbotdev/docbot/internal/users"

	_ "modernc.org/sqlite"
)

type fakeOrchestrator struct {
	reply   string
	err     error
	calls   int
	prompts []string
}

func (f *fakeOrchestrator) Reply(_ context.Context, _ []chatlog.Message, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

// newTestApp builds an App over an in-memory credential store, a fake
// orchestrator, and a scripted stdin.
func newTestApp(t *testing.T, orch *fakeOrchestrator, input string) *App {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at DATETIME NOT NULL
);`)
	require.NoError(t, err)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc := users.NewService(users.NewSQLiteRepository(db), log)

	return &App{
		config:   &config.Config{ChatLogDir: t.TempDir()},
		sessions: session.NewManager(svc, orch, log),
		session:  session.NewSession(),
		log:      log,
		reader:   bufio.NewReader(strings.NewReader(input)),
		db:       db,
	}
}

// captureOutput redirects printlnFn into a slice for the duration of the
// test and returns a pointer to it.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, strings.TrimRight(fmt.Sprintln(args...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func outputContains(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

// stubInputs replaces the interactive prompt helpers so auth flows can run
// without a terminal. Each call to getPassword consumes the next entry of
// passwords; the last entry repeats.
func stubInputs(t *testing.T, username string, passwords ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		return username, nil
	}
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		pw := passwords[i]
		if i < len(passwords)-1 {
			i++
		}
		return []byte(pw), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

// loginAs registers and logs in a user directly through the session
// manager, bypassing the prompts.
func loginAs(t *testing.T, a *App, username, password string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, a.sessions.SignUp(ctx, a.session, username, password, password))
	require.NoError(t, a.sessions.Login(ctx, a.session, username, password))
}
