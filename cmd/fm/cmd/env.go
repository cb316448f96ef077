package cmd

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/shunichi-ikebuchi/file-manager/pkg/config"
	"github.com/shunichi-ikebuchi/file-manager/pkg/db"
	"github.com/shunichi-ikebuchi/file-manager/pkg/pathutil"
	"github.com/shunichi-ikebuchi/file-manager/pkg/quiz"
	"github.com/shunichi-ikebuchi/file-manager/pkg/shell"
	"github.com/spf13/cobra"
)

const lastSessionKey = "last_session_id"

// environment holds what every command needs: configuration, paths and the
// optional action history.
type environment struct {
	cfg      *config.Config
	resolver *pathutil.PathResolver
	conn     *db.Connection
	history  *db.History
}

// loadEnvironment loads configuration, applies command-line overrides and
// opens the action history. A history that cannot be opened is logged and
// skipped.
func loadEnvironment(cmd *cobra.Command, required ...[]string) (*environment, error) {
	cfg, err := config.Load(getConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if workDir != "" {
		cfg.Paths.WorkDir = workDir
	}
	if noColor {
		cfg.NoColor = true
	}

	if err := cfg.Validate(required...); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Debug {
		setupLogging(cmd.ErrOrStderr(), slog.LevelDebug)
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	resolver, err := pathutil.New(pathutil.Config{
		WorkDir:      cfg.Paths.WorkDir,
		LedgerFile:   cfg.Paths.LedgerFile,
		SnapshotFile: cfg.Paths.SnapshotFile,
		HistoryDB:    cfg.Paths.HistoryDB,
		QuizFile:     cfg.Quiz.File,
	})
	if err != nil {
		return nil, err
	}

	env := &environment{cfg: cfg, resolver: resolver}

	if !cfg.HistoryEnabled() {
		slog.Debug("Action history disabled")
		return env, nil
	}

	dbPath := resolver.GetHistoryPath()
	slog.Debug("Opening database", "path", dbPath)
	conn, err := db.Open(dbPath)
	if err != nil {
		slog.Warn("Action history unavailable, continuing without it", "path", dbPath, "error", err)
		return env, nil
	}
	env.conn = conn
	env.history = db.NewHistory(conn)

	return env, nil
}

func (e *environment) close() {
	if e.conn == nil {
		return
	}
	if err := e.conn.Close(); err != nil {
		slog.Warn("Failed to close database", "error", err)
	}
}

// shellHistory returns the history as the shell sees it, keeping the
// interface nil when no database is open.
func (e *environment) shellHistory() shell.History {
	if e.history == nil {
		return nil
	}
	return e.history
}

// markSession records the id of the session being started.
func (e *environment) markSession(sessionID string) {
	if e.history == nil {
		return
	}
	if err := e.history.SetMetadata(lastSessionKey, sessionID); err != nil {
		slog.Warn("Failed to record session", "error", err)
	}
}

// questions returns the configured question bank, or the built-in one.
func (e *environment) questions() ([]quiz.Question, error) {
	path := e.resolver.GetQuizPath()
	if path == "" {
		return quiz.DefaultQuestions(), nil
	}

	slog.Debug("Loading quiz questions", "path", path)
	questions, err := quiz.LoadQuestions(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz questions: %w", err)
	}
	return questions, nil
}
