// Package shell implements the interactive menu loop and its command handlers.
package shell

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/shunichi-ikebuchi/file-manager/pkg/console"
	"github.com/shunichi-ikebuchi/file-manager/pkg/db"
	"github.com/shunichi-ikebuchi/file-manager/pkg/ledger"
	"github.com/shunichi-ikebuchi/file-manager/pkg/pathutil"
	"github.com/shunichi-ikebuchi/file-manager/pkg/quiz"
	"github.com/shunichi-ikebuchi/file-manager/pkg/workdir"
)

// History receives completed actions. *db.History implements it.
type History interface {
	RecordAction(record db.ActionRecord) error
	RecordQuizResult(result db.QuizResult) error
}

// Config wires a Shell.
type Config struct {
	Console   *console.Console
	Resolver  *pathutil.PathResolver
	Ledger    *ledger.Store
	History   History // optional
	SessionID string
	Questions []quiz.Question // defaults to quiz.DefaultQuestions
	Currency  string
	Version   string
}

// Shell is one interactive session. It owns the working directory through
// its PathResolver; nothing else mutates it.
type Shell struct {
	con       *console.Console
	resolver  *pathutil.PathResolver
	repo      workdir.Repository
	store     *ledger.Store
	history   History
	sessionID string
	questions []quiz.Question
	currency  string
	version   string
	now       func() time.Time

	// unsaved holds an account whose final save failed, so the next
	// account session continues from it instead of reloading the file.
	unsaved *ledger.Account
}

// New creates a Shell.
func New(cfg Config) *Shell {
	questions := cfg.Questions
	if len(questions) == 0 {
		questions = quiz.DefaultQuestions()
	}
	return &Shell{
		con:       cfg.Console,
		resolver:  cfg.Resolver,
		repo:      workdir.NewFileSystemRepository(cfg.Resolver),
		store:     cfg.Ledger,
		history:   cfg.History,
		sessionID: cfg.SessionID,
		questions: questions,
		currency:  cfg.Currency,
		version:   cfg.Version,
		now:       time.Now,
	}
}

// Run shows the main menu until the user quits or input ends. Handler
// failures are reported and the loop continues; only a console read error
// other than end of input is returned.
func (s *Shell) Run() error {
	slog.Debug("Shell started", "session", s.sessionID, "workdir", s.resolver.GetWorkDir())

	for {
		choice, err := s.showMenu()
		if err != nil {
			return s.stop(err)
		}

		cmd, ok := ParseCommand(choice)
		if !ok {
			s.con.Error("Invalid menu selection! Please choose 1-%d.", len(Commands))
			if err := s.con.WaitForEnter(); err != nil {
				return s.stop(err)
			}
			continue
		}

		if cmd == CmdQuit {
			return s.stop(nil)
		}

		if err := s.dispatch(cmd); err != nil {
			if isInputClosed(err) {
				return s.stop(err)
			}
			s.report(cmd, err)
		}

		// the account session pauses on its own before returning
		if cmd == CmdAccount {
			continue
		}
		if err := s.con.WaitForEnter(); err != nil {
			return s.stop(err)
		}
	}
}

// dispatch runs the handler of cmd.
func (s *Shell) dispatch(cmd Command) error {
	switch cmd {
	case CmdCreateFolder:
		return s.createFolder()
	case CmdDelete:
		return s.deleteEntry()
	case CmdCopy:
		return s.copyEntry()
	case CmdListAll:
		return s.listAll()
	case CmdListDirs:
		return s.listDirs()
	case CmdListFiles:
		return s.listFiles()
	case CmdSystemInfo:
		return s.systemInfo()
	case CmdAbout:
		return s.about()
	case CmdQuiz:
		return s.playQuiz()
	case CmdAccount:
		return s.accountSession()
	case CmdChangeDir:
		return s.changeDir()
	case CmdSnapshot:
		return s.saveSnapshot()
	case CmdQuit, CmdInvalid:
		return nil
	}
	return fmt.Errorf("unhandled command %d", cmd)
}

func (s *Shell) showMenu() (string, error) {
	s.con.Screen("CONSOLE FILE MANAGER")
	s.con.Printf("Current directory: %s\n", s.resolver.GetWorkDir())
	s.con.Rule("=")
	for _, cmd := range Commands {
		s.con.Printf("%d. %s\n", int(cmd), cmd.Label())
	}
	s.con.Rule("=")
	return s.con.Prompt("Choose a menu item: ")
}

// stop ends the session. End of input counts as quitting.
func (s *Shell) stop(err error) error {
	if err != nil && !isInputClosed(err) {
		return fmt.Errorf("failed to read input: %w", err)
	}
	s.con.Clear()
	s.con.Println("Thank you for using the program! Goodbye!")
	slog.Debug("Shell stopped", "session", s.sessionID)
	return nil
}

// done announces a completed action and records it in the history.
func (s *Shell) done(action, detail string) {
	s.con.Dim("[%s] done: %s", s.now().Format("15:04:05"), action)
	slog.Info("Action completed", "action", action, "detail", detail)

	if s.history == nil {
		return
	}
	err := s.history.RecordAction(db.ActionRecord{
		SessionID: s.sessionID,
		Action:    action,
		WorkDir:   s.resolver.GetWorkDir(),
		Detail:    detail,
	})
	if err != nil {
		slog.Warn("Failed to record action", "action", action, "error", err)
	}
}

// report renders a handler failure.
func (s *Shell) report(cmd Command, err error) {
	slog.Warn("Action failed", "action", cmd.Action(), "kind", Classify(err), "error", err)
	s.con.Error("%s", Describe(err))
}

func isInputClosed(err error) bool {
	return errors.Is(err, io.EOF)
}
