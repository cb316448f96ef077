// Package pathutil provides centralized path management for the working
// directory and the files the file manager persists.
package pathutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotDirectory is returned when a change-directory target is missing or is not a directory.
var ErrNotDirectory = errors.New("path not found or not a directory")

// ErrEmptyPath is returned when an empty path is supplied.
var ErrEmptyPath = errors.New("path must not be empty")

// PathResolver owns the mutable working directory and the fixed file locations.
type PathResolver struct {
	launchDir    string
	workDir      string
	ledgerPath   string
	snapshotFile string
	historyPath  string
	quizPath     string
}

// Config represents the configuration for PathResolver.
type Config struct {
	// LaunchDir is the process launch directory. Defaults to os.Getwd().
	LaunchDir string
	// WorkDir is the initial working directory. Defaults to LaunchDir.
	WorkDir string
	// LedgerFile is the ledger JSON file, relative paths resolved against LaunchDir.
	LedgerFile string
	// SnapshotFile is the snapshot file name written inside the working directory.
	SnapshotFile string
	// HistoryDB is the SQLite history file, relative paths resolved against LaunchDir.
	HistoryDB string
	// QuizFile is the optional YAML question bank, relative paths resolved against LaunchDir.
	QuizFile string
}

// New creates a new PathResolver with the given configuration.
// The initial working directory must exist and be a directory.
func New(config Config) (*PathResolver, error) {
	launchDir := config.LaunchDir
	if launchDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get launch directory: %w", err)
		}
		launchDir = wd
	}
	launchDir, err := filepath.Abs(launchDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve launch directory: %w", err)
	}

	p := &PathResolver{
		launchDir:    launchDir,
		workDir:      launchDir,
		ledgerPath:   anchor(launchDir, config.LedgerFile),
		snapshotFile: config.SnapshotFile,
		historyPath:  anchor(launchDir, config.HistoryDB),
		quizPath:     anchor(launchDir, config.QuizFile),
	}

	if config.WorkDir != "" {
		if _, err := p.ChangeDir(config.WorkDir); err != nil {
			return nil, fmt.Errorf("invalid initial working directory: %w", err)
		}
	}

	return p, nil
}

// anchor joins a relative name onto dir. Empty names stay empty.
func anchor(dir, name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// GetLaunchDir returns the directory the process was started from.
func (p *PathResolver) GetLaunchDir() string {
	return p.launchDir
}

// GetWorkDir returns the current working directory.
func (p *PathResolver) GetWorkDir() string {
	return p.workDir
}

// GetLedgerPath returns the ledger file path. It does not follow the working directory.
func (p *PathResolver) GetLedgerPath() string {
	return p.ledgerPath
}

// GetSnapshotPath returns the snapshot file path inside the current working directory.
func (p *PathResolver) GetSnapshotPath() string {
	return filepath.Join(p.workDir, p.snapshotFile)
}

// GetHistoryPath returns the history database path.
func (p *PathResolver) GetHistoryPath() string {
	return p.historyPath
}

// GetQuizPath returns the question bank path, or "" when none is configured.
func (p *PathResolver) GetQuizPath() string {
	return p.quizPath
}

// Resolve returns the normalized candidate path for user input.
// Absolute input is used as-is; anything else is joined onto the working directory.
func (p *PathResolver) Resolve(input string) string {
	if filepath.IsAbs(input) {
		return filepath.Clean(input)
	}
	return filepath.Join(p.workDir, input)
}

// ChangeDir replaces the working directory with the resolved input,
// but only if it exists and is a directory. On failure the working
// directory is left unchanged.
func (p *PathResolver) ChangeDir(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrEmptyPath
	}

	target := p.Resolve(input)
	if !p.IsDir(target) {
		return "", fmt.Errorf("%s: %w", target, ErrNotDirectory)
	}

	p.workDir = target
	return target, nil
}

// EnsureDir creates a directory if it doesn't exist.
// It creates all parent directories as needed (like mkdir -p).
func EnsureDir(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}
	return nil
}

// EnsureParentDir ensures the parent directory of a file exists.
func EnsureParentDir(filePath string) error {
	return EnsureDir(filepath.Dir(filePath))
}

// IsDir checks if a path is a directory.
func (p *PathResolver) IsDir(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}
