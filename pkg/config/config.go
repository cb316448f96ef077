// Package config provides configuration management for the file manager.
// It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Default file names, matching the files earlier versions of the tool wrote.
const (
	DefaultLedgerFile   = "bank_account.json"
	DefaultSnapshotFile = "listdir.txt"
	DefaultHistoryDB    = ".fm/history.db"
	DefaultCurrency     = "RUB"

	// HistoryDisabled turns the SQLite action history off when used as FM_HISTORY_DB.
	HistoryDisabled = "off"
)

// Config represents the application configuration.
type Config struct {
	Paths    PathsConfig
	Quiz     QuizConfig
	Currency string
	NoColor  bool
	Debug    bool
}

// PathsConfig represents file and directory locations.
type PathsConfig struct {
	// WorkDir is the initial working directory. Empty means the launch directory.
	WorkDir string
	// LedgerFile is resolved against the launch directory, not the working directory.
	LedgerFile string
	// SnapshotFile is a bare file name written inside the working directory.
	SnapshotFile string
	// HistoryDB is the SQLite action history path, or "off".
	HistoryDB string
}

// QuizConfig represents quiz configuration.
type QuizConfig struct {
	// File is an optional YAML question bank. Empty means the built-in bank.
	File string
}

// Load loads configuration from environment variables.
// It automatically loads .env file from the current directory if available.
// You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	config := &Config{
		Paths: PathsConfig{
			WorkDir:      os.Getenv("FM_WORKDIR"),
			LedgerFile:   getEnvOrDefault("FM_LEDGER_FILE", DefaultLedgerFile),
			SnapshotFile: getEnvOrDefault("FM_SNAPSHOT_FILE", DefaultSnapshotFile),
			HistoryDB:    getEnvOrDefault("FM_HISTORY_DB", DefaultHistoryDB),
		},
		Quiz: QuizConfig{
			File: os.Getenv("FM_QUIZ_FILE"),
		},
		Currency: getEnvOrDefault("FM_CURRENCY", DefaultCurrency),
		NoColor:  parseBoolEnv("FM_NO_COLOR"),
		Debug:    parseBoolEnv("DEBUG"),
	}

	return config, nil
}

// Validate validates the configuration.
// It checks if all required fields are set and that the snapshot file
// is a bare file name.
func (c *Config) Validate(required ...[]string) error {
	var missing []string

	for _, path := range required {
		if len(path) == 0 {
			continue
		}

		var value string
		switch path[0] {
		case "paths":
			if len(path) < 2 {
				continue
			}
			switch path[1] {
			case "workDir":
				value = c.Paths.WorkDir
			case "ledgerFile":
				value = c.Paths.LedgerFile
			case "snapshotFile":
				value = c.Paths.SnapshotFile
			case "historyDb":
				value = c.Paths.HistoryDB
			}
		case "quiz":
			if len(path) > 1 && path[1] == "file" {
				value = c.Quiz.File
			}
		case "currency":
			value = c.Currency
		}

		if value == "" {
			missing = append(missing, strings.Join(path, "."))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %v\nPlease check your .env file or environment variables", missing)
	}

	if strings.ContainsAny(c.Paths.SnapshotFile, `/\`) {
		return fmt.Errorf("invalid FM_SNAPSHOT_FILE %q: must be a file name, not a path", c.Paths.SnapshotFile)
	}

	return nil
}

// HistoryEnabled reports whether the action history database should be opened.
func (c *Config) HistoryEnabled() bool {
	return c.Paths.HistoryDB != "" && !strings.EqualFold(c.Paths.HistoryDB, HistoryDisabled)
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseBoolEnv treats "1", "true" and "yes" (any case) as true.
func parseBoolEnv(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes":
		return true
	}
	return false
}
