package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FM_WORKDIR", "FM_LEDGER_FILE", "FM_SNAPSHOT_FILE", "FM_HISTORY_DB",
		"FM_QUIZ_FILE", "FM_CURRENCY", "FM_NO_COLOR", "DEBUG",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Paths.WorkDir)
	assert.Equal(t, DefaultLedgerFile, cfg.Paths.LedgerFile)
	assert.Equal(t, DefaultSnapshotFile, cfg.Paths.SnapshotFile)
	assert.Equal(t, DefaultHistoryDB, cfg.Paths.HistoryDB)
	assert.Equal(t, DefaultCurrency, cfg.Currency)
	assert.False(t, cfg.NoColor)
	assert.False(t, cfg.Debug)
	assert.True(t, cfg.HistoryEnabled())
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	for _, key := range []string{"FM_LEDGER_FILE", "FM_CURRENCY", "FM_HISTORY_DB", "DEBUG"} {
		os.Unsetenv(key)
	}

	envFile := filepath.Join(t.TempDir(), "test.env")
	content := "FM_LEDGER_FILE=wallet.json\nFM_CURRENCY=EUR\nFM_HISTORY_DB=off\nDEBUG=true\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0644))
	t.Cleanup(func() {
		for _, key := range []string{"FM_LEDGER_FILE", "FM_CURRENCY", "FM_HISTORY_DB", "DEBUG"} {
			os.Unsetenv(key)
		}
	})

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "wallet.json", cfg.Paths.LedgerFile)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.HistoryEnabled())
}

func TestLoadMissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		required [][]string
		wantErr  bool
	}{
		{
			name:     "all present",
			cfg:      Config{Paths: PathsConfig{LedgerFile: "a.json", SnapshotFile: "l.txt"}, Currency: "RUB"},
			required: [][]string{{"paths", "ledgerFile"}, {"currency"}},
		},
		{
			name:     "missing workdir",
			cfg:      Config{Paths: PathsConfig{SnapshotFile: "l.txt"}},
			required: [][]string{{"paths", "workDir"}},
			wantErr:  true,
		},
		{
			name:    "snapshot file with separator",
			cfg:     Config{Paths: PathsConfig{SnapshotFile: "sub/listdir.txt"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate(tt.required...)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
