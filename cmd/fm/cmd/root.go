// Package cmd provides CLI commands for fm.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/shunichi-ikebuchi/file-manager/pkg/console"
	"github.com/shunichi-ikebuchi/file-manager/pkg/ledger"
	"github.com/shunichi-ikebuchi/file-manager/pkg/shell"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X .../cmd.version=...".
var version = "dev"

var (
	cfgFile string
	debug   bool
	workDir string
	noColor bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fm",
	Short: "Menu-driven console file manager",
	Long: `fm is an interactive console file manager.

It supports:
- Creating, deleting, copying and listing files and folders
- Changing the working directory
- Saving the directory contents to a text file
- A small bank account ledger kept in a JSON file
- A quiz and system information screens

Example:
  fm
  fm --workdir ~/Documents
  fm snapshot ./photos
  fm balance`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// The interactive shell logs warnings only unless --debug is set.
		logLevel := slog.LevelInfo
		if !cmd.HasParent() {
			logLevel = slog.LevelWarn
		}
		if debug {
			logLevel = slog.LevelDebug
		}
		setupLogging(cmd.ErrOrStderr(), logLevel)
	},
	RunE: runShell,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&workDir, "workdir", "", "initial working directory (default is the current directory)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(quizCmd)
}

func setupLogging(w io.Writer, level slog.Level) {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// Helper function to get config file path.
func getConfigFile() string {
	if cfgFile != "" {
		return cfgFile
	}
	return "" // Will use default .env loading
}

// newConsole binds a console to the command's streams. Screen clearing and
// pausing are only enabled when both ends are terminals.
func newConsole(cmd *cobra.Command) *console.Console {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()

	var opts console.Options
	inFile, inOK := in.(*os.File)
	outFile, outOK := out.(*os.File)
	if inOK && outOK {
		opts = console.DetectOptions(inFile, outFile)
	}
	return console.New(in, out, opts)
}

func runShell(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	questions, err := env.questions()
	if err != nil {
		return err
	}

	sessionID := uuid.NewString()
	slog.Debug("Starting session",
		"session", sessionID,
		"launch_dir", env.resolver.GetLaunchDir(),
		"workdir", env.resolver.GetWorkDir(),
	)
	env.markSession(sessionID)

	sh := shell.New(shell.Config{
		Console:   newConsole(cmd),
		Resolver:  env.resolver,
		Ledger:    ledger.NewStore(env.resolver.GetLedgerPath()),
		History:   env.shellHistory(),
		SessionID: sessionID,
		Questions: questions,
		Currency:  env.cfg.Currency,
		Version:   version,
	})

	if err := sh.Run(); err != nil {
		return fmt.Errorf("shell stopped: %w", err)
	}
	return nil
}
