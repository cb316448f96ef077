package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/shunichi-ikebuchi/file-manager/pkg/db"
	"github.com/shunichi-ikebuchi/file-manager/pkg/snapshot"
	"github.com/shunichi-ikebuchi/file-manager/pkg/workdir"
	"github.com/spf13/cobra"
)

// snapshotCmd represents the snapshot command.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot [dir]",
	Short: "Save a directory listing to a text file",
	Long: `Write the names of the files and folders in a directory to the
snapshot file (listdir.txt by default) inside that directory.

The directory defaults to the working directory. With --show the
existing snapshot file is printed instead of being rewritten.

Example:
  fm snapshot
  fm snapshot ./photos
  fm snapshot --show ./photos`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSnapshot,
}

var showSnapshot bool

func init() {
	snapshotCmd.Flags().BoolVar(&showSnapshot, "show", false, "print the saved snapshot instead of writing a new one")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	if len(args) == 1 {
		if _, err := env.resolver.ChangeDir(args[0]); err != nil {
			return err
		}
	}

	dir := env.resolver.GetWorkDir()
	if showSnapshot {
		return printSnapshot(cmd, env.resolver.GetSnapshotPath())
	}

	slog.Info("Listing directory", "dir", dir)

	listing, err := workdir.ListDir(dir)
	if err != nil {
		return err
	}

	summary, err := snapshot.Write(env.resolver.GetSnapshotPath(), snapshot.New(listing.FileNames(), listing.DirNames()))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Contents saved to file: %s\n", filepath.Base(summary.Path))
	fmt.Fprintf(out, "Files found: %d, folders: %d\n", summary.Files, summary.Dirs)

	if env.history != nil {
		err := env.history.RecordAction(db.ActionRecord{
			SessionID: uuid.NewString(),
			Action:    "snapshot",
			WorkDir:   dir,
			Detail:    summary.Path,
		})
		if err != nil {
			slog.Warn("Failed to record action", "action", "snapshot", "error", err)
		}
	}

	slog.Info("Snapshot written", "path", summary.Path)
	return nil
}

func printSnapshot(cmd *cobra.Command, path string) error {
	slog.Debug("Reading snapshot", "path", path)
	snap, err := snapshot.Read(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n=== %s ===\n", path)
	fmt.Fprintf(out, "Files (%d):\n", len(snap.Files))
	for _, name := range snap.Files {
		fmt.Fprintf(out, "  %s\n", name)
	}
	fmt.Fprintf(out, "Folders (%d):\n", len(snap.Dirs))
	for _, name := range snap.Dirs {
		fmt.Fprintf(out, "  %s\n", name)
	}
	fmt.Fprintln(out)
	return nil
}
