package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
)

var recentLimit int

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display action history statistics",
	Long: `Display statistics about the actions recorded by previous sessions.

Shows:
- Total number of actions and sessions
- Number of actions per kind
- Quiz games played and the best score
- Last action timestamp
- The most recent actions

Example:
  fm stats
  fm stats --recent 20`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&recentLimit, "recent", 10, "number of recent actions to list")
}

func runStats(cmd *cobra.Command, args []string) error {
	slog.Info("Loading configuration")

	env, err := loadEnvironment(cmd, []string{"paths", "historyDb"})
	if err != nil {
		return err
	}
	defer env.close()

	if env.history == nil {
		return errors.New("action history is not available (FM_HISTORY_DB is off or the database could not be opened)")
	}

	stats, err := env.history.GetStats()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "\n=== Action Statistics ===")
	fmt.Fprintf(out, "Total actions:   %d\n", stats.TotalActions)
	fmt.Fprintf(out, "Total sessions:  %d\n", stats.TotalSessions)
	fmt.Fprintf(out, "Quiz games:      %d\n", stats.QuizGames)

	if stats.BestQuizScore.Valid {
		fmt.Fprintf(out, "Best quiz score: %s\n", stats.BestQuizScore.String)
	}
	if stats.LastAction.Valid {
		fmt.Fprintf(out, "Last action:     %s\n", stats.LastAction.String)
	} else {
		fmt.Fprintf(out, "Last action:     (never)\n")
	}

	lastSession, err := env.history.GetMetadata(lastSessionKey)
	if err != nil {
		return err
	}
	if lastSession != "" {
		fmt.Fprintf(out, "Last session:    %s\n", lastSession)
	}

	if len(stats.ByAction) > 0 {
		fmt.Fprintln(out, "\nBy action:")
		actions := make([]string, 0, len(stats.ByAction))
		for action := range stats.ByAction {
			actions = append(actions, action)
		}
		slices.Sort(actions)
		for _, action := range actions {
			fmt.Fprintf(out, "  %-15s %d\n", action, stats.ByAction[action])
		}
	}

	if recentLimit > 0 {
		recent, err := env.history.RecentActions(recentLimit)
		if err != nil {
			return err
		}
		if len(recent) > 0 {
			fmt.Fprintln(out, "\nRecent actions:")
			for _, r := range recent {
				fmt.Fprintf(out, "  %s  %-15s %s\n", r.PerformedAt.Format("2006-01-02 15:04:05"), r.Action, r.Detail)
			}
		}
	}

	fmt.Fprintln(out)

	slog.Info("Statistics displayed successfully")
	return nil
}
