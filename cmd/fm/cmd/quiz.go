package cmd

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/shunichi-ikebuchi/file-manager/pkg/db"
	"github.com/shunichi-ikebuchi/file-manager/pkg/quiz"
	"github.com/spf13/cobra"
)

// quizCmd represents the quiz command.
var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Play the quiz without the file manager menu",
	Long: `Play the quiz directly. Questions come from FM_QUIZ_FILE when it is
set, otherwise the built-in set is used.

Example:
  fm quiz
  FM_QUIZ_FILE=questions.yaml fm quiz`,
	Args: cobra.NoArgs,
	RunE: runQuiz,
}

func runQuiz(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	questions, err := env.questions()
	if err != nil {
		return err
	}

	con := newConsole(cmd)
	con.Screen("QUIZ")

	result, err := quiz.Play(con, questions)
	if err != nil {
		return err
	}

	if env.history != nil {
		err := env.history.RecordQuizResult(db.QuizResult{
			SessionID: uuid.NewString(),
			Correct:   result.Correct,
			Total:     result.Total,
		})
		if err != nil {
			slog.Warn("Failed to record quiz result", "error", err)
		}
	}
	return nil
}
