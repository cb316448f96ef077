package shell

import (
	"fmt"
	"log/slog"

	"github.com/shunichi-ikebuchi/file-manager/pkg/db"
	"github.com/shunichi-ikebuchi/file-manager/pkg/quiz"
	"github.com/shunichi-ikebuchi/file-manager/pkg/sysinfo"
)

func (s *Shell) systemInfo() error {
	s.con.Screen("SYSTEM INFORMATION")
	for _, line := range sysinfo.Collect().Lines() {
		s.con.Println(line)
	}
	return nil
}

func (s *Shell) about() error {
	s.con.Screen("ABOUT THE PROGRAM")
	s.con.Println(`
    +------------------------------------------+
    |   Console File Manager                   |
    |                                          |
    |   Browse and manage the working          |
    |   directory, keep a small account        |
    |   ledger and play a quiz.                |
    +------------------------------------------+`)
	s.con.Printf("    Version: %s\n", s.version)
	s.con.Printf("    Session: %s\n", s.sessionID)
	return nil
}

func (s *Shell) playQuiz() error {
	s.con.Screen("QUIZ")

	result, err := quiz.Play(s.con, s.questions)
	if err != nil {
		return err
	}

	s.done(CmdQuiz.Action(), fmt.Sprintf("%d/%d", result.Correct, result.Total))
	if s.history != nil {
		err := s.history.RecordQuizResult(db.QuizResult{
			SessionID: s.sessionID,
			Correct:   result.Correct,
			Total:     result.Total,
		})
		if err != nil {
			slog.Warn("Failed to record quiz result", "error", err)
		}
	}
	return nil
}
