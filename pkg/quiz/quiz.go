// Package quiz provides the trivia quiz and its question bank.
package quiz

import (
	"fmt"
	"os"
	"strconv"

	"github.com/shunichi-ikebuchi/file-manager/pkg/console"
	"gopkg.in/yaml.v3"
)

// Question is a multiple-choice question. Answer is the 1-based index of the
// correct option.
type Question struct {
	Text    string   `yaml:"question"`
	Options []string `yaml:"options"`
	Answer  int      `yaml:"answer"`
}

// Bank is the YAML layout of a question bank file.
type Bank struct {
	Questions []Question `yaml:"questions"`
}

// Result is the outcome of one game.
type Result struct {
	Correct int
	Total   int
}

// Percent returns the share of correct answers in percent.
func (r Result) Percent() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total) * 100
}

// DefaultQuestions returns the built-in question bank.
func DefaultQuestions() []Question {
	return []Question{
		{Text: "What is the capital of France?", Options: []string{"London", "Berlin", "Paris", "Madrid"}, Answer: 3},
		{Text: "How many planets are in the Solar System?", Options: []string{"7", "8", "9", "10"}, Answer: 2},
		{Text: "Who wrote 'War and Peace'?", Options: []string{"Dostoevsky", "Tolstoy", "Pushkin", "Chekhov"}, Answer: 2},
		{Text: "Which programming language is this tool written in?", Options: []string{"Java", "C++", "Go", "JavaScript"}, Answer: 3},
		{Text: "How many bytes are in a kilobyte (KiB)?", Options: []string{"1000", "1024", "2048", "512"}, Answer: 2},
	}
}

// LoadQuestions reads a YAML question bank from path.
func LoadQuestions(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank: %w", err)
	}

	var bank Bank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(bank.Questions) == 0 {
		return nil, fmt.Errorf("question bank %s has no questions", path)
	}
	for i, q := range bank.Questions {
		if err := q.validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}

	return bank.Questions, nil
}

func (q Question) validate() error {
	if q.Text == "" {
		return fmt.Errorf("empty question text")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("need at least 2 options, got %d", len(q.Options))
	}
	if q.Answer < 1 || q.Answer > len(q.Options) {
		return fmt.Errorf("answer %d out of range 1-%d", q.Answer, len(q.Options))
	}
	return nil
}

// Play asks every question in order. A non-numeric answer counts as wrong.
func Play(c *console.Console, questions []Question) (Result, error) {
	result := Result{Total: len(questions)}

	for _, q := range questions {
		c.Println()
		c.Println(q.Text)
		for i, opt := range q.Options {
			c.Printf("%d. %s\n", i+1, opt)
		}

		answer, err := c.Prompt("Your answer (option number): ")
		if err != nil {
			return result, err
		}

		choice, err := strconv.Atoi(answer)
		switch {
		case err != nil:
			c.Error("Invalid input!")
		case choice == q.Answer:
			result.Correct++
			c.Success("Correct!")
		default:
			c.Error("Wrong! The correct answer is: %s", q.Options[q.Answer-1])
		}
	}

	c.Printf("\nResult: %d/%d correct answers (%.1f%%)\n", result.Correct, result.Total, result.Percent())
	return result, nil
}
