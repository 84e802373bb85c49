package prompt

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrAborted is returned when the user interrupts a prompt (Ctrl-C or EOF).
	ErrAborted = errors.New("prompt aborted")
	// ErrNoDefault is returned by Echo for a question it has no answer for.
	ErrNoDefault = errors.New("no default answer")
)

// QuestionType selects how a question is asked and how its reply is parsed.
type QuestionType string

const (
	Input    QuestionType = "input"
	Password QuestionType = "password"
	List     QuestionType = "list"
	Confirm  QuestionType = "confirm"
)

// Question is one thing to ask the user. A nil Default means the question
// has no default and the reply must be non-empty.
type Question struct {
	Name    string
	Message string
	Type    QuestionType
	Default any
	Choices []string
}

// Prompter asks a batch of questions and returns the answers keyed by
// question name.
type Prompter interface {
	Prompt(ctx context.Context, questions []Question) (map[string]any, error)
}

// Echo answers every question without reading input. A question resolves to
// its Default; a list without one to its first choice; a confirmation
// without one to true; anything else to Sentinel. With no Sentinel such a
// question fails with ErrNoDefault, so a required answer is never left empty.
type Echo struct {
	Sentinel any
}

func (e Echo) Prompt(ctx context.Context, questions []Question) (map[string]any, error) {
	answers := make(map[string]any, len(questions))
	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := e.answer(q)
		if err != nil {
			return nil, err
		}
		answers[q.Name] = v
	}
	return answers, nil
}

func (e Echo) answer(q Question) (any, error) {
	switch {
	case q.Default != nil:
		return q.Default, nil
	case q.Type == List && len(q.Choices) > 0:
		return q.Choices[0], nil
	case q.Type == Confirm:
		return true, nil
	case e.Sentinel != nil:
		return e.Sentinel, nil
	}
	return nil, fmt.Errorf("%s: %w", q.Name, ErrNoDefault)
}
