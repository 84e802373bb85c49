package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"
)

// lineReader is the subset of *liner.State the terminal adapter needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	PasswordPrompt(prompt string) (string, error)
}

// Terminal asks questions on the controlling terminal. Replies are read with
// liner so the user gets line editing; passwords are read without echo when
// stdin is a terminal.
type Terminal struct {
	in     lineReader
	out    io.Writer
	masked bool
	close  func() error
}

// NewTerminal opens a Terminal on stdin/stdout. Call Close to restore the
// terminal mode.
func NewTerminal() *Terminal {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &Terminal{
		in:     line,
		out:    os.Stdout,
		masked: term.IsTerminal(int(os.Stdin.Fd())),
		close:  line.Close,
	}
}

// Close releases the underlying line editor.
func (t *Terminal) Close() error {
	if t.close == nil {
		return nil
	}
	return t.close()
}

// Prompt asks each question in order. A question is repeated until its reply
// can be resolved to an answer.
func (t *Terminal) Prompt(ctx context.Context, questions []Question) (map[string]any, error) {
	answers := make(map[string]any, len(questions))
	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := t.ask(q)
		if err != nil {
			return nil, err
		}
		answers[q.Name] = v
	}
	return answers, nil
}

func (t *Terminal) ask(q Question) (any, error) {
	if q.Type == List {
		for i, c := range q.Choices {
			fmt.Fprintf(t.out, "  %d) %s\n", i+1, c)
		}
	}
	for {
		reply, err := t.read(q)
		if err != nil {
			return nil, err
		}
		if v, ok := resolve(q, reply); ok {
			return v, nil
		}
		fmt.Fprintln(t.out, hint(q))
	}
}

func (t *Terminal) read(q Question) (string, error) {
	var (
		reply string
		err   error
	)
	if q.Type == Password && t.masked {
		reply, err = t.in.PasswordPrompt(label(q))
	} else {
		reply, err = t.in.Prompt(label(q))
	}
	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%s: %w", q.Name, ErrAborted)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", q.Name, err)
	}
	return reply, nil
}

// label renders the prompt text shown in front of the cursor.
func label(q Question) string {
	switch q.Type {
	case Confirm:
		if def, ok := q.Default.(bool); ok && !def {
			return q.Message + " [y/N]: "
		}
		return q.Message + " [Y/n]: "
	case Password:
		return q.Message + ": "
	}
	if q.Default != nil {
		return fmt.Sprintf("%s [%v]: ", q.Message, q.Default)
	}
	return q.Message + ": "
}

// resolve maps a raw reply to an answer. It reports false when the reply is
// not acceptable and the question must be asked again.
func resolve(q Question, reply string) (any, bool) {
	if q.Type != Password {
		reply = strings.TrimSpace(reply)
	}
	if reply == "" {
		if q.Type == Confirm && q.Default == nil {
			return true, true
		}
		return q.Default, q.Default != nil
	}

	switch q.Type {
	case Confirm:
		switch strings.ToLower(reply) {
		case "y", "yes":
			return true, true
		case "n", "no":
			return false, true
		}
		return nil, false
	case List:
		if n, err := strconv.Atoi(reply); err == nil && n >= 1 && n <= len(q.Choices) {
			return q.Choices[n-1], true
		}
		for _, c := range q.Choices {
			if reply == c {
				return c, true
			}
		}
		return nil, false
	}
	return reply, true
}

func hint(q Question) string {
	switch q.Type {
	case Confirm:
		return "Please answer yes or no."
	case List:
		return fmt.Sprintf("Please enter a number between 1 and %d.", len(q.Choices))
	}
	return "A value is required."
}
