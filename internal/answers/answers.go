package answers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dshills/clikit/internal/prompt"
)

var (
	// ErrNoChoices is returned when a list field or selection has no choices.
	ErrNoChoices = errors.New("list has no choices")
	// ErrNoReply is returned when the prompter leaves a question unanswered.
	ErrNoReply = errors.New("no reply")
)

// FieldType selects how a field is asked.
type FieldType string

const (
	Normal   FieldType = "normal"
	Password FieldType = "password"
	List     FieldType = "list"
)

// Field describes one answer to collect. A nil Default means the field has
// no default of its own.
type Field struct {
	Name    string
	Message string
	Type    FieldType
	Default any
	Choices []string
}

// Answers maps field names to resolved values.
type Answers map[string]any

// Defined reports whether name has a non-nil value.
func (a Answers) Defined(name string) bool {
	v, ok := a[name]
	return ok && v != nil
}

// Reconciler decides which fields to ask and merges the replies.
type Reconciler struct {
	prompter prompt.Prompter
	logger   *slog.Logger
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Reconciler) { r.logger = l }
}

// New creates a Reconciler that asks through p.
func New(p prompt.Prompter, opts ...Option) *Reconciler {
	r := &Reconciler{
		prompter: p,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Require asks for every field that has no defined value in known and merges
// the replies into known, which is also returned. A nil known is replaced by
// a new map.
func (r *Reconciler) Require(ctx context.Context, fields []Field, known Answers) (Answers, error) {
	if known == nil {
		known = Answers{}
	}
	if err := checkFields(fields); err != nil {
		return known, err
	}

	var questions []prompt.Question
	for _, f := range unique(fields) {
		if known.Defined(f.Name) {
			continue
		}
		q := question(f)
		switch {
		case f.Default != nil:
			q.Default = f.Default
		case f.Type == List:
			q.Default = f.Choices[0]
		}
		questions = append(questions, q)
	}
	return r.ask(ctx, questions, known)
}

// Update asks for every field again. Non-password fields default to their
// known value, else to the field default. Password fields never carry a
// default so a stored secret is neither reused nor shown.
func (r *Reconciler) Update(ctx context.Context, fields []Field, known Answers) (Answers, error) {
	if known == nil {
		known = Answers{}
	}
	if err := checkFields(fields); err != nil {
		return known, err
	}

	var questions []prompt.Question
	for _, f := range unique(fields) {
		q := question(f)
		switch {
		case f.Type == Password:
			// always asked blank
		case known.Defined(f.Name):
			q.Default = known[f.Name]
		default:
			q.Default = f.Default
		}
		questions = append(questions, q)
	}
	return r.ask(ctx, questions, known)
}

// Confirm asks a yes/no question. The default answer is true unless a
// default is given.
func (r *Reconciler) Confirm(ctx context.Context, message string, def ...bool) (bool, error) {
	d := true
	if len(def) > 0 {
		d = def[0]
	}
	got, err := r.ask(ctx, []prompt.Question{{
		Name:    "confirm",
		Message: message,
		Type:    prompt.Confirm,
		Default: d,
	}}, Answers{})
	if err != nil {
		return false, err
	}
	return reply[bool](got, "confirm")
}

// ChooseOne asks the user to pick one of choices. The first choice is the
// default.
func (r *Reconciler) ChooseOne(ctx context.Context, message string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}
	got, err := r.ask(ctx, []prompt.Question{{
		Name:    "choice",
		Message: message,
		Type:    prompt.List,
		Default: choices[0],
		Choices: choices,
	}}, Answers{})
	if err != nil {
		return "", err
	}
	choice, err := reply[string](got, "choice")
	if err != nil {
		return "", err
	}
	for _, c := range choices {
		if c == choice {
			return choice, nil
		}
	}
	return "", fmt.Errorf("prompting for answers: %q is not one of the choices", choice)
}

// reply returns the answer to question name as a T.
func reply[T any](got Answers, name string) (T, error) {
	var zero T
	v, ok := got[name]
	if !ok || v == nil {
		return zero, fmt.Errorf("prompting for answers: %w for %q", ErrNoReply, name)
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("prompting for answers: reply for %q is %T, want %T", name, v, zero)
	}
	return t, nil
}

// ask runs one prompting pass and merges the replies into known.
func (r *Reconciler) ask(ctx context.Context, questions []prompt.Question, known Answers) (Answers, error) {
	if len(questions) == 0 {
		r.logger.Debug("nothing to ask")
		return known, nil
	}
	r.logger.Debug("prompting", "questions", len(questions))

	replies, err := r.prompter.Prompt(ctx, questions)
	if err != nil {
		return known, fmt.Errorf("prompting for answers: %w", err)
	}
	for _, q := range questions {
		if v, ok := replies[q.Name]; ok {
			known[q.Name] = v
		}
	}
	return known, nil
}

func question(f Field) prompt.Question {
	q := prompt.Question{
		Name:    f.Name,
		Message: f.Message,
		Type:    prompt.Input,
		Choices: f.Choices,
	}
	switch f.Type {
	case Password:
		q.Type = prompt.Password
	case List:
		q.Type = prompt.List
	}
	return q
}

func checkFields(fields []Field) error {
	for _, f := range fields {
		if f.Type == List && len(f.Choices) == 0 {
			return fmt.Errorf("field %q: %w", f.Name, ErrNoChoices)
		}
	}
	return nil
}

// unique drops repeated field names, keeping the first occurrence.
func unique(fields []Field) []Field {
	seen := make(map[string]bool, len(fields))
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		if seen[f.Name] {
			continue
		}
		seen[f.Name] = true
		out = append(out, f)
	}
	return out
}
