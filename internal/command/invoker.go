package command

import (
	"io"
	"log/slog"
	"os"

	"github.com/dshills/clikit/internal/output"
)

// Invoker runs commands and turns their outcome into printed text and a
// process exit code.
type Invoker struct {
	out    io.Writer
	exit   func(code int)
	logger *slog.Logger
}

// Option configures an Invoker.
type Option func(*Invoker)

// WithOutput sets where results and errors are written.
func WithOutput(w io.Writer) Option {
	return func(in *Invoker) { in.out = w }
}

// WithExit replaces os.Exit.
func WithExit(fn func(code int)) Option {
	return func(in *Invoker) { in.exit = fn }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(in *Invoker) { in.logger = l }
}

// New creates an Invoker writing to stdout and exiting with os.Exit.
func New(opts ...Option) *Invoker {
	in := &Invoker{
		out:    os.Stdout,
		exit:   os.Exit,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Execute wraps fn into a function taking the command's explicit argument,
// if any. fn is a Command, or any function whose last parameter accepts a
// Done. Calling the wrapper checks fn and the argument count, runs fn, and
// when fn completes prints the outcome (under header, when given) and exits.
func (in *Invoker) Execute(fn any, header ...string) func(args ...any) {
	var title string
	if len(header) > 0 {
		title = header[0]
	}

	return func(args ...any) {
		cmd, err := lookup(fn)
		if err != nil {
			in.PrintAndExit(err, nil)
			return
		}
		if len(args) > 1 || len(args) != cmd.Arity() {
			in.logger.Debug("argument count mismatch", "want", cmd.Arity(), "got", len(args))
			in.PrintAndExit(ErrIncorrectArguments, nil)
			return
		}

		in.logger.Debug("invoking command", "arity", cmd.Arity(), "header", title)
		done := func(err error, v any) {
			in.exitWith(output.Render(err, v, title))
		}
		if err := cmd.Invoke(args, done); err != nil {
			in.PrintAndExit(err, nil)
		}
	}
}

// PrintAndExit prints err, or v when err is nil, and exits with the
// matching code.
func (in *Invoker) PrintAndExit(err error, v any) {
	in.exitWith(output.Render(err, v, ""))
}

func (in *Invoker) exitWith(e output.Exit) {
	if _, err := e.WriteTo(in.out); err != nil {
		in.logger.Warn("writing command output", "error", err)
	}
	in.logger.Debug("exiting", "code", e.Code)
	in.exit(e.Code)
}
