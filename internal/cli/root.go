package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/clikit/internal/answers"
	"github.com/dshills/clikit/internal/command"
	"github.com/dshills/clikit/internal/config"
	"github.com/dshills/clikit/internal/logging"
	"github.com/dshills/clikit/internal/output"
	"github.com/dshills/clikit/internal/prompt"
)

const version = "0.1.0"

// ExitUsageError is returned by Run when the command line cannot be run.
// Commands themselves exit through command.Invoker with output.ExitSuccess
// or output.ExitFailure.
const ExitUsageError = 2

// Env is everything the command tree takes from the process.
type Env struct {
	Args     []string
	Out      io.Writer
	Err      io.Writer
	Exit     func(code int)
	Settings config.Settings
	// Prompter replaces the interactive terminal when set.
	Prompter prompt.Prompter
}

// app holds the collaborators shared by subcommands.
type app struct {
	env     Env
	store   *config.Store
	invoker *command.Invoker
	logger  *slog.Logger
}

// reconciler returns a Reconciler and a function releasing its prompter.
// defaults selects the non-interactive Echo prompter.
func (a *app) reconciler(defaults bool) (*answers.Reconciler, func()) {
	opt := answers.WithLogger(a.logger)
	switch {
	case a.env.Prompter != nil:
		return answers.New(a.env.Prompter, opt), func() {}
	case defaults:
		return answers.New(prompt.Echo{}, opt), func() {}
	}
	t := prompt.NewTerminal()
	return answers.New(t, opt), func() {
		if err := t.Close(); err != nil {
			a.logger.Warn("closing terminal", "error", err)
		}
	}
}

// Run executes the clikit command tree against the real process and
// returns an exit code.
func Run() int {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitUsageError
	}
	return run(Env{
		Args:     os.Args,
		Out:      os.Stdout,
		Err:      os.Stderr,
		Exit:     os.Exit,
		Settings: settings,
	})
}

func run(env Env) int {
	logger, err := logging.New(env.Settings.LogLevel, env.Settings.LogFormat, env.Err)
	if err != nil {
		fmt.Fprintf(env.Err, "Error: %v\n", err)
		return ExitUsageError
	}

	store, err := config.NewStore(env.Settings.ProfilePath)
	if err != nil {
		fmt.Fprintf(env.Err, "Error: %v\n", err)
		return ExitUsageError
	}

	a := &app{
		env:   env,
		store: store,
		invoker: command.New(
			command.WithOutput(env.Out),
			command.WithExit(env.Exit),
			command.WithLogger(logger),
		),
		logger: logger,
	}

	root := newRootCmd(a)
	root.SetOut(env.Out)
	root.SetErr(env.Err)
	root.InitDefaultHelpCmd()

	if !Validate(cobraHost{root: root, args: env.Args}) {
		logger.Debug("unknown subcommand", "args", env.Args)
		return ExitUsageError
	}

	root.SetArgs(env.Args[1:])
	if err := root.ExecuteContext(context.Background()); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}
	return output.ExitSuccess
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "clikit",
		Short: "Collect and show profile settings",
		Long:  "clikit asks for the settings a profile needs, saves them, and prints them back with secrets masked.",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.AddCommand(newConfigureCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newGetCmd(a))
	root.AddCommand(newRegionCmd(a))
	root.AddCommand(newResetCmd(a))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print clikit version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "clikit version %s\n", version)
		},
	})
	return root
}
