package cli

import "github.com/spf13/cobra"

// SubcommandIndex is the position of the subcommand name in the raw
// arguments. os.Args has no interpreter slot, so it follows the program name.
const SubcommandIndex = 1

// Host is the program whose subcommands are validated.
type Host interface {
	CommandNames() []string
	RawArgs() []string
	Help()
}

// Validate reports whether the invoked subcommand is registered with h. When
// it is not, h.Help is called once and false is returned.
func Validate(h Host) bool {
	var invoked string
	if args := h.RawArgs(); len(args) > SubcommandIndex {
		invoked = args[SubcommandIndex]
	}
	for _, name := range h.CommandNames() {
		if name == invoked {
			return true
		}
	}
	h.Help()
	return false
}

// cobraHost exposes a Cobra root command as a Host.
type cobraHost struct {
	root *cobra.Command
	args []string
}

func (h cobraHost) CommandNames() []string {
	var names []string
	for _, c := range h.root.Commands() {
		names = append(names, c.Name())
	}
	return names
}

func (h cobraHost) RawArgs() []string { return h.args }

func (h cobraHost) Help() { _ = h.root.Help() }
