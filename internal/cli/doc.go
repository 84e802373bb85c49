// Package cli wires together the Cobra command tree for the clikit binary.
//
// It checks the invoked subcommand against the registered ones before Cobra
// runs, builds the answer reconciler and command invoker from the
// environment, and defines the profile subcommands (configure, show, get,
// region, reset, version).
package cli
