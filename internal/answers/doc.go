// Package answers reconciles the fields a command needs against the answers
// it already has, asking the user only for what is missing or what must be
// entered again.
//
// [Reconciler.Require] fills in missing answers; [Reconciler.Update] asks for
// every field again with the known value as the default, except passwords,
// which are always asked masked and without a default. Each pass issues one
// batched call to the [prompt.Prompter].
package answers
