package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dshills/clikit/internal/answers"
	"github.com/dshills/clikit/internal/command"
	"github.com/dshills/clikit/internal/output"
)

var regions = []string{"us-east", "us-west", "eu-central"}

var profileFields = []answers.Field{
	{Name: "endpoint", Message: "API endpoint", Default: "https://api.example.com"},
	{Name: "username", Message: "Username"},
	{Name: "password", Message: "Password", Type: answers.Password},
	{Name: "region", Message: "Region", Type: answers.List, Choices: regions},
}

func newConfigureCmd(a *app) *cobra.Command {
	var update, defaults bool
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Ask for missing profile settings and save them",
		Long: "Ask for every profile setting that has no saved value. With --update every " +
			"setting is asked again, using the saved value as the default; the password " +
			"is always entered again.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a.invoker.Execute(command.Func(func(done command.Done) {
				got, err := a.collect(ctx, update, defaults)
				if err != nil {
					done(err, nil)
					return
				}
				if err := a.store.Save(got); err != nil {
					done(fmt.Errorf("saving profile: %w", err), nil)
					return
				}
				done(nil, profileView(got))
			}), "Profile saved")()
			return nil
		},
	}
	cmd.Flags().BoolVar(&update, "update", false, "Ask for every setting again")
	cmd.Flags().BoolVar(&defaults, "defaults", false, "Accept defaults without prompting")
	return cmd
}

// collect runs one reconciliation pass over profileFields against the saved
// profile.
func (a *app) collect(ctx context.Context, update, defaults bool) (answers.Answers, error) {
	known, err := a.store.Load()
	if err != nil {
		return nil, err
	}
	r, release := a.reconciler(defaults)
	defer release()

	if update {
		return r.Update(ctx, profileFields, known)
	}
	return r.Require(ctx, profileFields, known)
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.invoker.Execute(command.Func(func(done command.Done) {
				profile, err := a.store.Load()
				if err != nil {
					done(err, nil)
					return
				}
				view := output.NewMap()
				view.Set("file", a.store.Path())
				view.Set("settings", profileView(profile))
				done(nil, view)
			}))()
			return nil
		},
	}
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one saved setting",
		RunE: func(cmd *cobra.Command, args []string) error {
			explicit := make([]any, len(args))
			for i, arg := range args {
				explicit[i] = arg
			}
			a.invoker.Execute(command.ArgFunc[string](func(key string, done command.Done) {
				profile, err := a.store.Load()
				if err != nil {
					done(err, nil)
					return
				}
				v, ok := profile[key]
				if !ok {
					done(fmt.Errorf("no saved value for %q", key), nil)
					return
				}
				done(nil, map[string]any{key: v})
			}))(explicit...)
			return nil
		},
	}
}

func newRegionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "region",
		Short: "Pick the profile region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a.invoker.Execute(command.Func(func(done command.Done) {
				profile, err := a.store.Load()
				if err != nil {
					done(err, nil)
					return
				}
				r, release := a.reconciler(false)
				choice, err := r.ChooseOne(ctx, "Region", regions)
				release()
				if err != nil {
					done(err, nil)
					return
				}
				profile["region"] = choice
				if err := a.store.Save(profile); err != nil {
					done(fmt.Errorf("saving profile: %w", err), nil)
					return
				}
				done(nil, map[string]any{"region": choice})
			}), "Region updated")()
			return nil
		},
	}
}

func newResetCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a.invoker.Execute(command.Func(func(done command.Done) {
				if !yes {
					r, release := a.reconciler(false)
					ok, err := r.Confirm(ctx, fmt.Sprintf("Delete profile at %s?", a.store.Path()), false)
					release()
					if err != nil {
						done(err, nil)
						return
					}
					if !ok {
						done(nil, "Profile kept.")
						return
					}
				}
				existed, err := a.store.Remove()
				switch {
				case err != nil:
					done(err, nil)
				case existed:
					done(nil, "Profile removed.")
				default:
					done(nil, "No profile to remove.")
				}
			}))()
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking")
	return cmd
}

// profileView orders a profile for display: profile fields first, in field
// order, then any other saved keys sorted.
func profileView(profile map[string]any) *output.Map {
	view := output.NewMap()
	seen := make(map[string]bool, len(profileFields))
	for _, f := range profileFields {
		seen[f.Name] = true
		if v, ok := profile[f.Name]; ok {
			view.Set(f.Name, v)
		}
	}
	var extra []string
	for k := range profile {
		if !seen[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		view.Set(k, profile[k])
	}
	return view
}
