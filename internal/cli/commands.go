package cli

import (
	"context"
	"fmt"

	"github.com/arthur-debert/spotlight-manager/internal/version"
	"github.com/arthur-debert/spotlight-manager/pkg/commands"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// ruleArgs is NAME [SEARCH_DIR]
var ruleArgs = cobra.RangeArgs(1, 2)

func newExcludeCmd(s *session) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:     "exclude NAME [SEARCH_DIR]",
		Short:   MsgExcludeShort,
		Long:    MsgExcludeLong,
		Example: MsgExcludeExample,
		GroupID: "store",
		Args:    ruleArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := s.resolveBase(args)
			if err != nil {
				return err
			}
			return s.run(cmd, func(ctx context.Context, env *commands.Env) (interface{}, error) {
				return commands.Exclude(ctx, env, args[0], base, s.options(force, false))
			})
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	return cmd
}

func newIncludeCmd(s *session) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:               "include NAME [SEARCH_DIR]",
		Aliases:           []string{"unexclude"},
		Short:             MsgIncludeShort,
		Long:              MsgIncludeLong,
		GroupID:           "store",
		Args:              ruleArgs,
		ValidArgsFunction: s.ruleNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := s.resolveBase(args)
			if err != nil {
				return err
			}
			return s.run(cmd, func(ctx context.Context, env *commands.Env) (interface{}, error) {
				return commands.Include(ctx, env, args[0], base, s.options(force, false))
			})
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	return cmd
}

func newAddCmd(s *session) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:     "add NAME [SEARCH_DIR]",
		Short:   MsgAddShort,
		Long:    MsgAddLong,
		GroupID: "rules",
		Args:    ruleArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := s.resolveBase(args)
			if err != nil {
				return err
			}
			return s.run(cmd, func(ctx context.Context, env *commands.Env) (interface{}, error) {
				return commands.Add(ctx, env, args[0], base, s.options(force, false))
			})
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	return cmd
}

func newRemoveCmd(s *session) *cobra.Command {
	var force, strict bool
	cmd := &cobra.Command{
		Use:               "remove NAME [SEARCH_DIR]",
		Short:             MsgRemoveShort,
		Long:              MsgRemoveLong,
		GroupID:           "rules",
		Args:              ruleArgs,
		ValidArgsFunction: s.ruleNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := s.resolveBase(args)
			if err != nil {
				return err
			}
			return s.run(cmd, func(ctx context.Context, env *commands.Env) (interface{}, error) {
				return commands.Remove(ctx, env, args[0], base, s.options(force, strict))
			})
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)
	return cmd
}

func newListCmd(s *session) *cobra.Command {
	var showPaths bool
	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "rules",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(cmd, func(_ context.Context, env *commands.Env) (interface{}, error) {
				return commands.List(env, showPaths)
			})
		},
	}
	cmd.Flags().BoolVarP(&showPaths, "show-paths", "p", false, MsgFlagShowPaths)
	return cmd
}

func newJobCmd(s *session) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:     "job",
		Short:   MsgJobShort,
		Long:    MsgJobLong,
		GroupID: "rules",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(cmd, func(ctx context.Context, env *commands.Env) (interface{}, error) {
				return commands.Job(ctx, env, s.options(force, false))
			})
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionLine, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// ruleNamesCompletion offers the names of registered rules
func (s *session) ruleNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveFilterDirs
	}

	env, err := s.env(cmd.ErrOrStderr())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	registered, err := env.Registry.List()
	if err != nil {
		log.Debug().Err(err).Msg("Rule completion failed")
		return nil, cobra.ShellCompDirectiveError
	}

	seen := map[string]bool{}
	var names []string
	for _, r := range registered {
		if !seen[r.Name] {
			seen[r.Name] = true
			names = append(names, r.Name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
