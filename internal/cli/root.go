// Package cli builds the spotlight-manager command tree.
package cli

import (
	"context"
	"embed"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/spotlight-manager/internal/version"
	"github.com/arthur-debert/spotlight-manager/pkg/cobrax/topics"
	"github.com/arthur-debert/spotlight-manager/pkg/commands"
	"github.com/arthur-debert/spotlight-manager/pkg/orchestration"
	"github.com/arthur-debert/spotlight-manager/pkg/ui/confirmations"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// errSilent exits with status 1 once the outcome has already been shown
var errSilent = stderrors.New("command failed")

// Execute runs the CLI and returns the process exit status
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, NewRootCmd(), os.Stderr)
}

func run(ctx context.Context, rootCmd *cobra.Command, stderr io.Writer) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !stderrors.Is(err, errSilent) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&session{confirmer: confirmations.NewConsoleDialog()})
}

func newRootCmd(s *session) *cobra.Command {
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "spotlight-manager",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			s.setupLogging(cmd)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&s.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&s.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&s.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&s.format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "rules", Title: "Rules:"})
	rootCmd.AddGroup(&cobra.Group{ID: "store", Title: "One-off changes:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "Misc:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newExcludeCmd(s))
	rootCmd.AddCommand(newIncludeCmd(s))
	rootCmd.AddCommand(newAddCmd(s))
	rootCmd.AddCommand(newRemoveCmd(s))
	rootCmd.AddCommand(newListCmd(s))
	rootCmd.AddCommand(newJobCmd(s))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	if sub, err := fs.Sub(topicFiles, "topics"); err == nil {
		opts := topics.Options{Renderer: topics.NewMarkdownRenderer()}
		if err := topics.InitializeWithOptions(rootCmd, sub, opts); err != nil {
			log.Warn().Err(err).Msg("Help topics unavailable")
		}
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// action is the body of a command that needs the wired collaborators
type action func(ctx context.Context, env *commands.Env) (interface{}, error)

// run wires the environment, runs fn, and renders its result or error
func (s *session) run(cmd *cobra.Command, fn action) error {
	out, err := s.renderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	env, err := s.env(cmd.ErrOrStderr())
	if err != nil {
		return s.fail(cmd, err)
	}

	result, err := fn(cmd.Context(), env)
	if err != nil {
		return s.fail(cmd, err)
	}

	if err := out.RenderResult(result); err != nil {
		return err
	}
	if !succeeded(result) {
		return errSilent
	}
	return nil
}

func (s *session) fail(cmd *cobra.Command, err error) error {
	log.Debug().Err(err).Str("command", cmd.Name()).Msg("Command failed")
	r, rerr := s.renderer(cmd.ErrOrStderr())
	if rerr != nil {
		return err
	}
	if rerr := r.RenderError(err); rerr != nil {
		return err
	}
	return errSilent
}

// succeeded is false when the user declined the change or the indexing
// service could not be restarted. Both are already part of the rendered
// result.
func succeeded(result interface{}) bool {
	switch v := result.(type) {
	case *commands.ExcludeResult:
		return !v.Declined && v.RestartErr == nil
	case *commands.IncludeResult:
		return !v.Declined && v.RestartErr == nil
	case *commands.AddResult:
		return v.Job == nil || succeeded(v.Job)
	case *commands.RemoveResult:
		return v.Include == nil || succeeded(v.Include)
	case *orchestration.JobReport:
		return !v.Declined && v.RestartErr == nil
	default:
		return true
	}
}
