package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/spotlight-manager/pkg/commands"
	"github.com/arthur-debert/spotlight-manager/pkg/config"
	"github.com/arthur-debert/spotlight-manager/pkg/datastore"
	"github.com/arthur-debert/spotlight-manager/pkg/filesystem"
	"github.com/arthur-debert/spotlight-manager/pkg/logging"
	"github.com/arthur-debert/spotlight-manager/pkg/paths"
	"github.com/arthur-debert/spotlight-manager/pkg/reconcile"
	"github.com/arthur-debert/spotlight-manager/pkg/registry"
	"github.com/arthur-debert/spotlight-manager/pkg/rules"
	"github.com/arthur-debert/spotlight-manager/pkg/service"
	"github.com/arthur-debert/spotlight-manager/pkg/ui"
	"github.com/arthur-debert/spotlight-manager/pkg/ui/confirmations"
	"github.com/spf13/cobra"
)

// session holds the global flag values of one invocation and builds the
// collaborators commands need
type session struct {
	verbosity  int
	dryRun     bool
	configFile string
	format     string

	// confirmer asks before writes; NewRootCmd sets the console dialog
	confirmer confirmations.Confirmer

	paths *paths.Paths
}

// setupLogging runs before every command. A failure to resolve paths only
// costs the log file; commands that need paths report it themselves.
func (s *session) setupLogging(cmd *cobra.Command) {
	opts := logging.Options{Verbosity: s.verbosity, Console: cmd.ErrOrStderr()}
	if p, err := paths.New(s.configFile); err == nil {
		s.paths = p
		opts.LogFile = p.LogFilePath()
	}
	logging.SetupLogger(opts)
}

func (s *session) resolvePaths() (*paths.Paths, error) {
	if s.paths != nil {
		return s.paths, nil
	}
	p, err := paths.New(s.configFile)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}
	s.paths = p
	return p, nil
}

// loadConfig resolves and loads the config file
func (s *session) loadConfig(stderr io.Writer) (*paths.Paths, *config.Config, error) {
	p, err := s.resolvePaths()
	if err != nil {
		return nil, nil, err
	}

	if p.UsedLegacyConfig() {
		fmt.Fprintf(stderr, MsgLegacyConfig, p.ConfigFile(), filepath.Join(xdg.ConfigHome, paths.AppDirName, paths.ConfigFileName))
	}

	cfg, err := config.Load(config.LoadOptions{
		File:            p.ConfigFile(),
		DefaultLockFile: p.StoreLockPath(),
	})
	if err != nil {
		return nil, nil, err
	}
	cfg.StorePath = p.ExpandHome(cfg.StorePath)

	logger := logging.GetLogger("cli")
	logger.Debug().
		Str("config", cfg.File).
		Str("summary", cfg.String()).
		Msg("Configuration loaded")
	return p, cfg, nil
}

// env wires every collaborator from the loaded configuration
func (s *session) env(stderr io.Writer) (*commands.Env, error) {
	p, cfg, err := s.loadConfig(stderr)
	if err != nil {
		return nil, err
	}

	store := datastore.New(filesystem.NewOS(), cfg.StorePath, datastore.Options{
		LockFile:        cfg.Store.LockFile,
		VerifyUnchanged: cfg.Store.VerifyUnchanged,
	})

	return &commands.Env{
		Registry:    registry.New(cfg.File, p.RegistryLockPath()),
		Scanner:     rules.NewScanner(rules.ScanOptions{Hidden: cfg.Scan.Hidden}),
		Engine:      reconcile.NewEngine(store),
		Restarter:   service.New(cfg.Service),
		Concurrency: cfg.Scan.Concurrency,
	}, nil
}

// resolveBase turns the optional SEARCH_DIR argument into an absolute path
func (s *session) resolveBase(args []string) (string, error) {
	p, err := s.resolvePaths()
	if err != nil {
		return "", err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf(MsgErrWorkingDir, err)
	}

	arg := ""
	if len(args) > 1 {
		arg = args[1]
	}
	return p.ResolveDir(arg, cwd)
}

func (s *session) options(force, strict bool) commands.Options {
	return commands.Options{
		Force:     force,
		DryRun:    s.dryRun,
		Strict:    strict,
		Confirmer: s.confirmer,
	}
}

func (s *session) renderer(w io.Writer) (ui.Renderer, error) {
	format, err := ui.ParseFormat(s.format)
	if err != nil {
		return nil, fmt.Errorf(MsgErrFormat, err)
	}
	return ui.NewRenderer(format, w)
}
