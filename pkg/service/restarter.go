package service

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/arthur-debert/spotlight-manager/pkg/config"
	"github.com/arthur-debert/spotlight-manager/pkg/errors"
	"github.com/arthur-debert/spotlight-manager/pkg/logging"
	"github.com/rs/zerolog"
)

const restartHint = "restart the machine to apply the new exclusions"

// Restarter signals the indexing service after a store write
type Restarter interface {
	Restart(ctx context.Context) error
}

// New returns the restarter described by cfg: a CommandRestarter, or a
// no-op when the service is disabled
func New(cfg config.ServiceConfig) Restarter {
	if !cfg.Enabled || len(cfg.Restart) == 0 {
		return Noop{}
	}
	return NewCommandRestarter(cfg.Restart, cfg.Timeout)
}

// Noop is the restarter used when restarts are disabled
type Noop struct{}

// Restart does nothing
func (Noop) Restart(context.Context) error {
	logger := logging.GetLogger("service")
	logger.Debug().Msg("Service restart disabled")
	return nil
}

// CommandRestarter runs a fixed list of commands
type CommandRestarter struct {
	commands [][]string
	timeout  time.Duration
	logger   zerolog.Logger
}

// NewCommandRestarter creates a restarter running each argv in order
func NewCommandRestarter(commands [][]string, timeout time.Duration) *CommandRestarter {
	return &CommandRestarter{
		commands: commands,
		timeout:  timeout,
		logger:   logging.GetLogger("service"),
	}
}

// Restart runs every command, stopping at the first failure
func (r *CommandRestarter) Restart(ctx context.Context) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	for _, argv := range r.commands {
		if err := r.run(ctx, argv); err != nil {
			return err
		}
	}

	r.logger.Info().Int("commands", len(r.commands)).Msg("Indexing service restarted")
	return nil
}

func (r *CommandRestarter) run(ctx context.Context, argv []string) error {
	if len(argv) == 0 || argv[0] == "" {
		return errors.New(errors.ErrServiceRestart, "empty restart command")
	}
	line := strings.Join(argv, " ")

	r.logger.Debug().Strs("argv", argv).Msg("Running restart command")

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	err := cmd.Run()

	if stdout.Len() > 0 {
		r.logger.Debug().Str("output", stdout.String()).Msg("Command stdout")
	}

	if err != nil {
		r.logger.Error().
			Err(err).
			Str("command", line).
			Str("stderr", stderr.String()).
			Msg("Restart command failed")
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return errors.Wrapf(err, errors.ErrServiceRestart, "failed to restart the indexing service (%s)", line).
			WithDetail("stderr", strings.TrimSpace(stderr.String())).
			WithHint(restartHint)
	}

	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		r.logger.Error().Str("command", line).Str("stderr", msg).Msg("Restart command reported an error")
		return errors.Newf(errors.ErrServiceRestart, "failed to restart the indexing service (%s): %s", line, msg).
			WithDetail("stderr", msg).
			WithHint(restartHint)
	}

	return nil
}
