// Package daemonrun wires the daemon process together: logging, singleton
// enforcement, the selection store, and the socket server.
package daemonrun

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"

	"fmclip/internal/clipserver"
	"fmclip/internal/clipstore"
	"fmclip/internal/config"
	"fmclip/internal/logging"
	"fmclip/internal/singleton"
)

// Options configures daemon process runtime behavior.
type Options struct {
	// LogLevel overrides the configured level when non-empty.
	LogLevel string
	// ProcessScan enables the executable-name preflight. The dedicated
	// fmclipd binary turns it on; `fmclip daemon run` leaves it off
	// because the launching CLI process would match its own name and the
	// flock guard covers enforcement either way.
	ProcessScan bool
}

// Run starts the clipboard daemon and blocks until the context is canceled
// or a termination signal arrives. Selection state lives only for the
// duration of this call; nothing is persisted across restarts.
func Run(cmdCtx context.Context, cfg *config.Config, opts Options) error {
	if cfg == nil {
		return fmt.Errorf("config is required")
	}

	signalCtx, cancel := signal.NotifyContext(cmdCtx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logger, err := logging.New(logging.Options{
		Level:       level,
		Format:      cfg.Logging.Format,
		OutputPaths: []string{"stderr", filepath.Join(cfg.Paths.LogDir, "fmclipd.log")},
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger = logger.With(logging.String("run_id", uuid.NewString()))

	if opts.ProcessScan {
		if err := scanForSiblings(logger); err != nil {
			return err
		}
	}

	guard := singleton.NewGuard(cfg.LockPath(), cfg.PIDPath())
	if err := guard.Acquire(); err != nil {
		return err
	}
	defer func() {
		if err := guard.Release(); err != nil {
			logger.Warn("release daemon lock", logging.Error(err))
		}
	}()

	store := clipstore.New()
	server, err := clipserver.New(signalCtx, cfg.Socket.Path, store, logger)
	if err != nil {
		return err
	}
	defer server.Close()
	server.Serve()

	logger.Info("fmclipd ready",
		logging.String("socket", cfg.Socket.Path),
		logging.String("lock", guard.LockPath()),
		logging.Int("pid", os.Getpid()))

	<-signalCtx.Done()
	logger.Info("fmclipd shutting down")
	return nil
}

func scanForSiblings(logger *slog.Logger) error {
	exe, err := os.Executable()
	if err != nil {
		logger.Warn("resolve executable for process scan", logging.Error(err))
		return nil
	}
	name := filepath.Base(exe)
	count, err := singleton.InstanceCount(name)
	if err != nil {
		logger.Warn("process scan failed", logging.Error(err))
		return nil
	}
	if count > 1 {
		return fmt.Errorf("%w: %d %s processes found", singleton.ErrAlreadyRunning, count, name)
	}
	return nil
}
