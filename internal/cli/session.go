package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todomvc/internal/app"
	"github.com/idilsaglam/todomvc/internal/config"
	"github.com/idilsaglam/todomvc/internal/logging"
	"github.com/idilsaglam/todomvc/internal/router"
	"github.com/idilsaglam/todomvc/internal/store"
	"github.com/idilsaglam/todomvc/internal/todo"
	"github.com/idilsaglam/todomvc/internal/ui"
)

// session is one opened todo list with its controller.
type session struct {
	cfg    config.Config
	logger *log.Logger
	todos  *todo.Model
	ctrl   *app.Controller

	closers []io.Closer
}

func (s *session) Close() error {
	if s.ctrl != nil {
		s.ctrl.Close()
	}
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i].Close())
	}
	return errors.Join(errs...)
}

// resolveConfig layers root flags over the file/env config.
func resolveConfig(cmd *cobra.Command, a *App) (config.Config, error) {
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	override := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	override("store", &cfg.Store, a.Store)
	override("data-dir", &cfg.DataDir, a.DataDir)
	override("route", &cfg.Route, a.Route)
	override("theme", &cfg.Theme, a.Theme)
	override("log-level", &cfg.LogLevel, a.LogLevel)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, &usageError{err: err}
	}
	return cfg, nil
}

// openSession loads config and the list. interactive sends logs to the
// log file rather than stderr.
func openSession(cmd *cobra.Command, a *App, interactive bool) (*session, error) {
	cfg, err := resolveConfig(cmd, a)
	if err != nil {
		return nil, err
	}
	if err := ui.SetTheme(cfg.Theme); err != nil {
		return nil, err
	}

	s := &session{cfg: cfg}
	memory := strings.EqualFold(strings.TrimSpace(cfg.Store), store.BackendMemory)
	if interactive && !memory {
		l, f, err := logging.OpenFile(cfg.LogPath(), cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		s.logger = l
		s.closers = append(s.closers, f)
	} else if interactive {
		s.logger = logging.Discard()
	} else {
		l, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		s.logger = l
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	kv, err := store.Open(ctx, cfg.Store, cfg.DataDir)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	s.closers = append(s.closers, kv)
	s.logger.Debug("opened store", "backend", cfg.Store, "dir", cfg.DataDir)

	s.todos, err = todo.New(ctx, kv, todo.WithLogger(s.logger))
	if err != nil {
		_ = s.Close()
		return nil, err
	}

	r := router.New(router.WithLocation(cfg.Route), router.WithLogger(s.logger))
	s.ctrl = app.New(s.todos, r, app.WithLogger(s.logger))
	if err := s.ctrl.Start(); err != nil {
		_ = s.Close()
		return nil, &usageError{err: err}
	}
	return s, nil
}
