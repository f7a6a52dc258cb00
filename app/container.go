package app

import (
	"log/slog"
	"time"

	"github.com/Nakamura9310/snapmark/capture"
	"github.com/Nakamura9310/snapmark/config"
	"github.com/Nakamura9310/snapmark/debug"
	domain "github.com/Nakamura9310/snapmark/domain/capture"
	"github.com/Nakamura9310/snapmark/editor"
	"github.com/Nakamura9310/snapmark/notify"
)

// Container assembles the config, capture service, editing session and
// notifier behind a single build point.
type Container struct {
	Config   *config.Config
	Logger   *slog.Logger
	Provider domain.Provider
	Session  *editor.Session
	Notifier notify.Notifier
}

// BuildContainer constructs all components. When cfg.Debug is set it also
// raises the log level and starts the runtime metric loggers.
func BuildContainer(cfg *config.Config) *Container {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)

	provider := capture.NewService(logger)
	c := &Container{
		Config:   cfg,
		Logger:   logger,
		Provider: provider,
		Session:  editor.NewSession(logger, cfg, provider),
		Notifier: notify.NewNotifier(),
	}
	if cfg.Debug {
		debug.StartRuntimeLogger(2*time.Second, logger)
		debug.StartMemLogger(2*time.Second, logger)
	}
	return c
}

// Close releases the session's workers.
func (c *Container) Close() {
	if c.Session != nil {
		c.Session.Close()
	}
}
