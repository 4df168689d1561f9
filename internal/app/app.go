package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/inetgraph/internal/ctxlog"
	"github.com/vk/inetgraph/internal/engine"
	"github.com/vk/inetgraph/internal/metrics"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	inR     io.Reader
	outW    io.Writer
	errW    io.Writer
	logger  *slog.Logger
	config  *Config
	cache   *engine.Cache
	metrics *metrics.Registry
}

// NewApp is the constructor for the main application. Rendered output goes to
// outW and logs to errW, so the output stays pipeable. inR is read when a
// path is "-".
func NewApp(inR io.Reader, outW, errW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	cache, err := engine.NewCache(cfg.CacheSize)
	if err != nil {
		// NewConfig guarantees a positive size, so this is a programmer error.
		panic(fmt.Errorf("failed to create compile cache: %w", err))
	}

	return &App{
		inR:     inR,
		outW:    outW,
		errW:    errW,
		logger:  logger,
		config:  cfg,
		cache:   cache,
		metrics: metrics.NewRegistry(),
	}
}

// Metrics returns the registry the app records compiles into. In serve mode
// it is also exposed on /metrics.
func (a *App) Metrics() *metrics.Registry {
	return a.metrics
}

// context attaches the app logger to ctx.
func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
