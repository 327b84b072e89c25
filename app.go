// Package sitecfg composes documentation-site configuration from a site file,
// two theme descriptors and a sidebar description, and serves the result.
//
// App wires the pieces together with Fx: a structured logger, the composed
// site configuration and any number of HTTP listeners.
package sitecfg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/sitecfg/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is a configured starting point for an application using Fx.
type App struct {
	app *fx.App
}

// NewApp creates a new instance of App with Fx configured.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return &App{
		app: configure(&options),
	}
}

func configure(options *Options) *fx.App {
	loggerConfig := logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}

	var out io.Writer = os.Stderr
	if options.LogOutput != nil {
		out = options.LogOutput
	}

	logger := logging.NewLogger(loggerConfig, out)
	slog.SetDefault(logger)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(loggerConfig),
		fx.Supply(logger),
		fx.Options(options.Modules...),
	)
}

// Err returns the error that occurred while the application was being
// built, such as a site file that failed to compose.
func (app *App) Err() error {
	if !app.ready() {
		return errAppNotInitialized
	}

	return app.app.Err() //nolint:wrapcheck
}

// Start runs every OnStart hook, binding the configured listeners.
func (app *App) Start() error {
	return app.transition("start", func(fxApp *fx.App) func(context.Context) error { return fxApp.Start })
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if !app.ready() {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop runs every OnStop hook, draining the listeners.
func (app *App) Stop() error {
	return app.transition("stop", func(fxApp *fx.App) func(context.Context) error { return fxApp.Stop })
}

func (app *App) ready() bool {
	return app != nil && app.app != nil
}

func (app *App) transition(verb string, hook func(*fx.App) func(context.Context) error) error {
	if !app.ready() {
		return errAppNotInitialized
	}

	if err := hook(app.app)(context.Background()); err != nil {
		return fmt.Errorf("failed to %s app: %w", verb, err)
	}

	return nil
}
