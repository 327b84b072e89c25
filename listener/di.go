package listener

import (
	"fmt"
	"log/slog"
	"net/http"

	"go.uber.org/fx"
)

// NewModule creates an Fx module that serves the http.Handler tagged with name.
// site.HandlerModule provides that handler for the composed site configuration.
//
// With options, the module supplies its own Config. Without them the Config
// tagged with name must come from elsewhere in the graph, typically
// config.Provider reading a "listeners:<name>" section.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	tag := nameTag(name)

	var options []fx.Option

	if len(opts) > 0 {
		var cfg Config
		for _, apply := range opts {
			apply(&cfg)
		}

		options = append(options, fx.Supply(fx.Annotate(cfg, fx.ResultTags(tag))))
	}

	options = append(options, fx.Invoke(
		fx.Annotate(register(name), fx.ParamTags("", "", tag, tag)),
	))

	return fx.Module(name, options...)
}

func nameTag(name string) string {
	return fmt.Sprintf(`name:%q`, name)
}

// register builds the server for the listener and ties it to the app lifecycle.
// A serve failure after startup shuts the whole app down.
func register(name string) func(fx.Lifecycle, fx.Shutdowner, http.Handler, Config) error {
	return func(lifecycle fx.Lifecycle, shutdowner fx.Shutdowner, handler http.Handler, cfg Config) error {
		srv, err := NewServer(name, handler, cfg, func() {
			if err := shutdowner.Shutdown(); err != nil {
				slog.Error("failed to trigger shutdown", slog.String("listener", name), slog.Any("error", err))
			}
		})
		if err != nil {
			return err
		}

		lifecycle.Append(fx.Hook{OnStart: srv.Start, OnStop: srv.Stop})

		return nil
	}
}
