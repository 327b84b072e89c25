package site

import (
	"fmt"

	"github.com/0xalexb/sitecfg/metrics"

	"go.uber.org/fx"
)

// Module composes the site file at path while the application starts and
// provides the result as *SiteConfig, along with the *metrics.Recorder that
// observed the composition. A composition failure aborts startup.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module(path string) fx.Option {
	return fx.Module("site",
		fx.Provide(
			func() *metrics.Recorder {
				return metrics.NewRecorder(nil)
			},
			func(rec *metrics.Recorder) (*SiteConfig, error) {
				return Load(path, WithRecorder(rec))
			},
		),
		fx.Invoke(func(*SiteConfig) {}),
	)
}

// HandlerModule provides the site HTTP API as the http.Handler named name,
// ready to be served by the listener module of the same name.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func HandlerModule(name string) fx.Option {
	return fx.Provide(
		fx.Annotate(NewHandler, fx.ResultTags(fmt.Sprintf(`name:"%s"`, name))),
	)
}
