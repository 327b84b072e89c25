package site

import (
	"fmt"
	"log/slog"
	"time"

	filefetcher "github.com/0xalexb/sitecfg/config/fetcher/file"
	"github.com/0xalexb/sitecfg/metrics"
	"github.com/0xalexb/sitecfg/nav"
	"github.com/0xalexb/sitecfg/plugin"
	"github.com/0xalexb/sitecfg/siteerr"
	"github.com/0xalexb/sitecfg/theme"
)

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	recorder *metrics.Recorder
}

// WithRecorder reports the composition outcome and sidebar size to rec.
func WithRecorder(rec *metrics.Recorder) LoadOption {
	return func(o *loadOptions) {
		o.recorder = rec
	}
}

// Load reads the site file at path and composes its SiteConfig. Theme paths
// are resolved relative to the site file.
func Load(path string, opts ...LoadOption) (*SiteConfig, error) {
	var options loadOptions
	for _, opt := range opts {
		opt(&options)
	}

	start := time.Now()

	cfg, err := load(path)
	options.recorder.ObserveComposition(time.Since(start), err)

	if err != nil {
		return nil, err
	}

	options.recorder.SetSidebar(nav.Count(cfg.sidebar))

	return cfg, nil
}

func load(path string) (*SiteConfig, error) {
	parser, err := ParserFor(path)
	if err != nil {
		return nil, err
	}

	fetcher, err := filefetcher.Read(path)
	if err != nil {
		return nil, fmt.Errorf("%w: site file %q: %w", siteerr.ErrIO, path, err)
	}

	doc, err := DecodeDocument(path, parser, fetcher)
	if err != nil {
		return nil, err
	}

	return FromDocument(doc, path)
}

// FromDocument composes a SiteConfig from an already decoded document. base is
// the site file path used to resolve relative theme paths.
func FromDocument(doc *Document, base string) (*SiteConfig, error) {
	sidebar, err := nav.Build(doc.Sidebar)
	if err != nil {
		return nil, fmt.Errorf("building sidebar: %w", err)
	}

	themes, err := theme.LoadPair(
		filefetcher.Resolve(base, doc.Themes.Dark),
		filefetcher.Resolve(base, doc.Themes.Light),
	)
	if err != nil {
		return nil, fmt.Errorf("loading themes: %w", err)
	}

	registry, err := plugin.FromNames(doc.Plugins)
	if err != nil {
		return nil, fmt.Errorf("loading plugins: %w", err)
	}

	cfg, err := Compose(Input{
		Title:          doc.Title,
		Description:    doc.Description,
		Logo:           doc.Logo,
		Favicon:        doc.Favicon,
		EditLinkBase:   doc.EditLink.BaseURL,
		Social:         doc.Social,
		TOCMinDepth:    doc.TableOfContents.MinHeadingLevel,
		TOCMaxDepth:    doc.TableOfContents.MaxHeadingLevel,
		Sidebar:        sidebar,
		Head:           doc.Head,
		CustomCSS:      doc.CustomCSS,
		Themes:         themes.Descriptors(),
		Plugins:        registry.Plugins(),
		Components:     doc.Components,
		StyleOverrides: doc.ExpressiveCode.StyleOverrides,
	})
	if err != nil {
		return nil, err
	}

	stats := nav.Count(sidebar)
	slog.Info("site config composed",
		slog.String("source", base),
		slog.String("title", cfg.Title()),
		slog.Int("sidebar_links", stats.Links),
		slog.Int("sidebar_groups", stats.Groups+stats.Autogen),
		slog.String("dark_theme", themes.Dark.Name),
		slog.String("light_theme", themes.Light.Name),
		slog.Int("plugins", len(cfg.Plugins())))

	return cfg, nil
}
