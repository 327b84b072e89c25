package site

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/0xalexb/sitecfg/config"
	jsoncparser "github.com/0xalexb/sitecfg/config/parser/jsonc"
	tomlparser "github.com/0xalexb/sitecfg/config/parser/toml"
	yamlparser "github.com/0xalexb/sitecfg/config/parser/yaml"
	"github.com/0xalexb/sitecfg/siteerr"
)

// Document is the on-disk shape of a site file.
type Document struct {
	Title           string            `json:"title"           yaml:"title"           toml:"title"`
	Description     string            `json:"description"     yaml:"description"     toml:"description"`
	Logo            *LogoRef          `json:"logo"            yaml:"logo"            toml:"logo"`
	Favicon         string            `json:"favicon"         yaml:"favicon"         toml:"favicon"`
	EditLink        EditLink          `json:"editLink"        yaml:"editLink"        toml:"editLink"`
	Social          map[string]string `json:"social"          yaml:"social"          toml:"social"`
	TableOfContents TableOfContents   `json:"tableOfContents" yaml:"tableOfContents" toml:"tableOfContents"`
	Themes          ThemeFiles        `json:"themes"          yaml:"themes"          toml:"themes"`
	Plugins         []string          `json:"plugins"         yaml:"plugins"         toml:"plugins"`
	Sidebar         []any             `json:"sidebar"         yaml:"sidebar"         toml:"sidebar"`
	Head            []HeadTag         `json:"head"            yaml:"head"            toml:"head"`
	CustomCSS       []string          `json:"customCss"       yaml:"customCss"       toml:"customCss"`
	Components      map[string]string `json:"components"      yaml:"components"      toml:"components"`
	ExpressiveCode  CodeOptions       `json:"expressiveCode"  yaml:"expressiveCode"  toml:"expressiveCode"`
}

// EditLink configures the "edit this page" link.
type EditLink struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl" toml:"baseUrl"`
}

// TableOfContents bounds the heading levels listed in the page outline.
type TableOfContents struct {
	MinHeadingLevel int `json:"minHeadingLevel" yaml:"minHeadingLevel" toml:"minHeadingLevel"`
	MaxHeadingLevel int `json:"maxHeadingLevel" yaml:"maxHeadingLevel" toml:"maxHeadingLevel"`
}

// ThemeFiles names the two theme descriptor files, relative to the site file.
type ThemeFiles struct {
	Dark  string `json:"dark"  yaml:"dark"  toml:"dark"`
	Light string `json:"light" yaml:"light" toml:"light"`
}

// CodeOptions configures code-block rendering.
type CodeOptions struct {
	StyleOverrides map[string]any `json:"styleOverrides" yaml:"styleOverrides" toml:"styleOverrides"`
}

// SetDefaults enables the language-class plugin when the plugin list is omitted.
func (d *Document) SetDefaults() bool {
	if d.Plugins != nil {
		return false
	}

	d.Plugins = []string{"language-class"}

	return true
}

// Validate checks the fields only a site file has; everything else is
// checked by Compose.
func (d *Document) Validate() error {
	if strings.TrimSpace(d.Themes.Dark) == "" {
		return siteerr.Schema("themes.dark", "theme file is required")
	}

	if strings.TrimSpace(d.Themes.Light) == "" {
		return siteerr.Schema("themes.light", "theme file is required")
	}

	return nil
}

// ParserFor picks a strict parser from the file extension.
func ParserFor(path string) (config.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlparser.NewParser(yamlparser.WithStrict()), nil
	case ".toml":
		return tomlparser.NewParser(tomlparser.WithStrict()), nil
	case ".json", ".jsonc":
		return jsoncparser.NewParser(jsoncparser.WithStrict()), nil
	default:
		return nil, siteerr.Schema(path, "unsupported site file format %q, expected .yaml, .yml, .toml, .json or .jsonc",
			filepath.Ext(path))
	}
}

// DecodeDocument parses and checks a site document.
func DecodeDocument(source string, parser config.Parser, fetcher config.DataFetcher) (*Document, error) {
	doc, err := config.Load(&Document{}, "", parser, fetcher)

	switch {
	case err == nil:
		return doc, nil
	case errors.Is(err, config.ErrFetch):
		return nil, fmt.Errorf("%w: site file %q: %w", siteerr.ErrIO, source, err)
	case errors.Is(err, siteerr.ErrConfigSchema):
		return nil, fmt.Errorf("site file %q: %w", source, err)
	default:
		return nil, fmt.Errorf("%w: site file %q: %w", siteerr.ErrConfigSchema, source, err)
	}
}
