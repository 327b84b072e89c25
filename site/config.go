package site

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/0xalexb/sitecfg/nav"
	"github.com/0xalexb/sitecfg/plugin"
	"github.com/0xalexb/sitecfg/theme"
)

// HeadTag is an element injected into the head of every generated page.
type HeadTag struct {
	Tag     string            `json:"tag"               yaml:"tag"               toml:"tag"`
	Attrs   map[string]string `json:"attrs,omitempty"   yaml:"attrs,omitempty"   toml:"attrs"`
	Content string            `json:"content,omitempty" yaml:"content,omitempty" toml:"content"`
}

func (h HeadTag) clone() HeadTag {
	h.Attrs = maps.Clone(h.Attrs)

	return h
}

// LogoRef points at the site logo.
type LogoRef struct {
	Src string `json:"src"           yaml:"src" toml:"src"`
	Alt string `json:"alt,omitempty" yaml:"alt" toml:"alt"`
}

// SiteConfig is the composed site configuration. The zero value is not
// usable; obtain one from Compose or Load.
type SiteConfig struct {
	title          string
	description    string
	logo           *LogoRef
	favicon        string
	editLinkBase   string
	social         map[string]string
	tocMinDepth    int
	tocMaxDepth    int
	sidebar        []nav.Node
	head           []HeadTag
	customCSS      []string
	themes         theme.Pair
	plugins        []plugin.Plugin
	components     map[string]string
	styleOverrides map[string]any
}

func (c *SiteConfig) Title() string        { return c.title }
func (c *SiteConfig) Description() string  { return c.description }
func (c *SiteConfig) Favicon() string      { return c.favicon }
func (c *SiteConfig) EditLinkBase() string { return c.editLinkBase }
func (c *SiteConfig) TOCMinDepth() int     { return c.tocMinDepth }
func (c *SiteConfig) TOCMaxDepth() int     { return c.tocMaxDepth }

// Logo returns the logo reference and whether one is configured.
func (c *SiteConfig) Logo() (LogoRef, bool) {
	if c.logo == nil {
		return LogoRef{}, false
	}

	return *c.logo, true
}

// Social returns a copy of the social link map.
func (c *SiteConfig) Social() map[string]string {
	return maps.Clone(c.social)
}

// Sidebar returns a deep copy of the navigation tree.
func (c *SiteConfig) Sidebar() []nav.Node {
	return nav.Clone(c.sidebar)
}

// Head returns a copy of the head tags in declaration order.
func (c *SiteConfig) Head() []HeadTag {
	return cloneHead(c.head)
}

// CustomCSS returns the stylesheets in declaration order.
func (c *SiteConfig) CustomCSS() []string {
	return slices.Clone(c.customCSS)
}

// Themes returns the dark and light theme descriptors.
func (c *SiteConfig) Themes() theme.Pair {
	descriptors := c.themes.Descriptors()

	return theme.Pair{Dark: descriptors[0], Light: descriptors[1]}
}

// Plugins returns the code-block plugins in registration order.
func (c *SiteConfig) Plugins() []plugin.Plugin {
	return slices.Clone(c.plugins)
}

// PluginRegistry returns a registry holding the configured plugins, ready to
// be handed to the rendering pipeline.
func (c *SiteConfig) PluginRegistry() *plugin.Registry {
	return plugin.NewRegistry(c.plugins...)
}

// Components returns the component override map.
func (c *SiteConfig) Components() map[string]string {
	return maps.Clone(c.components)
}

// StyleOverrides returns a deep copy of the code-block style overrides.
func (c *SiteConfig) StyleOverrides() map[string]any {
	return cloneTree(c.styleOverrides)
}

type siteConfigJSON struct {
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	LogoRef        *LogoRef          `json:"logoRef,omitempty"`
	Favicon        string            `json:"favicon,omitempty"`
	EditLinkBase   string            `json:"editLinkBase,omitempty"`
	Social         map[string]string `json:"social"`
	TOCMinDepth    int               `json:"tocMinDepth"`
	TOCMaxDepth    int               `json:"tocMaxDepth"`
	Sidebar        []nav.Node        `json:"sidebar"`
	Head           []HeadTag         `json:"head"`
	CustomCSS      []string          `json:"customCss"`
	Themes         theme.Pair        `json:"themes"`
	Plugins        []string          `json:"plugins"`
	Components     map[string]string `json:"components,omitempty"`
	StyleOverrides map[string]any    `json:"styleOverrides,omitempty"`
}

// MarshalJSON encodes the configuration for the external site renderer.
func (c *SiteConfig) MarshalJSON() ([]byte, error) {
	names := make([]string, 0, len(c.plugins))
	for _, p := range c.plugins {
		names = append(names, p.Name())
	}

	out := siteConfigJSON{
		Title:          c.title,
		Description:    c.description,
		LogoRef:        c.logo,
		Favicon:        c.favicon,
		EditLinkBase:   c.editLinkBase,
		Social:         nonNilMap(c.social),
		TOCMinDepth:    c.tocMinDepth,
		TOCMaxDepth:    c.tocMaxDepth,
		Sidebar:        nonNil(c.sidebar),
		Head:           nonNil(c.head),
		CustomCSS:      nonNil(c.customCSS),
		Themes:         c.themes,
		Plugins:        names,
		Components:     c.components,
		StyleOverrides: c.styleOverrides,
	}

	return json.Marshal(out)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}

func nonNilMap(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}

	return m
}

func cloneHead(head []HeadTag) []HeadTag {
	if head == nil {
		return nil
	}

	out := make([]HeadTag, len(head))
	for i, tag := range head {
		out[i] = tag.clone()
	}

	return out
}

// cloneTree deep-copies generic decoded data (maps and lists).
func cloneTree(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}

	out := make(map[string]any, len(m))
	for key, value := range m {
		out[key] = cloneValue(value)
	}

	return out
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return cloneTree(typed)
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = cloneValue(item)
		}

		return out
	case []map[string]any:
		// TOML arrays of tables
		out := make([]map[string]any, len(typed))
		for i, item := range typed {
			out[i] = cloneTree(item)
		}

		return out
	default:
		return value
	}
}
