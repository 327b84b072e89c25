package plugin

import (
	"fmt"
	"slices"

	"github.com/0xalexb/sitecfg/siteerr"
)

//nolint:gochecknoglobals
var builtins = map[string]func() Plugin{
	LanguageClassName: LanguageClass,
}

// Lookup returns a new instance of the built-in plugin with the given name.
func Lookup(name string) (Plugin, bool) {
	constructor, ok := builtins[name]
	if !ok {
		return nil, false
	}

	return constructor(), true
}

// BuiltinNames lists the names accepted by Lookup, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Registry holds plugins in registration order, at most one per name.
type Registry struct {
	plugins []Plugin
}

// NewRegistry creates a registry and registers plugins in order.
func NewRegistry(plugins ...Plugin) *Registry {
	registry := &Registry{}

	for _, p := range plugins {
		registry.Register(p)
	}

	return registry
}

// FromNames builds a registry from built-in plugin names as written in a site
// file. Unknown names are schema errors at "plugins[i]".
func FromNames(names []string) (*Registry, error) {
	registry := &Registry{}

	for i, name := range names {
		p, ok := Lookup(name)
		if !ok {
			return nil, siteerr.Schema(fmt.Sprintf("plugins[%d]", i), "unknown plugin %q, available: %v",
				name, BuiltinNames())
		}

		registry.Register(p)
	}

	return registry, nil
}

// Register adds p unless a plugin with the same name is already registered.
// It reports whether p was added.
func (r *Registry) Register(p Plugin) bool {
	if p == nil {
		return false
	}

	for _, existing := range r.plugins {
		if existing.Name() == p.Name() {
			return false
		}
	}

	r.plugins = append(r.plugins, p)

	return true
}

// Plugins returns the registered plugins in order.
func (r *Registry) Plugins() []Plugin {
	return slices.Clone(r.plugins)
}

// Apply runs every plugin over block in registration order.
func (r *Registry) Apply(block CodeBlock) CodeBlock {
	for _, p := range r.plugins {
		block = p.Transform(block)
	}

	return block
}
