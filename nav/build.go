package nav

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/0xalexb/sitecfg/siteerr"
)

// RootPath is the path prefix used in errors for top-level entries.
const RootPath = "sidebar"

// Marker and attribute keys recognized in a raw entry.
const (
	keyLabel        = "label"
	keyCollapsed    = "collapsed"
	keyItems        = "items"
	keyChildren     = "children"
	keyAutogenerate = "autogenerate"
	keyDirectory    = "directory"
	keyLink         = "link"
	keyTarget       = "target"
)

//nolint:gochecknoglobals
var knownKeys = []string{keyLabel, keyCollapsed, keyItems, keyChildren, keyAutogenerate, keyLink, keyTarget}

// Build resolves a raw sidebar description into typed nodes, preserving
// declaration order at every level. Every invalid entry is reported; when
// any is found Build returns no nodes.
func Build(entries []any) ([]Node, error) {
	var res resolver

	nodes := res.list(RootPath, entries)
	if len(res.errs) > 0 {
		return nil, errors.Join(res.errs...)
	}

	return nodes, nil
}

type resolver struct {
	errs []error
}

func (r *resolver) fail(path, format string, args ...any) {
	r.errs = append(r.errs, siteerr.Schema(path, format, args...))
}

func (r *resolver) list(path string, entries []any) []Node {
	nodes := make([]Node, 0, len(entries))

	for i, entry := range entries {
		node := r.entry(fmt.Sprintf("%s[%d]", path, i), entry)
		if node != nil {
			nodes = append(nodes, node)
		}
	}

	return nodes
}

func (r *resolver) entry(path string, raw any) Node {
	fields, ok := asMap(raw)
	if !ok {
		r.fail(path, "expected a mapping, got %s", describe(raw))

		return nil
	}

	if unknown := unknownKeys(fields, knownKeys...); len(unknown) > 0 {
		r.fail(path, "unknown keys: %s", strings.Join(unknown, ", "))

		return nil
	}

	label, labelOK := r.label(path, fields)

	kind, markerKey, ok := r.marker(path, fields)
	if !ok || !labelOK {
		return nil
	}

	collapsed, collapsedSet, ok := r.collapsed(path, fields)
	if !ok {
		return nil
	}

	switch kind {
	case KindLink:
		if collapsedSet {
			r.fail(path+"."+keyCollapsed, "only valid on groups")

			return nil
		}

		return r.link(path, markerKey, label, fields[markerKey])
	case KindAutogen:
		return r.autogen(path, label, collapsed, fields[keyAutogenerate])
	default:
		return r.group(path, markerKey, label, collapsed, fields[markerKey])
	}
}

func (r *resolver) label(path string, fields map[string]any) (string, bool) {
	raw, present := fields[keyLabel]
	if !present {
		r.fail(path+"."+keyLabel, "is required")

		return "", false
	}

	label, ok := raw.(string)
	if !ok {
		r.fail(path+"."+keyLabel, "expected a string, got %s", describe(raw))

		return "", false
	}

	if strings.TrimSpace(label) == "" {
		r.fail(path+"."+keyLabel, "must not be empty")

		return "", false
	}

	return label, true
}

// marker picks the node kind from the marker keys present in fields.
func (r *resolver) marker(path string, fields map[string]any) (Kind, string, bool) {
	_, hasItems := fields[keyItems]
	_, hasChildren := fields[keyChildren]
	_, hasAutogen := fields[keyAutogenerate]
	_, hasLink := fields[keyLink]
	_, hasTarget := fields[keyTarget]

	if hasItems && hasChildren {
		r.fail(path, "%q and %q are aliases, use only one", keyItems, keyChildren)

		return "", "", false
	}

	if hasLink && hasTarget {
		r.fail(path, "%q and %q are aliases, use only one", keyLink, keyTarget)

		return "", "", false
	}

	var found []string

	kind, markerKey := Kind(""), ""

	if hasItems || hasChildren {
		kind, markerKey = KindGroup, keyItems
		if hasChildren {
			markerKey = keyChildren
		}

		found = append(found, markerKey)
	}

	if hasAutogen {
		kind, markerKey = KindAutogen, keyAutogenerate
		found = append(found, markerKey)
	}

	if hasLink || hasTarget {
		kind, markerKey = KindLink, keyLink
		if hasTarget {
			markerKey = keyTarget
		}

		found = append(found, markerKey)
	}

	switch len(found) {
	case 0:
		r.fail(path, "no node marker, expected one of %q, %q or %q", keyItems, keyAutogenerate, keyLink)

		return "", "", false
	case 1:
		return kind, markerKey, true
	default:
		r.fail(path, "conflicting node markers: %s", strings.Join(found, ", "))

		return "", "", false
	}
}

func (r *resolver) collapsed(path string, fields map[string]any) (bool, bool, bool) {
	raw, present := fields[keyCollapsed]
	if !present {
		return false, false, true
	}

	collapsed, ok := raw.(bool)
	if !ok {
		r.fail(path+"."+keyCollapsed, "expected a boolean, got %s", describe(raw))

		return false, true, false
	}

	return collapsed, true, true
}

func (r *resolver) link(path, key, label string, raw any) Node {
	target, ok := raw.(string)
	if !ok {
		r.fail(path+"."+key, "expected a string, got %s", describe(raw))

		return nil
	}

	if strings.TrimSpace(target) == "" {
		r.fail(path+"."+key, "must not be empty")

		return nil
	}

	return Link{Label: label, Target: target}
}

func (r *resolver) autogen(path, label string, collapsed bool, raw any) Node {
	path += "." + keyAutogenerate

	fields, ok := asMap(raw)
	if !ok {
		r.fail(path, "expected a mapping with %q, got %s", keyDirectory, describe(raw))

		return nil
	}

	if unknown := unknownKeys(fields, keyDirectory); len(unknown) > 0 {
		r.fail(path, "unknown keys: %s", strings.Join(unknown, ", "))

		return nil
	}

	dirRaw, present := fields[keyDirectory]
	if !present {
		r.fail(path+"."+keyDirectory, "is required")

		return nil
	}

	directory, ok := dirRaw.(string)
	if !ok {
		r.fail(path+"."+keyDirectory, "expected a string, got %s", describe(dirRaw))

		return nil
	}

	if strings.TrimSpace(directory) == "" {
		r.fail(path+"."+keyDirectory, "must not be empty")

		return nil
	}

	return AutogenGroup{Label: label, Directory: directory, Collapsed: collapsed}
}

func (r *resolver) group(path, key, label string, collapsed bool, raw any) Node {
	path += "." + key

	entries, ok := asList(raw)
	if !ok {
		r.fail(path, "expected a list, got %s", describe(raw))

		return nil
	}

	before := len(r.errs)
	children := r.list(path, entries)

	if len(r.errs) > before {
		return nil
	}

	return Group{Label: label, Collapsed: collapsed, Children: children}
}

// unknownKeys returns the keys of fields outside known, sorted.
func unknownKeys(fields map[string]any, known ...string) []string {
	var unknown []string

	for key := range fields {
		if !slices.Contains(known, key) {
			unknown = append(unknown, key)
		}
	}

	slices.Sort(unknown)

	return unknown
}

func asMap(raw any) (map[string]any, bool) {
	switch value := raw.(type) {
	case map[string]any:
		return value, true
	case map[any]any:
		fields := make(map[string]any, len(value))

		for key, item := range value {
			name, ok := key.(string)
			if !ok {
				return nil, false
			}

			fields[name] = item
		}

		return fields, true
	default:
		return nil, false
	}
}

func asList(raw any) ([]any, bool) {
	switch value := raw.(type) {
	case []any:
		return value, true
	case []map[string]any:
		entries := make([]any, len(value))
		for i, item := range value {
			entries[i] = item
		}

		return entries, true
	default:
		return nil, false
	}
}

func describe(raw any) string {
	if raw == nil {
		return "null"
	}

	return fmt.Sprintf("%T", raw)
}
