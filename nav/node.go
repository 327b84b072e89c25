package nav

import (
	"encoding/json"
)

// Kind identifies the variant of a Node.
type Kind string

// Node variants.
const (
	KindLink    Kind = "link"
	KindGroup   Kind = "group"
	KindAutogen Kind = "autogenerate"
)

// Node is one entry of the navigation tree. It is implemented by Link, Group
// and AutogenGroup only.
type Node interface {
	Kind() Kind
	NodeLabel() string

	node()
}

// Link points at a single page.
type Link struct {
	Label  string
	Target string
}

// Group is an explicitly declared group of nodes.
type Group struct {
	Label     string
	Collapsed bool
	Children  []Node
}

// AutogenGroup is a group whose links the renderer derives from a content directory.
type AutogenGroup struct {
	Label     string
	Directory string
	Collapsed bool
}

func (Link) Kind() Kind         { return KindLink }
func (Group) Kind() Kind        { return KindGroup }
func (AutogenGroup) Kind() Kind { return KindAutogen }

func (l Link) NodeLabel() string         { return l.Label }
func (g Group) NodeLabel() string        { return g.Label }
func (a AutogenGroup) NodeLabel() string { return a.Label }

func (Link) node()         {}
func (Group) node()        {}
func (AutogenGroup) node() {}

// MarshalJSON encodes the link with a "type" discriminator.
func (l Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   Kind   `json:"type"`
		Label  string `json:"label"`
		Target string `json:"target"`
	}{KindLink, l.Label, l.Target})
}

// MarshalJSON encodes the group with a "type" discriminator.
func (g Group) MarshalJSON() ([]byte, error) {
	children := g.Children
	if children == nil {
		children = []Node{}
	}

	return json.Marshal(struct {
		Type      Kind   `json:"type"`
		Label     string `json:"label"`
		Collapsed bool   `json:"collapsed"`
		Children  []Node `json:"children"`
	}{KindGroup, g.Label, g.Collapsed, children})
}

// MarshalJSON encodes the autogenerated group with a "type" discriminator.
func (a AutogenGroup) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      Kind   `json:"type"`
		Label     string `json:"label"`
		Directory string `json:"directory"`
		Collapsed bool   `json:"collapsed"`
	}{KindAutogen, a.Label, a.Directory, a.Collapsed})
}
