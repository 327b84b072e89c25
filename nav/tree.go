package nav

import (
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/sitecfg/siteerr"
)

// WalkFunc is called for every node in pre-order. depth is 0 for top-level nodes.
// Returning false skips the children of a group.
type WalkFunc func(node Node, depth int) bool

// Walk visits nodes in declaration order, parents before children.
func Walk(nodes []Node, fn WalkFunc) {
	walk(nodes, 0, fn)
}

func walk(nodes []Node, depth int, fn WalkFunc) {
	for _, node := range nodes {
		descend := fn(node, depth)

		if group, ok := node.(Group); ok && descend {
			walk(group.Children, depth+1, fn)
		}
	}
}

// Links returns every Link in the tree in declaration order.
func Links(nodes []Node) []Link {
	var links []Link

	Walk(nodes, func(node Node, _ int) bool {
		if link, ok := node.(Link); ok {
			links = append(links, link)
		}

		return true
	})

	return links
}

// Stats counts the nodes of a tree by kind.
type Stats struct {
	Links    int
	Groups   int
	Autogen  int
	MaxDepth int
}

// Count returns node counts for the tree.
func Count(nodes []Node) Stats {
	var stats Stats

	Walk(nodes, func(node Node, depth int) bool {
		stats.MaxDepth = max(stats.MaxDepth, depth+1)

		switch node.(type) {
		case Link:
			stats.Links++
		case Group:
			stats.Groups++
		case AutogenGroup:
			stats.Autogen++
		}

		return true
	})

	return stats
}

// Validate re-checks node invariants for trees that were built in code rather
// than through Build: non-empty labels, link targets and directories.
func Validate(nodes []Node) error {
	var errs []error

	validate(RootPath, nodes, &errs)

	return errors.Join(errs...)
}

func validate(path string, nodes []Node, errs *[]error) {
	for i, node := range nodes {
		nodePath := fmt.Sprintf("%s[%d]", path, i)

		if node == nil {
			*errs = append(*errs, siteerr.Schema(nodePath, "nil node"))

			continue
		}

		if strings.TrimSpace(node.NodeLabel()) == "" {
			*errs = append(*errs, siteerr.Schema(nodePath+"."+keyLabel, "must not be empty"))
		}

		switch value := node.(type) {
		case Link:
			if strings.TrimSpace(value.Target) == "" {
				*errs = append(*errs, siteerr.Schema(nodePath+"."+keyLink, "must not be empty"))
			}
		case AutogenGroup:
			if strings.TrimSpace(value.Directory) == "" {
				*errs = append(*errs, siteerr.Schema(nodePath+"."+keyAutogenerate+"."+keyDirectory, "must not be empty"))
			}
		case Group:
			validate(nodePath+"."+keyItems, value.Children, errs)
		}
	}
}

// Clone returns a deep copy of the tree.
func Clone(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}

	out := make([]Node, len(nodes))

	for i, node := range nodes {
		if group, ok := node.(Group); ok {
			group.Children = Clone(group.Children)
			node = group
		}

		out[i] = node
	}

	return out
}
