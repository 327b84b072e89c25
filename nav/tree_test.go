package nav_test

import (
	"testing"

	"github.com/0xalexb/sitecfg/nav"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() []nav.Node {
	return []nav.Node{
		nav.AutogenGroup{Label: "Getting Started", Directory: "getting-started"},
		nav.Group{Label: "Reference", Children: []nav.Node{
			nav.Link{Label: "API", Target: "/reference/api"},
			nav.Group{Label: "Hooks", Collapsed: true, Children: []nav.Node{
				nav.Link{Label: "Parsers", Target: "/reference/hooks/parsers"},
			}},
		}},
	}
}

func TestWalk_PreOrderWithDepth(t *testing.T) {
	t.Parallel()

	var visited []string

	var depths []int

	nav.Walk(sampleTree(), func(node nav.Node, depth int) bool {
		visited = append(visited, node.NodeLabel())
		depths = append(depths, depth)

		return true
	})

	assert.Equal(t, []string{"Getting Started", "Reference", "API", "Hooks", "Parsers"}, visited)
	assert.Equal(t, []int{0, 0, 1, 1, 2}, depths)
}

func TestWalk_SkipChildren(t *testing.T) {
	t.Parallel()

	var visited []string

	nav.Walk(sampleTree(), func(node nav.Node, _ int) bool {
		visited = append(visited, node.NodeLabel())

		return node.NodeLabel() != "Hooks"
	})

	assert.NotContains(t, visited, "Parsers")
	assert.Contains(t, visited, "Hooks")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, nav.Validate(sampleTree()))

	err := nav.Validate([]nav.Node{
		nav.Link{Label: "API"},
		nav.Group{Label: "G", Children: []nav.Node{
			nav.AutogenGroup{Label: "Auto"},
			nil,
		}},
		nav.Link{Target: "/x"},
	})

	requireSchemaPath(t, err, "sidebar[0].link")
	requireSchemaPath(t, err, "sidebar[1].items[0].autogenerate.directory")
	requireSchemaPath(t, err, "sidebar[1].items[1]")
	requireSchemaPath(t, err, "sidebar[2].label")
}

func TestClone_IsDeep(t *testing.T) {
	t.Parallel()

	original := sampleTree()
	clone := nav.Clone(original)

	require.Equal(t, original, clone)

	group, ok := clone[1].(nav.Group)
	require.True(t, ok)

	group.Children[0] = nav.Link{Label: "Changed", Target: "/changed"}

	originalGroup, ok := original[1].(nav.Group)
	require.True(t, ok)
	assert.Equal(t, "API", originalGroup.Children[0].NodeLabel())
	assert.Nil(t, nav.Clone(nil))
}
