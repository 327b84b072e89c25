package siteerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/0xalexb/sitecfg/siteerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaError_UnwrapsToConfigSchema(t *testing.T) {
	t.Parallel()

	err := siteerr.Schema("sidebar[0]", "label is required")

	require.ErrorIs(t, err, siteerr.ErrConfigSchema)
	assert.NotErrorIs(t, err, siteerr.ErrThemeParse)
	assert.Equal(t, "config schema error: sidebar[0]: label is required", err.Error())
}

func TestSchemaError_WithoutPath(t *testing.T) {
	t.Parallel()

	err := siteerr.Schema("", "expected %d themes, got %d", 2, 1)

	assert.Equal(t, "config schema error: expected 2 themes, got 1", err.Error())
}

func TestSchemaError_SurvivesWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("building sidebar: %w", siteerr.Schema("sidebar[2].items[1]", "no marker"))

	var schemaErr *siteerr.SchemaError

	require.ErrorAs(t, wrapped, &schemaErr)
	assert.Equal(t, "sidebar[2].items[1]", schemaErr.Path)
	assert.ErrorIs(t, wrapped, siteerr.ErrConfigSchema)
}

func TestPaths(t *testing.T) {
	t.Parallel()

	joined := errors.Join(
		siteerr.Schema("title", "must not be empty"),
		fmt.Errorf("head: %w", siteerr.Schema("head[1].tag", "must not be empty")),
		errors.New("unrelated"),
	)

	assert.Equal(t, []string{"title", "head[1].tag"}, siteerr.Paths(joined))
	assert.Nil(t, siteerr.Paths(nil))
}
