package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const siteYAML = `
title: Style Dictionary
description: Export your Design Tokens to any platform.
social:
  github: https://github.com/amzn/style-dictionary/tree/v4
tableOfContents:
  maxHeadingLevel: 4
customCss:
  - ./theme/dist/light.variables.css
  - ./src/styles.css
expressiveCode:
  styleOverrides:
    borderRadius: 0.25rem
    frames:
      editorBackground: var(--sl-color-bg-code)
sidebar:
  - label: Getting Started
    autogenerate:
      directory: getting-started
`

func TestParser_Parse_EmptyPath(t *testing.T) {
	t.Parallel()

	var result struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
	}

	err := NewParser().Parse([]byte(siteYAML), &result, "")

	require.NoError(t, err)
	assert.Equal(t, "Style Dictionary", result.Title)
	assert.Equal(t, "Export your Design Tokens to any platform.", result.Description)
}

func TestParser_Parse_SingleLevelPath(t *testing.T) {
	t.Parallel()

	var result struct {
		MaxHeadingLevel int `yaml:"maxHeadingLevel"`
	}

	err := NewParser().Parse([]byte(siteYAML), &result, "tableOfContents")

	require.NoError(t, err)
	assert.Equal(t, 4, result.MaxHeadingLevel)
}

func TestParser_Parse_MultiLevelPath(t *testing.T) {
	t.Parallel()

	var result map[string]any

	err := NewParser().Parse([]byte(siteYAML), &result, "expressiveCode:styleOverrides")

	require.NoError(t, err)
	assert.Equal(t, "0.25rem", result["borderRadius"])
	assert.Contains(t, result, "frames")
}

func TestParser_Parse_ListKeepsOrder(t *testing.T) {
	t.Parallel()

	var result []string

	err := NewParser().Parse([]byte(siteYAML), &result, "customCss")

	require.NoError(t, err)
	assert.Equal(t, []string{"./theme/dist/light.variables.css", "./src/styles.css"}, result)
}

func TestParser_Parse_GenericSidebar(t *testing.T) {
	t.Parallel()

	var result []any

	err := NewParser().Parse([]byte(siteYAML), &result, "sidebar")

	require.NoError(t, err)
	require.Len(t, result, 1)

	entry, ok := result[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Getting Started", entry["label"])
}

func TestParser_Parse_NonExistentKey(t *testing.T) {
	t.Parallel()

	var result struct{}

	err := NewParser().Parse([]byte(siteYAML), &result, "components")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestParser_Parse_NonMappingIntermediate(t *testing.T) {
	t.Parallel()

	var result string

	err := NewParser().Parse([]byte(siteYAML), &result, "title:nested")

	require.Error(t, err)
}

func TestParser_Parse_Strict(t *testing.T) {
	t.Parallel()

	data := []byte("title: Docs\nsidbar: []\n")

	var result struct {
		Title   string `yaml:"title"`
		Sidebar []any  `yaml:"sidebar"`
	}

	require.NoError(t, NewParser().Parse(data, &result, ""))

	err := NewParser(WithStrict()).Parse(data, &result, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sidbar")
}

func TestParser_Parse_EmptyData(t *testing.T) {
	t.Parallel()

	var result struct{}

	for _, data := range [][]byte{{}, []byte("  \n\t")} {
		err := NewParser().Parse(data, &result, "")

		require.ErrorIs(t, err, ErrEmptyData)
	}
}

func TestParser_Parse_InvalidYAML(t *testing.T) {
	t.Parallel()

	var result struct{}

	err := NewParser().Parse([]byte("title: [unterminated\n"), &result, "")

	require.Error(t, err)
}

func TestConvertToYAMLPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single key",
			input:    "title",
			expected: "$.title",
		},
		{
			name:     "two level path",
			input:    "expressiveCode:styleOverrides",
			expected: "$.expressiveCode.styleOverrides",
		},
		{
			name:     "three level path",
			input:    "expressiveCode:styleOverrides:frames",
			expected: "$.expressiveCode.styleOverrides.frames",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, convertToYAMLPath(tt.input))
		})
	}
}
