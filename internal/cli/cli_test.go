package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0xalexb/sitecfg/internal/cli"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testdata(name string) string {
	return filepath.Join("..", "..", "site", "testdata", name)
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var out, errOut bytes.Buffer

	code := cli.Execute(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestExecute_ExitCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
		want int
	}{
		{name: "valid", file: "site.yaml", want: cli.ExitOK},
		{name: "valid toml", file: "site.toml", want: cli.ExitOK},
		{name: "valid jsonc", file: "site.jsonc", want: cli.ExitOK},
		{name: "missing theme", file: "missing-theme.yaml", want: cli.ExitIO},
		{name: "missing site file", file: "absent.yaml", want: cli.ExitIO},
		{name: "broken theme", file: "broken-theme.yaml", want: cli.ExitTheme},
		{name: "bad sidebar", file: "bad-sidebar.yaml", want: cli.ExitSchema},
		{name: "unknown field", file: "unknown-field.yaml", want: cli.ExitSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, _, errOut := run(t, "validate", testdata(tt.file))

			assert.Equal(t, tt.want, code)

			if tt.want != cli.ExitOK {
				assert.Contains(t, errOut, "Error: ")
			}
		})
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	t.Parallel()

	code, _, errOut := run(t, "publish")

	assert.Equal(t, cli.ExitGeneral, code)
	assert.Contains(t, errOut, "unknown command")
}

func TestValidate_Summary(t *testing.T) {
	t.Parallel()

	code, out, _ := run(t, "validate", testdata("site.yaml"))

	require.Equal(t, cli.ExitOK, code)
	assert.Contains(t, out, `ok: "Style Dictionary"`)
	assert.Contains(t, out, "3 links, 1 groups, 1 autogenerated, depth 2")
	assert.Contains(t, out, "Style Dictionary Dark / Style Dictionary Light")
	assert.Contains(t, out, "stylesheets: 2")
}

func TestValidate_ListsPaths(t *testing.T) {
	t.Parallel()

	code, out, _ := run(t, "validate", testdata("bad-sidebar.yaml"))

	require.Equal(t, cli.ExitSchema, code)
	assert.Contains(t, out, "invalid: sidebar[0].items[0]")
	assert.Contains(t, out, "invalid: sidebar[0].items[1]")
}

func TestCompose_PrintsJSON(t *testing.T) {
	t.Parallel()

	code, out, _ := run(t, "compose", testdata("site.yaml"))
	require.Equal(t, cli.ExitOK, code)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, "Style Dictionary", decoded["title"])
	assert.Contains(t, decoded, "sidebar")
	assert.Greater(t, strings.Count(out, "\n"), 1)
}

func TestCompose_Compact(t *testing.T) {
	t.Parallel()

	code, out, _ := run(t, "compose", "--compact", testdata("site.toml"))

	require.Equal(t, cli.ExitOK, code)
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.True(t, json.Valid([]byte(out)))
}

func TestTree_RendersSidebar(t *testing.T) {
	t.Parallel()

	code, out, _ := run(t, "tree", testdata("site.yaml"))

	require.Equal(t, cli.ExitOK, code)
	assert.Contains(t, out, "Style Dictionary")
	assert.Contains(t, out, "Getting started")
	assert.Contains(t, out, "Installation /getting-started/installation")
	assert.Contains(t, out, "Reference (collapsed)")
	assert.Contains(t, out, "autogenerate: reference")
	assert.Contains(t, out, "Version 4 /version-4/migration")
	assert.Less(t, strings.Index(out, "Getting started"), strings.Index(out, "Version 4"))
}

func writePage(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "page.md")
	content := "# Tokens\n\n```typescript\nconst a = 1;\n```\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRender_DefaultPlugins(t *testing.T) {
	t.Parallel()

	code, out, _ := run(t, "render", writePage(t))

	require.Equal(t, cli.ExitOK, code)
	assert.Contains(t, out, "<h1>Tokens</h1>")
	assert.Contains(t, out, `class="language-typescript"`)
	assert.Contains(t, out, `data-language="typescript"`)
}

func TestRender_WithSite(t *testing.T) {
	t.Parallel()

	code, out, _ := run(t, "render", "--site", testdata("site.yaml"), writePage(t))

	require.Equal(t, cli.ExitOK, code)
	assert.Contains(t, out, `class="language-typescript"`)
}

func TestRender_MissingPage(t *testing.T) {
	t.Parallel()

	code, _, errOut := run(t, "render", filepath.Join(t.TempDir(), "absent.md"))

	assert.Equal(t, cli.ExitGeneral, code)
	assert.Contains(t, errOut, "reading page")
}

func TestRender_BrokenSite(t *testing.T) {
	t.Parallel()

	code, _, _ := run(t, "render", "--site", testdata("broken-theme.yaml"), writePage(t))

	assert.Equal(t, cli.ExitTheme, code)
}

func TestServe_FailsBeforeListening(t *testing.T) {
	t.Parallel()

	code, _, errOut := run(t, "serve", "--addr", "127.0.0.1:0", testdata("missing-theme.yaml"))

	assert.Equal(t, cli.ExitIO, code)
	assert.Contains(t, errOut, "missing.vscode.json")
}

func TestVersion(t *testing.T) {
	t.Parallel()

	code, out, _ := run(t, "version")

	require.Equal(t, cli.ExitOK, code)
	assert.True(t, strings.HasPrefix(out, "sitecfg "))
}

func TestVersion_JSON(t *testing.T) {
	t.Parallel()

	code, out, _ := run(t, "version", "--json")
	require.Equal(t, cli.ExitOK, code)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Contains(t, decoded, "version")
	assert.Contains(t, decoded, "commit")
	assert.NotEmpty(t, decoded["goVersion"])
}

func TestExecute_ExplicitEnvFileMustExist(t *testing.T) {
	t.Parallel()

	code, _, errOut := run(t, "--env-file", filepath.Join(t.TempDir(), "absent.env"), "version")

	assert.Equal(t, cli.ExitGeneral, code)
	assert.Contains(t, errOut, "loading env file")
}
