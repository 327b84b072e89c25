package plugin

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

const (
	// transformerPriority runs after goldmark's own transformers.
	transformerPriority = 900
	// rendererPriority takes precedence over the default HTML renderer (1000).
	rendererPriority = 200
)

// Extension returns a goldmark extension that applies the registry to every
// fenced code block, stores the resulting metadata as node attributes and
// renders those attributes on the block's <code> element.
func Extension(registry *Registry) goldmark.Extender {
	return &extension{registry: registry}
}

type extension struct {
	registry *Registry
}

func (e *extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&codeBlockTransformer{registry: e.registry}, transformerPriority),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&codeBlockRenderer{writer: html.DefaultWriter}, rendererPriority),
	))
}

type codeBlockTransformer struct {
	registry *Registry
}

func (t *codeBlockTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()

	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		fenced, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		block := t.registry.Apply(CodeBlock{
			Language: string(fenced.Language(source)),
			Code:     codeText(fenced, source),
			Meta:     attributes(fenced),
		})

		for _, name := range slices.Sorted(maps.Keys(block.Meta)) {
			fenced.SetAttributeString(name, []byte(block.Meta[name]))
		}

		return ast.WalkSkipChildren, nil
	})
}

func codeText(node *ast.FencedCodeBlock, source []byte) string {
	var builder strings.Builder

	lines := node.Lines()
	for i := range lines.Len() {
		segment := lines.At(i)
		builder.Write(segment.Value(source))
	}

	return builder.String()
}

func attributes(node ast.Node) map[string]string {
	attrs := node.Attributes()
	if len(attrs) == 0 {
		return nil
	}

	meta := make(map[string]string, len(attrs))

	for _, attr := range attrs {
		switch value := attr.Value.(type) {
		case []byte:
			meta[string(attr.Name)] = string(value)
		case string:
			meta[string(attr.Name)] = value
		default:
			meta[string(attr.Name)] = fmt.Sprint(value)
		}
	}

	return meta
}

type codeBlockRenderer struct {
	writer html.Writer
}

func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *codeBlockRenderer) renderFencedCodeBlock(
	w util.BufWriter, source []byte, node ast.Node, entering bool,
) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString("<pre><code")
	html.RenderAttributes(w, node, nil)
	_ = w.WriteByte('>')

	lines := node.Lines()
	for i := range lines.Len() {
		segment := lines.At(i)
		r.writer.RawWrite(w, segment.Value(source))
	}

	_, _ = w.WriteString("</code></pre>\n")

	return ast.WalkContinue, nil
}
