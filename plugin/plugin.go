package plugin

import (
	"maps"
	"strings"
	"unicode"

	"github.com/alecthomas/chroma/v2/lexers"
)

// Metadata keys set by the language-class plugin.
const (
	MetaClass    = "class"
	MetaLanguage = "data-language"

	// LanguageClassName is the registry name of the language-class plugin.
	LanguageClassName = "language-class"

	languageClassPrefix = "language-"
)

// CodeBlock is a fenced code block as seen by plugins.
type CodeBlock struct {
	Language string
	Code     string
	Meta     map[string]string
}

// Plugin transforms code-block metadata.
type Plugin interface {
	Name() string
	Transform(block CodeBlock) CodeBlock
}

type languageClass struct{}

// LanguageClass returns the plugin that attaches a normalized language class.
func LanguageClass() Plugin {
	return languageClass{}
}

func (languageClass) Name() string {
	return LanguageClassName
}

// Transform sets exactly one language-* class token and the data-language
// attribute. Other class tokens already present are kept in order.
func (languageClass) Transform(block CodeBlock) CodeBlock {
	out := block
	out.Meta = maps.Clone(block.Meta)

	language := NormalizeLanguage(block.Language)
	if language == "" {
		return out
	}

	if out.Meta == nil {
		out.Meta = make(map[string]string, 2) //nolint:mnd
	}

	tokens := make([]string, 0)

	for token := range strings.FieldsSeq(out.Meta[MetaClass]) {
		if strings.HasPrefix(token, languageClassPrefix) {
			continue
		}

		tokens = append(tokens, token)
	}

	tokens = append(tokens, languageClassPrefix+language)

	out.Meta[MetaClass] = strings.Join(tokens, " ")
	out.Meta[MetaLanguage] = language

	return out
}

// NormalizeLanguage maps a code-block language identifier onto a stable,
// class-safe name. Identifiers known to chroma resolve to the lexer name, so
// aliases collapse ("js" -> "javascript"); unknown identifiers are lowercased.
func NormalizeLanguage(language string) string {
	language = strings.TrimSpace(language)
	if language == "" {
		return ""
	}

	// info strings may carry attributes after the language: "js title=app.js"
	if fields := strings.Fields(language); len(fields) > 0 {
		language = fields[0]
	}

	name := language
	if lexer := lexers.Get(language); lexer != nil {
		name = lexer.Config().Name
	}

	return classSafe(name)
}

func classSafe(name string) string {
	var builder strings.Builder

	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsSpace(r):
			builder.WriteRune('-')
		case unicode.IsLetter(r), unicode.IsDigit(r), strings.ContainsRune("+#-_.", r):
			builder.WriteRune(r)
		}
	}

	return builder.String()
}
