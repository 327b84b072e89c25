package jsonc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/jsonc"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the document.
var ErrPathNotFound = errors.New("path not found")

// Parser implements config.Parser for JSON with comments.
type Parser struct {
	strict bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrict makes the parser reject object keys that have no matching struct field.
func WithStrict() Option {
	return func(p *Parser) {
		p.strict = true
	}
}

// NewParser creates a new JSONC parser instance.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{}

	for _, apply := range opts {
		apply(parser)
	}

	return parser
}

// Parse strips comments and trailing commas from data and decodes the value
// found at path into target. Empty path decodes the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	stripped := bytes.TrimSpace(jsonc.ToJSON(data))
	if len(stripped) == 0 {
		return ErrEmptyData
	}

	raw := json.RawMessage(stripped)

	if path != "" {
		var err error

		raw, err = navigate(raw, path)
		if err != nil {
			return err
		}
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	if p.strict {
		decoder.DisallowUnknownFields()
	}

	err := decoder.Decode(target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}

func navigate(raw json.RawMessage, path string) (json.RawMessage, error) {
	current := raw

	for _, key := range strings.Split(path, ":") {
		var object map[string]json.RawMessage

		err := json.Unmarshal(current, &object)
		if err != nil {
			return nil, fmt.Errorf("reading path %q: %q is not an object: %w", path, key, err)
		}

		next, ok := object[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		current = next
	}

	return current, nil
}
