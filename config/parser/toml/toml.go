package toml

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the document.
var ErrPathNotFound = errors.New("path not found")

// ErrUndecodedKeys is returned in strict mode when keys have no matching field.
var ErrUndecodedKeys = errors.New("undecoded keys")

// Parser implements config.Parser for TOML data.
type Parser struct {
	strict bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrict makes the parser reject keys that have no matching struct field.
func WithStrict() Option {
	return func(p *Parser) {
		p.strict = true
	}
}

// NewParser creates a new TOML parser instance.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{}

	for _, apply := range opts {
		apply(parser)
	}

	return parser
}

// Parse decodes the TOML value found at path into target.
// Empty path decodes the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		meta, err := toml.Decode(string(data), target)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return p.checkUndecoded(meta, target, nil)
	}

	var root map[string]toml.Primitive

	meta, err := toml.Decode(string(data), &root)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	keys := strings.Split(path, ":")
	level := root

	for i, key := range keys {
		prim, ok := level[key]
		if !ok {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		if i == len(keys)-1 {
			err = meta.PrimitiveDecode(prim, target)
			if err != nil {
				return fmt.Errorf("decoding path %q: %w", path, err)
			}

			return p.checkUndecoded(meta, target, keys)
		}

		var next map[string]toml.Primitive

		err = meta.PrimitiveDecode(prim, &next)
		if err != nil {
			return fmt.Errorf("reading path %q: %q is not a table: %w", path, key, err)
		}

		level = next
	}

	return nil
}

// checkUndecoded reports keys below prefix that were not decoded into target.
// Keys outside prefix belong to other sections and are ignored, as are keys
// held inside a generic value such as an any field or the elements of []any.
func (p *Parser) checkUndecoded(meta toml.MetaData, target any, prefix []string) error {
	if !p.strict {
		return nil
	}

	root := reflect.TypeOf(target)

	var names []string

	for _, key := range meta.Undecoded() {
		if len(key) <= len(prefix) || !slices.Equal([]string(key[:len(prefix)]), prefix) {
			continue
		}

		if insideGeneric(root, key[len(prefix):]) {
			continue
		}

		names = append(names, key.String())
	}

	if len(names) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrUndecodedKeys, strings.Join(names, ", "))
}

// insideGeneric follows the parents of key through the Go type decoded into
// and reports whether one of them is an interface value.
func insideGeneric(typ reflect.Type, key []string) bool {
	typ = element(typ)

	for _, part := range key[:len(key)-1] {
		if typ == nil || typ.Kind() == reflect.Interface {
			return typ != nil
		}

		switch typ.Kind() { //nolint:exhaustive
		case reflect.Map:
			typ = element(typ.Elem())
		case reflect.Struct:
			field, ok := fieldFor(typ, part)
			if !ok {
				return false
			}

			typ = element(field.Type)
		default:
			return false
		}
	}

	return typ != nil && typ.Kind() == reflect.Interface
}

// element strips pointers, slices and arrays: arrays of tables share their
// key with the table itself.
func element(typ reflect.Type) reflect.Type {
	for typ != nil {
		switch typ.Kind() { //nolint:exhaustive
		case reflect.Pointer, reflect.Slice, reflect.Array:
			typ = typ.Elem()
		default:
			return typ
		}
	}

	return nil
}

// fieldFor finds the struct field a TOML key decodes into: the toml tag or
// field name, exact match first, then case-insensitive. Untagged embedded
// structs are searched too.
func fieldFor(typ reflect.Type, key string) (reflect.StructField, bool) {
	var folded *reflect.StructField

	for i := range typ.NumField() {
		field := typ.Field(i)

		name, _, _ := strings.Cut(field.Tag.Get("toml"), ",")
		if name == "-" {
			continue
		}

		if field.Anonymous && name == "" && element(field.Type).Kind() == reflect.Struct {
			if inner, ok := fieldFor(element(field.Type), key); ok {
				return inner, true
			}

			continue
		}

		if !field.IsExported() {
			continue
		}

		if name == "" {
			name = field.Name
		}

		if name == key {
			return field, true
		}

		if folded == nil && strings.EqualFold(name, key) {
			folded = &field
		}
	}

	if folded != nil {
		return *folded, true
	}

	return reflect.StructField{}, false
}
