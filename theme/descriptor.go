package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Variant values accepted in a descriptor's "type" field.
const (
	VariantDark    = "dark"
	VariantLight   = "light"
	VariantHC      = "hc"
	VariantHCLight = "hcLight"
)

var (
	errMissingName        = errors.New("name is required")
	errMissingTokenColors = errors.New("tokenColors must contain at least one rule")
	errEmptySettings      = errors.New("settings must not be empty")
	errBadColor           = errors.New("invalid color")
	errBadFontStyle       = errors.New("invalid fontStyle")
	errBadVariant         = errors.New("invalid type")
)

var colorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

//nolint:gochecknoglobals
var fontStyles = map[string]bool{
	"italic":        true,
	"bold":          true,
	"underline":     true,
	"strikethrough": true,
}

// Descriptor is a named bundle of token colour rules.
type Descriptor struct {
	Name                 string            `json:"name"`
	Type                 string            `json:"type,omitempty"`
	Colors               map[string]string `json:"colors,omitempty"`
	TokenColors          []TokenRule       `json:"tokenColors"`
	SemanticHighlighting bool              `json:"semanticHighlighting,omitempty"`
	SemanticTokenColors  map[string]any    `json:"semanticTokenColors,omitempty"`
}

// TokenRule maps a set of TextMate scopes to colour settings.
type TokenRule struct {
	Name     string        `json:"name,omitempty"`
	Scope    Scopes        `json:"scope,omitempty"`
	Settings TokenSettings `json:"settings"`
}

// TokenSettings holds the colours and font style applied to matching tokens.
type TokenSettings struct {
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`
	FontStyle  string `json:"fontStyle,omitempty"`

	// declared is set when the theme file names at least one known setting, even
	// with an empty value: {"fontStyle": ""} resets inherited styles.
	declared bool
}

// UnmarshalJSON decodes the settings and records whether any key was given.
func (s *TokenSettings) UnmarshalJSON(data []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return fmt.Errorf("settings must be an object: %w", err)
	}

	type plain TokenSettings

	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("decoding settings: %w", err)
	}

	*s = TokenSettings(decoded)
	for _, key := range []string{"foreground", "background", "fontStyle"} {
		if _, ok := keys[key]; ok {
			s.declared = true
		}
	}

	return nil
}

func (s TokenSettings) empty() bool {
	return !s.declared && s.Foreground == "" && s.Background == "" && s.FontStyle == ""
}

// Scopes is a list of TextMate scope selectors. In theme files it is written
// either as a list or as one comma-separated string.
type Scopes []string

// UnmarshalJSON accepts both the string and the list form.
func (s *Scopes) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = splitScopes(single)

		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("scope must be a string or a list of strings: %w", err)
	}

	scopes := make(Scopes, 0, len(list))
	for _, item := range list {
		scopes = append(scopes, splitScopes(item)...)
	}

	*s = scopes

	return nil
}

func splitScopes(value string) Scopes {
	var scopes Scopes

	for part := range strings.SplitSeq(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			scopes = append(scopes, part)
		}
	}

	return scopes
}

// SetDefaults trims surrounding whitespace from the name and type.
func (d *Descriptor) SetDefaults() bool {
	name := strings.TrimSpace(d.Name)
	variant := strings.TrimSpace(d.Type)
	changed := name != d.Name || variant != d.Type

	d.Name = name
	d.Type = variant

	return changed
}

// Validate checks that the descriptor carries every required field in a usable form.
func (d *Descriptor) Validate() error {
	if d.Name == "" {
		return errMissingName
	}

	switch d.Type {
	case "", VariantDark, VariantLight, VariantHC, VariantHCLight:
	default:
		return fmt.Errorf("%w %q", errBadVariant, d.Type)
	}

	for key, value := range d.Colors {
		if !colorPattern.MatchString(value) {
			return fmt.Errorf("colors[%q]: %w %q", key, errBadColor, value)
		}
	}

	if len(d.TokenColors) == 0 {
		return errMissingTokenColors
	}

	for i, rule := range d.TokenColors {
		err := rule.validate()
		if err != nil {
			return fmt.Errorf("tokenColors[%d]: %w", i, err)
		}
	}

	return nil
}

func (r TokenRule) validate() error {
	settings := r.Settings
	if settings.empty() {
		return errEmptySettings
	}

	if settings.Foreground != "" && !colorPattern.MatchString(settings.Foreground) {
		return fmt.Errorf("foreground: %w %q", errBadColor, settings.Foreground)
	}

	if settings.Background != "" && !colorPattern.MatchString(settings.Background) {
		return fmt.Errorf("background: %w %q", errBadColor, settings.Background)
	}

	for style := range strings.FieldsSeq(settings.FontStyle) {
		if !fontStyles[style] {
			return fmt.Errorf("%w %q", errBadFontStyle, settings.FontStyle)
		}
	}

	return nil
}

// clone returns a deep copy of the descriptor.
func (d Descriptor) clone() Descriptor {
	out := d

	if d.Colors != nil {
		out.Colors = make(map[string]string, len(d.Colors))
		for k, v := range d.Colors {
			out.Colors[k] = v
		}
	}

	if d.TokenColors != nil {
		out.TokenColors = make([]TokenRule, len(d.TokenColors))
		for i, rule := range d.TokenColors {
			rule.Scope = append(Scopes(nil), rule.Scope...)
			out.TokenColors[i] = rule
		}
	}

	if d.SemanticTokenColors != nil {
		out.SemanticTokenColors = make(map[string]any, len(d.SemanticTokenColors))
		for k, v := range d.SemanticTokenColors {
			out.SemanticTokenColors[k] = v
		}
	}

	return out
}
