package theme

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/sitecfg/config"
	filefetcher "github.com/0xalexb/sitecfg/config/fetcher/file"
	jsoncparser "github.com/0xalexb/sitecfg/config/parser/jsonc"
	"github.com/0xalexb/sitecfg/siteerr"
)

// Load reads and validates the theme descriptor at path.
func Load(path string) (Descriptor, error) {
	fetcher, err := filefetcher.Read(path)
	if err != nil {
		return Descriptor{}, fmt.Errorf("%w: theme %q: %w", siteerr.ErrIO, path, err)
	}

	return Decode(path, fetcher)
}

// Decode parses a descriptor from fetcher. The source name is only used in errors.
func Decode(source string, fetcher config.DataFetcher) (Descriptor, error) {
	desc, err := config.Load(&Descriptor{}, "", jsoncparser.NewParser(), fetcher)
	if err != nil {
		if errors.Is(err, config.ErrFetch) {
			return Descriptor{}, fmt.Errorf("%w: theme %q: %w", siteerr.ErrIO, source, err)
		}

		return Descriptor{}, fmt.Errorf("%w: theme %q: %w", siteerr.ErrThemeParse, source, err)
	}

	slog.Debug("theme loaded",
		slog.String("source", source),
		slog.String("name", desc.Name),
		slog.Int("rules", len(desc.TokenColors)))

	return *desc, nil
}

// Pair holds the two descriptors a site renders code blocks with.
type Pair struct {
	Dark  Descriptor `json:"dark"`
	Light Descriptor `json:"light"`
}

// LoadPair loads the dark and light descriptors. Either failure aborts the pair.
func LoadPair(darkPath, lightPath string) (Pair, error) {
	dark, err := Load(darkPath)
	if err != nil {
		return Pair{}, err
	}

	light, err := Load(lightPath)
	if err != nil {
		return Pair{}, err
	}

	return PairFrom([]Descriptor{dark, light})
}

// PairFrom assigns descriptors positionally: index 0 is dark, index 1 is light.
// Exactly two descriptors are required.
func PairFrom(descriptors []Descriptor) (Pair, error) {
	if len(descriptors) != 2 { //nolint:mnd
		return Pair{}, siteerr.Schema("themes", "exactly one dark and one light theme required, got %d descriptors",
			len(descriptors))
	}

	pair := Pair{
		Dark:  descriptors[0].clone(),
		Light: descriptors[1].clone(),
	}

	// descriptors built in code never went through Load
	var errs []error

	for i, desc := range []*Descriptor{&pair.Dark, &pair.Light} {
		desc.SetDefaults()

		if err := desc.Validate(); err != nil {
			errs = append(errs, siteerr.Schema(fmt.Sprintf("themes[%d]", i), "%v", err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return Pair{}, err
	}

	warnVariantMismatch("dark", pair.Dark, VariantDark, VariantHC)
	warnVariantMismatch("light", pair.Light, VariantLight, VariantHCLight)

	return pair, nil
}

// Descriptors returns the pair in positional order.
func (p Pair) Descriptors() []Descriptor {
	return []Descriptor{p.Dark.clone(), p.Light.clone()}
}

func warnVariantMismatch(slot string, desc Descriptor, accepted ...string) {
	if desc.Type == "" {
		return
	}

	for _, variant := range accepted {
		if desc.Type == variant {
			return
		}
	}

	slog.Warn("theme type does not match its slot",
		slog.String("slot", slot),
		slog.String("name", desc.Name),
		slog.String("type", desc.Type))
}
