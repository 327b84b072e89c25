package site

import (
	"errors"
	"fmt"
	"maps"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/0xalexb/sitecfg/nav"
	"github.com/0xalexb/sitecfg/plugin"
	"github.com/0xalexb/sitecfg/siteerr"
	"github.com/0xalexb/sitecfg/theme"
)

// Table of contents heading levels.
const (
	DefaultTOCMinDepth = 2
	DefaultTOCMaxDepth = 3
	minHeadingLevel    = 1
	maxHeadingLevel    = 6
)

var tagNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)

// Input carries everything Compose assembles. Zero TOC depths select the defaults.
type Input struct {
	Title          string
	Description    string
	Logo           *LogoRef
	Favicon        string
	EditLinkBase   string
	Social         map[string]string
	TOCMinDepth    int
	TOCMaxDepth    int
	Sidebar        []nav.Node
	Head           []HeadTag
	CustomCSS      []string
	Themes         []theme.Descriptor
	Plugins        []plugin.Plugin
	Components     map[string]string
	StyleOverrides map[string]any
}

// Compose validates in and builds an immutable SiteConfig. Every problem found
// is reported; each one wraps siteerr.ErrConfigSchema.
func Compose(in Input) (*SiteConfig, error) {
	var errs []error

	check := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	check(requireText("title", in.Title))
	check(requireText("description", in.Description))
	check(validateLogo(in.Logo))
	check(validateEditLink(in.EditLinkBase))
	check(validateSocial(in.Social))

	minDepth, maxDepth, err := tocDepths(in.TOCMinDepth, in.TOCMaxDepth)
	check(err)

	check(nav.Validate(in.Sidebar))
	check(validateHead(in.Head))
	check(validateCustomCSS(in.CustomCSS))
	check(validateComponents(in.Components))
	check(validatePlugins(in.Plugins))

	themes, err := theme.PairFrom(in.Themes)
	check(err)

	if len(errs) > 0 {
		return nil, fmt.Errorf("composing site config: %w", errors.Join(errs...))
	}

	var logo *LogoRef
	if in.Logo != nil {
		copied := *in.Logo
		logo = &copied
	}

	return &SiteConfig{
		title:          in.Title,
		description:    in.Description,
		logo:           logo,
		favicon:        in.Favicon,
		editLinkBase:   in.EditLinkBase,
		social:         maps.Clone(in.Social),
		tocMinDepth:    minDepth,
		tocMaxDepth:    maxDepth,
		sidebar:        nav.Clone(in.Sidebar),
		head:           cloneHead(in.Head),
		customCSS:      slices.Clone(in.CustomCSS),
		themes:         themes,
		plugins:        plugin.NewRegistry(in.Plugins...).Plugins(),
		components:     maps.Clone(in.Components),
		styleOverrides: cloneTree(in.StyleOverrides),
	}, nil
}

func requireText(path, value string) error {
	if strings.TrimSpace(value) == "" {
		return siteerr.Schema(path, "must not be empty")
	}

	return nil
}

func validateLogo(logo *LogoRef) error {
	if logo == nil {
		return nil
	}

	return requireText("logo.src", logo.Src)
}

func validateEditLink(base string) error {
	if base == "" {
		return nil
	}

	return requireHTTPURL("editLink.baseUrl", base)
}

func validateSocial(social map[string]string) error {
	var errs []error

	for _, name := range slices.Sorted(maps.Keys(social)) {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, siteerr.Schema("social", "link name must not be empty"))

			continue
		}

		if err := requireHTTPURL("social."+name, social[name]); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func requireHTTPURL(path, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return siteerr.Schema(path, "invalid URL %q: %v", raw, err)
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return siteerr.Schema(path, "expected an absolute http(s) URL, got %q", raw)
	}

	return nil
}

func tocDepths(minDepth, maxDepth int) (int, int, error) {
	if minDepth == 0 {
		minDepth = DefaultTOCMinDepth
	}

	if maxDepth == 0 {
		maxDepth = max(DefaultTOCMaxDepth, minDepth)
	}

	switch {
	case minDepth < minHeadingLevel || minDepth > maxHeadingLevel:
		return 0, 0, siteerr.Schema("tableOfContents.minHeadingLevel", "must be between %d and %d, got %d",
			minHeadingLevel, maxHeadingLevel, minDepth)
	case maxDepth < minHeadingLevel || maxDepth > maxHeadingLevel:
		return 0, 0, siteerr.Schema("tableOfContents.maxHeadingLevel", "must be between %d and %d, got %d",
			minHeadingLevel, maxHeadingLevel, maxDepth)
	case minDepth > maxDepth:
		return 0, 0, siteerr.Schema("tableOfContents", "minHeadingLevel %d is greater than maxHeadingLevel %d",
			minDepth, maxDepth)
	}

	return minDepth, maxDepth, nil
}

func validateHead(head []HeadTag) error {
	var errs []error

	for i, tag := range head {
		path := fmt.Sprintf("head[%d]", i)

		if !tagNamePattern.MatchString(tag.Tag) {
			errs = append(errs, siteerr.Schema(path+".tag", "invalid tag name %q", tag.Tag))
		}

		for _, name := range slices.Sorted(maps.Keys(tag.Attrs)) {
			if strings.TrimSpace(name) == "" || strings.ContainsAny(name, " \t\n\"'>/=") {
				errs = append(errs, siteerr.Schema(path+".attrs", "invalid attribute name %q", name))
			}
		}
	}

	return errors.Join(errs...)
}

func validateCustomCSS(paths []string) error {
	var errs []error

	for i, path := range paths {
		if strings.TrimSpace(path) == "" {
			errs = append(errs, siteerr.Schema(fmt.Sprintf("customCss[%d]", i), "must not be empty"))
		}
	}

	return errors.Join(errs...)
}

func validateComponents(components map[string]string) error {
	var errs []error

	for _, name := range slices.Sorted(maps.Keys(components)) {
		if strings.TrimSpace(components[name]) == "" {
			errs = append(errs, siteerr.Schema("components."+name, "must not be empty"))
		}
	}

	return errors.Join(errs...)
}

func validatePlugins(plugins []plugin.Plugin) error {
	for i, p := range plugins {
		if p == nil {
			return siteerr.Schema(fmt.Sprintf("plugins[%d]", i), "nil plugin")
		}
	}

	return nil
}
