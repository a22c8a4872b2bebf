// Package theme defines the design tokens shared by the web client and its
// CSS build: a color palette, font stacks and border radii. Tokens are loaded
// from TOML, validated, and rendered either as CSS custom properties or as
// a Tailwind configuration document.
package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidToken is wrapped by every validation failure.
var ErrInvalidToken = errors.New("invalid theme token")

var (
	tokenName = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
	hexColor  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	cssLength = regexp.MustCompile(`^(?:0|\d+(?:\.\d+)?(?:px|rem|em|%)|\.\d+(?:px|rem|em|%))$`)
)

// fontUnsafe lists characters that would break out of a custom property value.
const fontUnsafe = "\"'\\;{}<>\n\r"

// Theme holds the design tokens by category.
type Theme struct {
	Content      []string            `toml:"content" json:"content"`
	Colors       map[string]string   `toml:"colors" json:"colors"`
	FontFamily   map[string][]string `toml:"font_family" json:"fontFamily"`
	BorderRadius map[string]string   `toml:"border_radius" json:"borderRadius"`
}

// Default returns the DiscVault token set.
func Default() *Theme {
	return &Theme{
		Content: []string{
			"./index.html",
			"./src/**/*.{vue,js,ts,jsx,tsx}",
		},
		Colors: map[string]string{
			"primary":          "#135bec",
			"background-light": "#f6f6f8",
			"background-dark":  "#101622",
			"surface-light":    "#ffffff",
			"surface-dark":     "#1a2230",
		},
		FontFamily: map[string][]string{
			"display": {"Work Sans", "sans-serif"},
			"sans":    {"Work Sans", "sans-serif"},
		},
		BorderRadius: map[string]string{
			"xl":  "0.75rem",
			"2xl": "1rem",
		},
	}
}

// Load reads a TOML token file, merges it over Default, and validates the result.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML token data, merges it over Default, and validates the result.
func Parse(data []byte) (*Theme, error) {
	var overlay Theme
	if err := toml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}

	t := Default()
	t.Merge(&overlay)

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Merge applies overlay tokens onto t. Overlay content replaces the content
// list when non-empty; token maps are merged key by key.
func (t *Theme) Merge(overlay *Theme) {
	if len(overlay.Content) > 0 {
		t.Content = slices.Clone(overlay.Content)
	}
	if t.Colors == nil {
		t.Colors = make(map[string]string)
	}
	maps.Copy(t.Colors, overlay.Colors)

	if t.FontFamily == nil {
		t.FontFamily = make(map[string][]string)
	}
	for k, v := range overlay.FontFamily {
		t.FontFamily[k] = slices.Clone(v)
	}

	if t.BorderRadius == nil {
		t.BorderRadius = make(map[string]string)
	}
	maps.Copy(t.BorderRadius, overlay.BorderRadius)
}

// Validate checks token names and values.
func (t *Theme) Validate() error {
	for _, name := range slices.Sorted(maps.Keys(t.Colors)) {
		if err := checkName("colors", name); err != nil {
			return err
		}
		if v := t.Colors[name]; !hexColor.MatchString(v) {
			return fmt.Errorf("%w: colors.%s = %q is not a hex color", ErrInvalidToken, name, v)
		}
	}

	for _, name := range slices.Sorted(maps.Keys(t.FontFamily)) {
		if err := checkName("font_family", name); err != nil {
			return err
		}
		stack := t.FontFamily[name]
		if len(stack) == 0 {
			return fmt.Errorf("%w: font_family.%s is empty", ErrInvalidToken, name)
		}
		for _, family := range stack {
			if strings.TrimSpace(family) == "" {
				return fmt.Errorf("%w: font_family.%s has an empty family", ErrInvalidToken, name)
			}
			if strings.ContainsAny(family, fontUnsafe) {
				return fmt.Errorf("%w: font_family.%s family %q contains a reserved character", ErrInvalidToken, name, family)
			}
		}
	}

	for _, name := range slices.Sorted(maps.Keys(t.BorderRadius)) {
		if err := checkName("border_radius", name); err != nil {
			return err
		}
		if v := t.BorderRadius[name]; !cssLength.MatchString(v) {
			return fmt.Errorf("%w: border_radius.%s = %q is not a css length", ErrInvalidToken, name, v)
		}
	}

	for _, glob := range t.Content {
		if strings.TrimSpace(glob) == "" {
			return fmt.Errorf("%w: content has an empty glob", ErrInvalidToken)
		}
	}

	return nil
}

// CSS renders the tokens as custom properties on :root, sorted by name.
func (t *Theme) CSS() string {
	var b strings.Builder
	b.WriteString(":root {\n")

	for _, name := range slices.Sorted(maps.Keys(t.Colors)) {
		fmt.Fprintf(&b, "  --color-%s: %s;\n", name, t.Colors[name])
	}
	for _, name := range slices.Sorted(maps.Keys(t.FontFamily)) {
		fmt.Fprintf(&b, "  --font-%s: %s;\n", name, fontStack(t.FontFamily[name]))
	}
	for _, name := range slices.Sorted(maps.Keys(t.BorderRadius)) {
		fmt.Fprintf(&b, "  --radius-%s: %s;\n", name, t.BorderRadius[name])
	}

	b.WriteString("}\n")
	return b.String()
}

type tailwindConfig struct {
	Content []string      `json:"content"`
	Theme   tailwindTheme `json:"theme"`
	Plugins []string      `json:"plugins"`
}

type tailwindTheme struct {
	Extend tailwindExtend `json:"extend"`
}

type tailwindExtend struct {
	Colors       map[string]string   `json:"colors"`
	FontFamily   map[string][]string `json:"fontFamily"`
	BorderRadius map[string]string   `json:"borderRadius"`
}

// TailwindConfig renders the tokens as the JSON document consumed by the CSS build.
func (t *Theme) TailwindConfig() ([]byte, error) {
	cfg := tailwindConfig{
		Content: nonNil(t.Content),
		Theme: tailwindTheme{
			Extend: tailwindExtend{
				Colors:       nonNilMap(t.Colors),
				FontFamily:   nonNilMap(t.FontFamily),
				BorderRadius: nonNilMap(t.BorderRadius),
			},
		},
		Plugins: []string{},
	}
	return json.MarshalIndent(cfg, "", "  ")
}

func checkName(category, name string) error {
	if !tokenName.MatchString(name) {
		return fmt.Errorf("%w: %s name %q", ErrInvalidToken, category, name)
	}
	return nil
}

func fontStack(families []string) string {
	quoted := make([]string, len(families))
	for i, f := range families {
		if strings.ContainsAny(f, " \t") {
			quoted[i] = `"` + f + `"`
		} else {
			quoted[i] = f
		}
	}
	return strings.Join(quoted, ", ")
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilMap[V any](m map[string]V) map[string]V {
	if m == nil {
		return map[string]V{}
	}
	return m
}
