package site

import (
	"encoding/json"

	"github.com/perspective-dev/siteconf/catalog"
)

// Config is the descriptor handed to the static-site build tool. Field
// names follow the tool's own configuration keys.
type Config struct {
	Title                 string       `json:"title" yaml:"title" toml:"title"`
	Tagline               string       `json:"tagline,omitempty" yaml:"tagline,omitempty" toml:"tagline,omitempty"`
	URL                   string       `json:"url" yaml:"url" toml:"url"`
	BaseURL               string       `json:"baseUrl" yaml:"baseUrl" toml:"baseUrl"`
	OnBrokenLinks         string       `json:"onBrokenLinks" yaml:"onBrokenLinks" toml:"onBrokenLinks"`
	OnBrokenMarkdownLinks string       `json:"onBrokenMarkdownLinks" yaml:"onBrokenMarkdownLinks" toml:"onBrokenMarkdownLinks"`
	Favicon               string       `json:"favicon" yaml:"favicon" toml:"favicon"`
	OrganizationName      string       `json:"organizationName" yaml:"organizationName" toml:"organizationName"`
	ProjectName           string       `json:"projectName" yaml:"projectName" toml:"projectName"`
	TrailingSlash         bool         `json:"trailingSlash" yaml:"trailingSlash" toml:"trailingSlash"`
	CustomFields          CustomFields `json:"customFields" yaml:"customFields" toml:"customFields"`
	I18n                  I18n         `json:"i18n" yaml:"i18n" toml:"i18n"`
	Plugins               []string     `json:"plugins" yaml:"plugins" toml:"plugins"`
	Presets               []Preset     `json:"presets" yaml:"presets" toml:"presets"`
	ThemeConfig           ThemeConfig  `json:"themeConfig" yaml:"themeConfig" toml:"themeConfig"`
}

// CustomFields holds data passed through to the site's own components.
type CustomFields struct {
	Examples []catalog.Example `json:"examples" yaml:"examples" toml:"examples"`
}

// I18n holds locale settings.
type I18n struct {
	DefaultLocale string   `json:"defaultLocale" yaml:"defaultLocale" toml:"defaultLocale"`
	Locales       []string `json:"locales" yaml:"locales" toml:"locales"`
}

// Preset is a named preset and its options. The build tool expects it as
// a [name, options] pair, so JSON and YAML encode it that way.
type Preset struct {
	Name    string        `toml:"name"`
	Options PresetOptions `toml:"options"`
}

// MarshalJSON encodes the preset as a two element array.
func (p Preset) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.Name, p.Options})
}

// MarshalYAML encodes the preset as a two element sequence.
func (p Preset) MarshalYAML() (any, error) {
	return []any{p.Name, p.Options}, nil
}

// PresetOptions configures the classic preset.
type PresetOptions struct {
	Docs  bool        `json:"docs" yaml:"docs" toml:"docs"`
	Theme PresetTheme `json:"theme" yaml:"theme" toml:"theme"`
}

// PresetTheme points at the site stylesheet.
type PresetTheme struct {
	CustomCSS string `json:"customCss" yaml:"customCss" toml:"customCss"`
}

// ThemeConfig configures the theme.
type ThemeConfig struct {
	ColorMode ColorMode `json:"colorMode" yaml:"colorMode" toml:"colorMode"`
	Navbar    Navbar    `json:"navbar" yaml:"navbar" toml:"navbar"`
	Footer    Footer    `json:"footer" yaml:"footer" toml:"footer"`
	Prism     Prism     `json:"prism" yaml:"prism" toml:"prism"`
}

// ColorMode selects the initial light or dark mode.
type ColorMode struct {
	DefaultMode string `json:"defaultMode" yaml:"defaultMode" toml:"defaultMode"`
}

// Navbar is the top navigation bar.
type Navbar struct {
	Title string    `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Logo  Logo      `json:"logo" yaml:"logo" toml:"logo"`
	Items []NavItem `json:"items" yaml:"items" toml:"items"`
}

// Logo is the navbar image.
type Logo struct {
	Alt string `json:"alt" yaml:"alt" toml:"alt"`
	Src string `json:"src" yaml:"src" toml:"src"`
}

// NavItem is one navbar entry. Depending on which fields are set it is a
// dropdown (Items), a raw HTML label (Value), an external link (Href) or
// a link inside the site (To).
type NavItem struct {
	Type     string    `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Label    string    `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Value    string    `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	Href     string    `json:"href,omitempty" yaml:"href,omitempty" toml:"href,omitempty"`
	To       string    `json:"to,omitempty" yaml:"to,omitempty" toml:"to,omitempty"`
	Position string    `json:"position,omitempty" yaml:"position,omitempty" toml:"position,omitempty"`
	Items    []NavItem `json:"items,omitempty" yaml:"items,omitempty" toml:"items,omitempty"`
}

// Footer is the page footer.
type Footer struct {
	Links     []FooterColumn `json:"links" yaml:"links" toml:"links"`
	Copyright string         `json:"copyright" yaml:"copyright" toml:"copyright"`
}

// FooterColumn is a titled group of footer links.
type FooterColumn struct {
	Title string    `json:"title" yaml:"title" toml:"title"`
	Items []NavItem `json:"items" yaml:"items" toml:"items"`
}

// Prism names the code highlighting themes.
type Prism struct {
	Theme     string `json:"theme" yaml:"theme" toml:"theme"`
	DarkTheme string `json:"darkTheme" yaml:"darkTheme" toml:"darkTheme"`
}
