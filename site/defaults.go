package site

const (
	// DefaultBlocks is where examples live, relative to the site root.
	DefaultBlocks = "static/blocks"

	customCSS = "src/css/custom.css"
)

// Default returns the static part of the Perspective site descriptor.
// Each call returns a fresh value.
func Default() *Config {
	return &Config{
		Title:                 "Perspective",
		URL:                   "https://perspective.finos.org",
		BaseURL:               "/",
		OnBrokenLinks:         "warn",
		OnBrokenMarkdownLinks: "warn",
		Favicon:               "https://www.finos.org/hubfs/FINOS/finos-logo/favicon.ico",
		OrganizationName:      "finos",
		ProjectName:           "perspective",
		TrailingSlash:         true,
		I18n: I18n{
			DefaultLocale: "en",
			Locales:       []string{"en"},
		},
		Plugins: []string{"./plugins/perspective-loader"},
		Presets: []Preset{
			{
				Name: "classic",
				Options: PresetOptions{
					Docs:  false,
					Theme: PresetTheme{CustomCSS: "./" + customCSS},
				},
			},
		},
		ThemeConfig: ThemeConfig{
			ColorMode: ColorMode{DefaultMode: "dark"},
			Navbar: Navbar{
				Logo: Logo{
					Alt: "Perspective",
					Src: "svg/perspective-logo-light.svg",
				},
				Items: []NavItem{
					{
						Type:     "dropdown",
						Position: "right",
						Label:    "Docs",
						Items:    docsMenu(),
					},
					{To: "/examples", Position: "right", Label: "Examples"},
					{Href: "https://www.prospective.co/blog", Label: "Blog", Position: "right"},
					{Href: "https://github.com/finos/perspective", Label: "GitHub", Position: "right"},
				},
			},
			Footer: Footer{
				Links: []FooterColumn{},
			},
			Prism: Prism{
				Theme:     "github",
				DarkTheme: "dracula",
			},
		},
	}
}

// docsMenu lists the API references, grouped by language.
func docsMenu() []NavItem {
	return []NavItem{
		heading("JavaScript"),
		link("https://docs.rs/perspective-viewer/latest/perspective_viewer/", "`@finos/perspective-viewer` JavaScript UI API"),
		link("https://docs.rs/perspective-js/latest/perspective_js/", "`@finos/perspective` JavaScript Client/Server API"),
		link("https://docs.rs/perspective-js/latest/perspective_js/struct.Table.html", "`Table` API"),
		link("https://docs.rs/perspective-js/latest/perspective_js/struct.View.html", "`View` API"),
		link("https://docs.rs/perspective-js/latest/perspective_js/#installation", "Installation Guide"),
		heading("Python"),
		link("https://docs.rs/perspective-python/latest/perspective_python/", "`perspective-python` Python Client/Server API"),
		link("https://docs.rs/perspective-python/3.1.0/perspective_python/#perspectivewidget", "`PerspectiveWidget` Jupyter Plugin"),
		link("https://docs.rs/perspective-python/latest/perspective_python/struct.Table.html", "`Table` API"),
		link("https://docs.rs/perspective-python/latest/perspective_python/struct.View.html", "`View` API"),
		heading("Rust"),
		link("https://docs.rs/perspective/latest/perspective/", "`perspective`, Rust API"),
		link("https://docs.rs/perspective-client/latest/perspective_client/struct.Table.html", "`Table` API"),
		link("https://docs.rs/perspective-client/latest/perspective_client/struct.View.html", "`View` API"),
		heading("Appendix"),
		link("https://docs.rs/perspective-server/latest/perspective_server/", "Data Binding"),
		link("https://docs.rs/perspective-client/latest/perspective_client/config/expressions/", "Expression Columns"),
	}
}

func heading(s string) NavItem {
	return NavItem{Type: "html", Value: "<span>" + s + "</span>"}
}

func link(href, label string) NavItem {
	return NavItem{Href: href, Label: label}
}
