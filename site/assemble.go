package site

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/perspective-dev/siteconf/catalog"
)

// Options control Assemble.
type Options struct {
	// Root is the site root. When set, the custom stylesheet path is
	// resolved against it.
	Root string
	// Now stamps the copyright year. The zero value means time.Now().
	Now time.Time
	// Settings are optional overrides.
	Settings *Settings
}

// Assemble merges the example catalog into the default descriptor and
// applies any overrides.
func Assemble(examples []catalog.Example, opts Options) *Config {
	cfg := Default()
	if examples == nil {
		examples = []catalog.Example{}
	}
	cfg.CustomFields.Examples = examples
	opts.Settings.apply(cfg)

	if opts.Root != "" {
		css := filepath.Join(opts.Root, filepath.FromSlash(customCSS))
		if abs, err := filepath.Abs(css); err == nil {
			css = abs
		}
		for i := range cfg.Presets {
			cfg.Presets[i].Options.Theme.CustomCSS = css
		}
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	cfg.ThemeConfig.Footer.Copyright = fmt.Sprintf("Copyright © %d The Perspective Authors", now.Year())
	return cfg
}
