package site

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// SettingsFile is the name of the optional settings file at the site root.
const SettingsFile = "siteconf.toml"

// Settings contains overrides read from the siteconf.toml file. Empty
// values leave the defaults alone.
type Settings struct {
	Title         string            `toml:"title"`
	Tagline       string            `toml:"tagline"`
	URL           string            `toml:"url"`
	BaseURL       string            `toml:"baseurl"`
	Favicon       string            `toml:"favicon"`
	Blocks        string            `toml:"blocks"`
	ColorMode     string            `toml:"colormode"`
	Expires       Duration          `toml:"expires"`
	StaticExpires Duration          `toml:"staticexpires"`
	Headers       map[string]string `toml:"headers"`
}

// LoadSettings returns settings from the siteconf.toml file in fsys.
// It is not an error if the file does not exist; nil is returned.
func LoadSettings(fsys fs.FS) (*Settings, error) {
	var s Settings
	b, err := fs.ReadFile(fsys, SettingsFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("Cannot read settings file: %w", err)
	}
	err = toml.Unmarshal(b, &s)
	if err != nil {
		return nil, fmt.Errorf("Cannot parse settings file: %w", err)
	}
	return &s, nil
}

// BlocksDir returns the example root, falling back to DefaultBlocks.
// It is safe to call on a nil Settings.
func (s *Settings) BlocksDir() string {
	if s == nil || s.Blocks == "" {
		return DefaultBlocks
	}
	return s.Blocks
}

// apply copies the non-empty overrides onto cfg.
func (s *Settings) apply(cfg *Config) {
	if s == nil {
		return
	}
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.Title, s.Title)
	set(&cfg.Tagline, s.Tagline)
	set(&cfg.URL, s.URL)
	set(&cfg.BaseURL, s.BaseURL)
	set(&cfg.Favicon, s.Favicon)
	set(&cfg.ThemeConfig.ColorMode.DefaultMode, s.ColorMode)
}

// Duration is a time.Duration written as text, like "10m", in settings.
type Duration time.Duration

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d Duration) MarshalText() (text []byte, err error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	p, err := time.ParseDuration(string(text))
	*d = Duration(p)
	return err
}
