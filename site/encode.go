package site

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding for the descriptor.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// ParseFormat parses a format name, ignoring case. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return "", fmt.Errorf("ParseFormat: unknown format %q", s)
}

// Encode writes cfg to w in the given format.
func Encode(w io.Writer, cfg *Config, format Format) error {
	var err error
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "    ")
		err = enc.Encode(cfg)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(cfg)
		if err == nil {
			err = enc.Close()
		}
	case TOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		err = enc.Encode(cfg)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	return nil
}
