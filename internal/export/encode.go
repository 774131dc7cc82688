package export

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/tartampluch/go-numerology/internal/config"
	"gopkg.in/yaml.v3"
)

// Formats lists the machine-readable encodings Encode supports.
var Formats = []string{config.FormatJSON, config.FormatYAML}

// ParseFormat normalizes a --format value. Table output is handled by the
// render package and is accepted here so callers can validate early.
func ParseFormat(s string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(s))
	if f == "" {
		return config.DefaultFormat, nil
	}
	if f == config.FormatTable || slices.Contains(Formats, f) {
		return f, nil
	}
	return "", fmt.Errorf("%s: %q", config.ErrUnknownFormat, s)
}

// Encode writes v as JSON or YAML. v is usually a *Document but any value
// both encoders understand is accepted.
func Encode(w io.Writer, v any, format string) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", config.JSONIndent)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("%s: %w", config.ErrEncode, err)
		}
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(config.YAMLIndent)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("%s: %w", config.ErrEncode, err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("%s: %w", config.ErrEncode, err)
		}
		return nil
	default:
		return fmt.Errorf("%s: %q", config.ErrUnknownFormat, format)
	}
}
