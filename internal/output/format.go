package output

import (
	"encoding/json"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Format is a report output format.
type Format string

const (
	// FormatYAML renders the run report as YAML.
	FormatYAML Format = "yaml"

	// FormatJSON renders the run report as JSON.
	FormatJSON Format = "json"

	// FormatText renders the run report as styled text.
	FormatText Format = "text"
)

// ParseFormat parses a format string. Returns false for unknown formats.
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case FormatYAML, FormatJSON, FormatText:
		return Format(s), true
	default:
		return "", false
	}
}

// Marshal serializes v in the given format. FormatText is not a
// serialization format and falls back to YAML.
func Marshal(v interface{}, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return json.MarshalIndent(v, "", "  ")
	default:
		return yaml.Marshal(v)
	}
}

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
