// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/orcid-report/pkg/types"
)

// ParseFormat validates a --format value. Empty selects text.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return types.FormatText, nil
	case types.FormatText, types.FormatYAML, types.FormatJSON, types.FormatCSL:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, yaml, json or csl)", s)
	}
}

// Write serializes an enriched person to w in the given format.
func Write(w io.Writer, p types.Person, format types.OutputFormat) error {
	switch format {
	case types.FormatText, "":
		_, err := io.WriteString(w, Render(p))
		return err
	case types.FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(p)
	case types.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case types.FormatCSL:
		return FormatCSL(p, w)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
