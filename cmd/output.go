package cmd

import (
	"encoding/json"
	"fmt"
	"os"
)

// writeJSON writes v to path with two-space indentation. HTML escaping
// is disabled so URLs and non-ASCII text stay literal in the file.
func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}

	logger.Info().Str("file", path).Msg("Results exported")
	return nil
}
