package tailorcss

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteOutput writes the minified or formatted CSS to opts.OutputPath,
// creating parent directories as needed. The content is written verbatim.
func WriteOutput(result *Result, opts Options) error {
	if result == nil || opts.OutputPath == "" {
		return nil
	}

	if err := validateOutputPath(opts.OutputPath); err != nil {
		return err
	}

	contents := result.Formatted
	if opts.MinifyOutput {
		contents = result.Minified
	}

	if dir := filepath.Dir(opts.OutputPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	// #nosec G306 - generated stylesheet is meant to be world readable
	if err := os.WriteFile(opts.OutputPath, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.OutputPath, err)
	}

	return nil
}

// validateOutputPath requires a path naming a .css file
func validateOutputPath(path string) error {
	if !strings.HasSuffix(path, ".css") {
		return fmt.Errorf("%w: got %q", ErrOutputPathNotCSS, path)
	}
	return nil
}
