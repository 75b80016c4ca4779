package tailorcss

import (
	"errors"
	"fmt"

	"github.com/yacobolo/tailorcss/internal/tailor"
)

// Result holds the minified, formatted and structured forms of the generated CSS
type Result = tailor.Result

// RuleSet is the structured form of one selector's declarations
type RuleSet = tailor.RuleSet

// Declaration is a property/value pair
type Declaration = tailor.Declaration

// Options controls rendering and output
type Options = tailor.Options

// DefaultOptions returns the default rendering options
func DefaultOptions() Options {
	return tailor.DefaultOptions()
}

// Invalid input errors
var (
	ErrPathRequired     = errors.New("path is required")
	ErrEmptyLocation    = errors.New("location must be a non-empty path")
	ErrNoLazyInput      = errors.New("no HTML or path given for lazy generation")
	ErrOutputPathNotCSS = errors.New("full output path is required including css filename, e.g. assets/css/tailored.css")
)

// Generate compiles the shorthand classes found in markup.
// When opts.OutputPath is set the chosen representation is written there,
// even when it is empty, so a stale stylesheet is truncated when the markup
// no longer contains any class attribute.
func Generate(markup string, opts Options) (*Result, error) {
	opts = opts.WithDefaults()

	if opts.OutputPath != "" {
		if err := validateOutputPath(opts.OutputPath); err != nil {
			return nil, err
		}
	}

	result := tailor.CompileMarkup(markup, opts)

	if opts.OutputPath != "" {
		if err := WriteOutput(result, opts); err != nil {
			return nil, fmt.Errorf("write output: %w", err)
		}
	}

	return result, nil
}

// GeneratePaths compiles the shorthand classes found in the HTML files at
// paths. Directories are walked recursively; glob patterns are expanded.
func GeneratePaths(paths []string, opts Options) (*Result, error) {
	return generatePaths(paths, opts, CollectOptions{})
}

// GeneratePathsWith is GeneratePaths with explicit collector options
func GeneratePathsWith(paths []string, opts Options, collect CollectOptions) (*Result, error) {
	return generatePaths(paths, opts, collect)
}

func generatePaths(paths []string, opts Options, collect CollectOptions) (*Result, error) {
	if len(paths) == 0 {
		return nil, ErrPathRequired
	}

	collection, err := NewCollector(collect).Collect(paths)
	if err != nil {
		return nil, err
	}

	return Generate(collection.Markup, opts)
}
