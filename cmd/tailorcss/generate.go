package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/tailorcss"
	"github.com/yacobolo/tailorcss/internal/tailor"
	"go.uber.org/zap"
)

// Print modes for generate
const (
	printFormatted = "formatted"
	printMinified  = "minified"
	printJSON      = "json"
	printNone      = "none"
)

// stdinPath reads markup from standard input when given as a path
const stdinPath = "-"

var generateCmd = &cobra.Command{
	Use:     "generate [paths...]",
	Aliases: []string{"gen"},
	Short:   "Generate CSS from shorthand classes in HTML files",
	Long: `Walk the given files, directories and glob patterns, collect every
class attribute from HTML files and generate CSS for the shorthand classes.
Use "-" to read markup from standard input.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
}

// addGenerateFlags registers the generation flags on cmd
func addGenerateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("output", "o", "", "Write the generated CSS to this .css file")
	f.Bool("minify", false, "Write minified instead of formatted CSS")
	f.Bool("important", false, "Append !important to every value")
	f.Int("tab-spacing", 4, "Indent width of formatted CSS (0 means 4, -1 for none)")
	f.String("newline", "\n", `Line separator of formatted CSS (e.g. "\r\n")`)
	f.String("print", "", "Print to stdout: formatted|minified|json|none (default: formatted without --output)")
	f.StringSlice("ext", []string{".html"}, "File extensions to read")
	f.Bool("gitignore", false, "Skip files matched by .gitignore")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	quiet := getBool("quiet", false)
	log := newLogger(getBool("verbose", false), quiet)
	defer func() { _ = log.Sync() }()

	paths := resolvePaths(args)
	if len(paths) == 0 {
		return fmt.Errorf("generation failed: %w", tailorcss.ErrPathRequired)
	}

	collect := buildCollectOptions()
	collect.Logger = log
	session := tailorcss.NewSession(collect)

	for _, path := range paths {
		if path != stdinPath {
			session.PushPath(path)
			continue
		}
		markup, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		session.PushHTML(string(markup))
	}

	opts := buildOptions()
	result, err := session.Generate(opts)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	log.Debug("Generated CSS",
		zap.Int("rules", len(result.Rules)),
		zap.Int("selectors", len(result.Object)))

	mode := getString("generate.print", "")
	if mode == "" {
		mode = printFormatted
		if opts.OutputPath != "" {
			mode = printNone
		}
	}
	if quiet {
		mode = printNone
	}

	if err := printResult(cmd.OutOrStdout(), result, mode); err != nil {
		return err
	}

	if opts.OutputPath != "" && !quiet {
		reporter := tailor.NewReporter(os.Stderr, getBool("color", false))
		reporter.PrintGenerated(result, opts.OutputPath)
	}

	return nil
}

// printResult writes the chosen representation to w
func printResult(w io.Writer, result *tailorcss.Result, mode string) error {
	var err error
	switch mode {
	case printFormatted:
		_, err = io.WriteString(w, result.Formatted)
	case printMinified:
		_, err = io.WriteString(w, result.Minified)
		if err == nil && result.Minified != "" {
			_, err = io.WriteString(w, "\n")
		}
	case printJSON:
		err = tailorcss.WriteJSON(w, result)
	case printNone:
	default:
		return fmt.Errorf("unknown print mode %q (want formatted|minified|json|none)", mode)
	}
	return err
}
