package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/tailorcss"
)

var k = koanf.New(".")

// flagKeys maps command line flags to their config file keys.
// Flags missing from the map are not merged into the config.
var flagKeys = map[string]string{
	"verbose":     "verbose",
	"quiet":       "quiet",
	"color":       "color",
	"output":      "generate.output",
	"minify":      "generate.minify",
	"important":   "generate.important",
	"tab-spacing": "generate.tab-spacing",
	"newline":     "generate.newline",
	"print":       "generate.print",
	"ext":         "generate.extensions",
	"gitignore":   "generate.gitignore",
	"stylesheet":  "check.stylesheet",
	"strict":      "check.strict",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".tailorcss.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Defaults of unchanged flags only
	// fill keys that no other provider set.
	provider := posflag.ProviderWithFlag(cmd.Flags(), ".", k, func(f *pflag.Flag) (string, interface{}) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(cmd.Flags(), f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (TAILORCSS_* prefix)
	if err := k.Load(env.Provider("TAILORCSS_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable name to its config key.
// Known keys are matched with "." and "-" both spelled "_", so
// TAILORCSS_GENERATE_TAB_SPACING -> generate.tab-spacing.
// Other names map every "_" to ".": TAILORCSS_GENERATE_PATHS -> generate.paths.
func envKey(s string) string {
	name := strings.ToLower(strings.TrimPrefix(s, "TAILORCSS_"))
	for _, key := range flagKeys {
		if strings.NewReplacer(".", "_", "-", "_").Replace(key) == name {
			return key
		}
	}
	return strings.ReplaceAll(name, "_", ".")
}

// buildOptions constructs the library's Options from koanf state.
func buildOptions() tailorcss.Options {
	return tailorcss.Options{
		NewLineChar:  unescapeNewline(getString("generate.newline", "\n")),
		TabSpacing:   getInt("generate.tab-spacing", 4),
		OutputPath:   getString("generate.output", ""),
		MinifyOutput: getBool("generate.minify", false),
		SetImportant: getBool("generate.important", false),
	}
}

// buildCollectOptions constructs the collector configuration from koanf state.
func buildCollectOptions() tailorcss.CollectOptions {
	extensions := k.Strings("generate.extensions")
	if len(extensions) == 0 {
		extensions = []string{".html"}
	}

	return tailorcss.CollectOptions{
		Extensions:       extensions,
		RespectGitignore: getBool("generate.gitignore", false),
	}
}

// resolvePaths prefers positional arguments over configured paths.
func resolvePaths(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return k.Strings("generate.paths")
}

// unescapeNewline turns a literal "\r\n" typed on the command line into CRLF.
func unescapeNewline(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	unquoted, err := strconv.Unquote(`"` + s + `"`)
	if err != nil {
		return s
	}
	return unquoted
}

// getString returns the configured value for key, or defaultVal when unset.
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBool returns the configured value for key, or defaultVal when unset.
func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// getInt returns the configured value for key, or defaultVal when unset.
func getInt(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}
