package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .tailorcss.yaml config file",
	Long:  `Create a .tailorcss.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = ".tailorcss.yaml"
		}

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return nil
	},
}

const defaultConfig = `# tailorcss configuration
# Docs: https://github.com/yacobolo/tailorcss

verbose: false

# Generation settings
generate:
  paths:
    - web/templates
  output: web/static/css/tailored.css
  minify: false
  important: false
  tab-spacing: 4           # -1 disables indentation
  newline: "\n"
  print: none              # formatted | minified | json | none
  extensions:
    - .html
  gitignore: false

# Stylesheet check settings
check:
  stylesheet: web/static/css/tailored.css
  strict: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
