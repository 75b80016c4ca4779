package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
	"github.com/yacobolo/tailorcss/internal/tailor"
)

var aliasesCmd = &cobra.Command{
	Use:   "aliases",
	Short: "List the supported property aliases and unit suffixes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		useColors := tailor.ShouldUseColors(getBool("color", false))
		w := cmd.OutOrStdout()

		fmt.Fprintln(w, tailor.RenderStyle(tailor.StyleCyan, "Properties", useColors))
		printTable(w, tailor.Aliases())

		fmt.Fprintln(w, "")
		fmt.Fprintln(w, tailor.RenderStyle(tailor.StyleCyan, "Units", useColors))
		units := tailor.Units()
		delete(units, "default")
		for suffix, unit := range units {
			if unit == "" {
				units[suffix] = "(none)"
			}
		}
		printTable(w, units)

		fmt.Fprintln(w, "")
		fmt.Fprintln(w, tailor.RenderStyle(tailor.StyleGray, "Example: mb30em -> .mb30em{margin-bottom:30em;}", useColors))
		return nil
	},
}

func printTable(w io.Writer, table map[string]string) {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(w, "  %-6s %s\n", key, table[key])
	}
}
