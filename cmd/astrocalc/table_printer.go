// cmd/astrocalc/table_printer.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yackko/astro-tools/internal/config"
)

type resultLine struct {
	label string
	value string
}

// printTable writes headers, a dashed rule and rows as aligned columns.
func printTable(out io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	rules := make([]string, len(headers))
	for i, h := range headers {
		rules[i] = strings.Repeat("-", len([]rune(h)))
	}
	fmt.Fprintln(w, strings.Join(rules, "\t"))
	for _, r := range rows {
		fmt.Fprintln(w, strings.Join(r, "\t"))
	}
	w.Flush()
}

// printResult writes a calculator's inputs and outputs as "Label:  value" lines.
func printResult(out io.Writer, lines []resultLine) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, l := range lines {
		fmt.Fprintf(w, "%s:\t%s\n", l.label, l.value)
	}
	w.Flush()
}

// printJSON writes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		cmd.SilenceUsage = true
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// formatInput renders an input value, or the placeholder for a missing one.
func formatInput(v float64) string {
	if v == 0 {
		return config.Placeholder
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
