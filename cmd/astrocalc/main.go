// cmd/astrocalc/main.go
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yackko/astro-tools/internal/catalog"
	"github.com/yackko/astro-tools/internal/config"
	"github.com/yackko/astro-tools/tui"
)

// glossary backs the explain command.
var glossary = map[string]string{
	"FOCAL-RATIO":   "Focal Ratio (f-number):\n  Definition: focal length divided by aperture, dimensionless (e.g. 1500mm / 150mm = f/10).\n  Imaging: the exposure needed for the same signal on an extended object scales with the square of the focal ratio.\n  Example: 60 seconds at f/10 collects what 15 seconds collects at f/5.",
	"HFR":           "Half-Flux Radius (HFR):\n  Definition: the radius, in pixels, of the circle containing half of a star's flux.\n  Uses: focus and seeing quality estimation. Lower is sharper.\n  Conversion: HFR x 2 x image scale gives the star diameter in arc-seconds.",
	"ARC-SECOND":    "Arc-Second:\n  Definition: 1/3600 of a degree, the unit of apparent angular size.\n  Image scale: arc-seconds per pixel = 206.2648 x pixel size (µm) / focal length (mm).\n  Resolution: the Dawes limit of an aperture is 116 / aperture (mm) arc-seconds.",
	"SEEING":        "Seeing:\n  Definition: the blurring of star images by atmospheric turbulence.\n  Tiers used here (arc-seconds per pixel that sample them well):\n    exceptional 0.00 - 0.50, good 0.33 - 1.00, ok 0.67 - 2.00, poor 1.33 - 2.50, very poor 1.67 - ...",
	"SAMPLING":      "Sampling:\n  Definition: how the detector's image scale compares to the detail the optics and seeing deliver.\n  Over-sampled: pixels are smaller than needed, signal is spread thin.\n  Under-sampled: pixels are too large, stars look blocky and detail is lost.",
	"BARLOW":        "Barlow Lens:\n  Definition: a negative lens placed before the eyepiece or camera that multiplies the effective focal length by a fixed factor (2x, 3x...).\n  Effect: magnification is multiplied by the factor; the focal ratio grows by the same factor.",
	"MAGNIFICATION": "Magnification:\n  Definition: telescope focal length divided by eyepiece focal length.\n  Useful maximum: about 2.5x per millimetre of aperture, capped at 350x by the atmosphere.\n  True field of view: eyepiece apparent field divided by the magnification.",
}

func requireTerminal() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive output requires a terminal; use --output %s or %s", config.OutputTable, config.OutputJSON)
	}
	return nil
}

func runProgram(model tea.Model) (tea.Model, error) {
	if err := requireTerminal(); err != nil {
		return nil, err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("error running TUI: %w", err)
	}
	return final, nil
}

// verbosef prints diagnostics to stderr when --verbose is set.
func verbosef(cmd *cobra.Command, format string, args ...any) {
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
	}
}

func outputFormat(cmd *cobra.Command) (string, error) {
	f, _ := cmd.Flags().GetString("output")
	f = strings.ToLower(f)
	if !config.IsSupportedOutput(f) {
		cmd.SilenceUsage = true
		return "", fmt.Errorf("invalid --output %q. Use one of: %s", f, strings.Join(config.SupportedOutputs, ", "))
	}
	return f, nil
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "astrocalc",
		Short: "Astrocalc is a set of calculators for visual observing and astrophotography.",
		Long: `Astrocalc computes exposure time equivalence, magnification and field of view,
HFR to arc-seconds conversion and sampling quality, using a built-in catalog of
telescopes, eyepieces, barlow lenses, cameras and exposure durations.

Results are printed as a table by default. Set ` + config.OutputEnvVar + ` or pass --output
to choose json, table or tui.`,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringP("output", "O", config.DefaultOutputFormat(), "Output format: json, table, or tui")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print resolved inputs to stderr")

	rootCmd.AddCommand(
		newExposureCmd(),
		newMagnificationCmd(),
		newHFRCmd(),
		newSamplingCmd(),
		newDurationCmd(),
		newCatalogCmd(),
		newExplainCmd(),
		newTUICmd(),
	)
	return rootCmd
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [kind]",
		Short: "List a reference catalog (telescopes, eyepieces, durations, barlows, cameras)",
		Long: `Lists one of the built-in reference catalogs. The ID column is what the
--telescope, --eyepiece, --time, --barlow and --camera flags accept.
With --output tui the catalog can be browsed and the selected id is printed.

Examples:
  astrocalc catalog telescopes
  astrocalc catalog eyepieces --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := catalog.ParseKind(args[0])
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			switch format {
			case config.OutputTUI:
				final, err := runProgram(tui.NewListModel(kind))
				if err != nil {
					return err
				}
				if lm, ok := final.(tui.ListModel); ok && lm.Selected != "" {
					fmt.Fprintln(cmd.OutOrStdout(), lm.Selected)
				}
				return nil
			case config.OutputJSON:
				return printJSON(cmd, catalog.Entries(kind))
			default:
				headers, rows := catalog.Tabulate(kind)
				printTable(cmd.OutOrStdout(), headers, rows)
				return nil
			}
		},
	}
}

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain [term]",
		Short: "Explain an optical or astronomical term used by the calculators",
		Long: `Provides a short explanation of the terms behind the calculators.
Examples:
  astrocalc explain hfr
  astrocalc explain focal-ratio`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(args[0]), "_", "-"))
			if explanation, found := glossary[name]; found {
				fmt.Fprintln(cmd.OutOrStdout(), explanation)
				return nil
			}
			errOut := cmd.ErrOrStderr()
			fmt.Fprintf(errOut, "Error: Unknown term: %s\n", args[0])
			fmt.Fprintln(errOut, "Supported terms are:")
			var supported []string
			for k := range glossary {
				supported = append(supported, strings.ToLower(k))
			}
			sort.Strings(supported)
			for _, t := range supported {
				fmt.Fprintf(errOut, "  - %s\n", t)
			}
			cmd.SilenceUsage = true
			return fmt.Errorf("explanation not found for term '%s'", args[0])
		},
	}
}

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [screen]",
		Short: "Open an interactive calculator (exposure, magnification, hfr)",
		Long: `Opens an interactive calculator form that recomputes on every keystroke.
Use tab to move between fields and ctrl+n on a field with a catalog hint to
fill it from the catalog.

Examples:
  astrocalc tui hfr`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := tui.ParseScreen(args[0])
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}
			form, err := tui.NewForm(screen)
			if err != nil {
				return err
			}
			_, err = runProgram(form)
			return err
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
