// cmd/astrocalc/calculators.go
package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yackko/astro-tools/internal/catalog"
	"github.com/yackko/astro-tools/internal/config"
	"github.com/yackko/astro-tools/internal/optics"
	"github.com/yackko/astro-tools/tui"
)

// calculation is the JSON shape of every calculator command.
type calculation struct {
	Inputs map[string]float64 `json:"inputs"`
	Result any                `json:"result"`
}

// floatFlag reads a float flag. NaN and ±Inf read as 0, i.e. missing input.
func floatFlag(cmd *cobra.Command, name string) float64 {
	v, _ := cmd.Flags().GetFloat64(name)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// floatInput returns the value of a float flag, or fallback when the user
// did not set the flag and an autofill source supplied a value.
func floatInput(cmd *cobra.Command, name string, fallback float64, autofilled bool) float64 {
	if autofilled && !cmd.Flags().Changed(name) {
		return fallback
	}
	return floatFlag(cmd, name)
}

// lookup runs a catalog lookup for a non-empty id flag. ok is false when
// the flag is empty.
func lookup[T any](cmd *cobra.Command, flag string, find func(string) (T, error)) (entry T, ok bool, err error) {
	id, _ := cmd.Flags().GetString(flag)
	if id == "" {
		return entry, false, nil
	}
	entry, err = find(id)
	if err != nil {
		cmd.SilenceUsage = true
		if errors.Is(err, catalog.ErrNotFound) {
			return entry, false, fmt.Errorf("invalid --%s: %w (see 'astrocalc catalog')", flag, err)
		}
		return entry, false, err
	}
	return entry, true, nil
}

// parseBarlow accepts a catalog id ("2x") or a bare factor ("2", "2.5x").
func parseBarlow(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if b, err := catalog.FindBarlow(s); err == nil {
		return b.Factor, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.ToLower(s), "x"), 64)
	if err != nil || !(v >= 0) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid --barlow %q: use a factor such as 2 or 2x", s)
	}
	return v, nil
}

func prefill(form *tui.FormModel, values map[string]float64) {
	for k, v := range values {
		if v != 0 {
			form.SetValue(k, v)
		}
	}
}

func unsupportedTUI(cmd *cobra.Command) error {
	cmd.SilenceUsage = true
	return fmt.Errorf("--output %s is not available for '%s'; use table or json", config.OutputTUI, cmd.Name())
}

func newExposureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exposure",
		Short: "Exposure time equivalence between two focal ratios",
		Long: `Computes the exposure time at focal ratio 2 that collects the same signal
as exposure time 1 at focal ratio 1 (t2 = t1 * f2² / f1²).

Examples:
  astrocalc exposure --f1 10 --t1 60 --f2 5
  astrocalc exposure --telescope1 "Celestron.NexStar Evolution 6" --time "2 minutes" --f2 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			tel1, has1, err := lookup(cmd, "telescope1", catalog.FindTelescope)
			if err != nil {
				return err
			}
			tel2, has2, err := lookup(cmd, "telescope2", catalog.FindTelescope)
			if err != nil {
				return err
			}
			dur, hasDur, err := lookup(cmd, "time", catalog.FindDuration)
			if err != nil {
				return err
			}

			in := map[string]float64{
				"f1": floatInput(cmd, "f1", tel1.FocalRatio(), has1),
				"t1": floatInput(cmd, "t1", float64(dur.Seconds), hasDur),
				"f2": floatInput(cmd, "f2", tel2.FocalRatio(), has2),
			}
			verbosef(cmd, "exposure inputs: f1=%g t1=%g f2=%g", in["f1"], in["t1"], in["f2"])

			if format == config.OutputTUI {
				form := tui.NewExposureForm()
				prefill(&form, in)
				_, err := runProgram(form)
				return err
			}

			res := optics.ExposureEquivalence(in["f1"], in["t1"], in["f2"])
			if format == config.OutputJSON {
				return printJSON(cmd, calculation{Inputs: in, Result: res})
			}
			printResult(cmd.OutOrStdout(), []resultLine{
				{"Focal Ratio 1", formatInput(in["f1"])},
				{"Exposure Time 1", formatInput(in["t1"])},
				{"Focal Ratio 2", formatInput(in["f2"])},
				{"Exposure Time 2", res.T2Label},
				{"Ratio", res.RatioLabel},
			})
			return nil
		},
	}
	cmd.Flags().Float64("f1", 0, "Focal ratio 1")
	cmd.Flags().Float64("t1", 0, "Exposure time 1 in seconds")
	cmd.Flags().Float64("f2", 0, "Focal ratio 2")
	cmd.Flags().String("telescope1", "", "Catalog telescope id supplying focal ratio 1")
	cmd.Flags().String("telescope2", "", "Catalog telescope id supplying focal ratio 2")
	cmd.Flags().String("time", "", "Catalog duration id supplying exposure time 1 (e.g. \"2 minutes\")")
	return cmd
}

func newMagnificationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "magnification",
		Short: "Magnification, maximum useful magnification and true field of view",
		Long: `Computes the magnification of a telescope, eyepiece and optional barlow
combination, the maximum useful magnification of the aperture and the true
field of view.

Examples:
  astrocalc magnification --aperture 150 --focal-length 1500 --eyepiece-focal-length 25 --eyepiece-fov 52
  astrocalc magnification --telescope "Celestron.NexStar Evolution 6" --eyepiece "Celestron.X-Cell LX.9mm" --barlow 2x`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			tel, hasTel, err := lookup(cmd, "telescope", catalog.FindTelescope)
			if err != nil {
				return err
			}
			ep, hasEP, err := lookup(cmd, "eyepiece", catalog.FindEyepiece)
			if err != nil {
				return err
			}
			barlowFlag, _ := cmd.Flags().GetString("barlow")
			barlow, err := parseBarlow(barlowFlag)
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}

			in := map[string]float64{
				"aperture":              floatInput(cmd, "aperture", tel.Aperture, hasTel),
				"focal-length":          floatInput(cmd, "focal-length", tel.FocalLength, hasTel),
				"eyepiece-focal-length": floatInput(cmd, "eyepiece-focal-length", float64(ep.FocalLength), hasEP),
				"eyepiece-fov":          floatInput(cmd, "eyepiece-fov", ep.FieldOfView, hasEP),
				"barlow":                barlow,
			}
			verbosef(cmd, "magnification inputs: aperture=%g focal-length=%g eyepiece-focal-length=%g eyepiece-fov=%g barlow=%g",
				in["aperture"], in["focal-length"], in["eyepiece-focal-length"], in["eyepiece-fov"], in["barlow"])

			if format == config.OutputTUI {
				form := tui.NewMagnificationForm()
				prefill(&form, in)
				_, err := runProgram(form)
				return err
			}

			res := optics.MagnificationAndFOV(in["aperture"], in["focal-length"], in["eyepiece-focal-length"], in["eyepiece-fov"], in["barlow"])
			if format == config.OutputJSON {
				return printJSON(cmd, calculation{Inputs: in, Result: res})
			}
			printResult(cmd.OutOrStdout(), []resultLine{
				{"Focal Length", formatInput(in["focal-length"])},
				{"Aperture", formatInput(in["aperture"])},
				{"Eyepiece Focal Length", formatInput(in["eyepiece-focal-length"])},
				{"Eyepiece Field of View", formatInput(in["eyepiece-fov"])},
				{"Barlow", formatInput(in["barlow"])},
				{"Maximum Magnification", res.MaxMagLabel},
				{"Magnification", res.MagLabel},
				{"Field of View", res.FOVLabel},
			})
			return nil
		},
	}
	cmd.Flags().Float64("aperture", 0, "Telescope aperture in mm")
	cmd.Flags().Float64("focal-length", 0, "Telescope focal length in mm")
	cmd.Flags().Float64("eyepiece-focal-length", 0, "Eyepiece focal length in mm")
	cmd.Flags().Float64("eyepiece-fov", 0, "Eyepiece apparent field of view in degrees")
	cmd.Flags().String("barlow", "", "Barlow factor or catalog id (e.g. 2 or 2x); empty for none")
	cmd.Flags().String("telescope", "", "Catalog telescope id supplying aperture and focal length")
	cmd.Flags().String("eyepiece", "", "Catalog eyepiece id supplying focal length and field of view")
	return cmd
}

// imageScale resolves the inputs shared by hfr and sampling.
func imageScale(cmd *cobra.Command) (map[string]float64, error) {
	tel, hasTel, err := lookup(cmd, "telescope", catalog.FindTelescope)
	if err != nil {
		return nil, err
	}
	cam, hasCam, err := lookup(cmd, "camera", catalog.FindCamera)
	if err != nil {
		return nil, err
	}
	return map[string]float64{
		"focal-length": floatInput(cmd, "focal-length", tel.FocalLength, hasTel),
		"aperture":     floatInput(cmd, "aperture", tel.Aperture, hasTel),
		"pixel-size":   floatInput(cmd, "pixel-size", cam.PixelSize, hasCam),
	}, nil
}

func addImageScaleFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("focal-length", 0, "Telescope focal length in mm")
	cmd.Flags().Float64("aperture", 0, "Telescope aperture in mm")
	cmd.Flags().Float64("pixel-size", 0, "Camera pixel size in µm")
	cmd.Flags().String("telescope", "", "Catalog telescope id supplying focal length and aperture")
	cmd.Flags().String("camera", "", "Catalog camera id supplying pixel size")
}

// hfrReport is the JSON result of the hfr command.
type hfrReport struct {
	optics.HFR
	Sampling []optics.SamplingResult `json:"sampling"`
}

func newHFRCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hfr",
		Short: "Convert a half-flux radius to arc-seconds and rate sampling for each seeing tier",
		Long: `Converts an HFR measured in pixels to a star diameter in arc-seconds, reports
the image scale and the aperture's theoretical resolution, and rates the
sampling of the image scale for every seeing tier.

Examples:
  astrocalc hfr --focal-length 1500 --aperture 150 --pixel-size 3.8 --hfr 2.5
  astrocalc hfr --telescope "Celestron.NexStar Evolution 6 + 0.63 Reducer" --camera "ZWO.ASI533MC Pro" --hfr 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			in, err := imageScale(cmd)
			if err != nil {
				return err
			}
			in["hfr"] = floatFlag(cmd, "hfr")
			verbosef(cmd, "hfr inputs: focal-length=%g aperture=%g pixel-size=%g hfr=%g",
				in["focal-length"], in["aperture"], in["pixel-size"], in["hfr"])

			if format == config.OutputTUI {
				form := tui.NewHFRForm()
				prefill(&form, in)
				_, err := runProgram(form)
				return err
			}

			res := optics.HFRMetrics(in["focal-length"], in["aperture"], in["pixel-size"], in["hfr"])
			sampling := optics.ClassifyAll(res.ArcSecPerPixel)
			if format == config.OutputJSON {
				return printJSON(cmd, calculation{Inputs: in, Result: hfrReport{HFR: res, Sampling: sampling}})
			}
			lines := []resultLine{
				{"Focal Length", formatInput(in["focal-length"])},
				{"Aperture", formatInput(in["aperture"])},
				{"Pixel Size", formatInput(in["pixel-size"])},
				{"HFR", formatInput(in["hfr"])},
				{"Max Resolution in Arc Seconds", res.MaxResolutionLabel},
				{"Arc Seconds per Pixel", res.ArcSecPerPixelLabel},
				{"Star Diameter in Arc Seconds", res.StarDiameterLabel},
			}
			for _, s := range sampling {
				lines = append(lines, resultLine{s.Seeing.Title(), samplingText(s)})
			}
			printResult(cmd.OutOrStdout(), lines)
			return nil
		},
	}
	addImageScaleFlags(cmd)
	cmd.Flags().Float64("hfr", 0, "Half-flux radius in pixels")
	return cmd
}

func samplingText(s optics.SamplingResult) string {
	if s.Sampling == optics.SamplingNone {
		return s.Label
	}
	return fmt.Sprintf("%s (%s)", s.Label, s.RangeDescription)
}

func newSamplingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sampling [seeing]",
		Short: "Rate an image scale against a seeing tier (or all tiers)",
		Long: `Classifies an image scale in arc-seconds per pixel as over-sampled, good or
under-sampled for a seeing tier: exceptional, good, ok, poor or very-poor.
Without a tier every tier is rated. The image scale is taken from --resolution
or computed from focal length and pixel size.

Examples:
  astrocalc sampling ok --resolution 1.2
  astrocalc sampling --telescope "Lunt.60mm Universal Telescope" --camera "ZWO.ASI120MM Mini"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			if format == config.OutputTUI {
				return unsupportedTUI(cmd)
			}

			tiers := optics.SeeingTiers
			if len(args) == 1 {
				tier, err := optics.ParseSeeing(args[0])
				if err != nil {
					cmd.SilenceUsage = true
					return err
				}
				tiers = []optics.Seeing{tier}
			}

			resolution := floatFlag(cmd, "resolution")
			if !cmd.Flags().Changed("resolution") {
				in, err := imageScale(cmd)
				if err != nil {
					return err
				}
				resolution = optics.HFRMetrics(in["focal-length"], in["aperture"], in["pixel-size"], 0).ArcSecPerPixel
			}
			verbosef(cmd, "sampling inputs: resolution=%g", resolution)

			results := make([]optics.SamplingResult, 0, len(tiers))
			for _, tier := range tiers {
				results = append(results, optics.ClassifySampling(tier, resolution))
			}

			if format == config.OutputJSON {
				return printJSON(cmd, calculation{
					Inputs: map[string]float64{"resolution": resolution},
					Result: results,
				})
			}
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{r.Tier, r.RangeDescription, r.Label})
			}
			printTable(cmd.OutOrStdout(), []string{"SEEING", "RANGE (\"/px)", "SAMPLING"}, rows)
			return nil
		},
	}
	addImageScaleFlags(cmd)
	cmd.Flags().Float64("resolution", 0, "Image scale in arc-seconds per pixel")
	return cmd
}

// durationLabel is the JSON shape of the duration command.
type durationLabel struct {
	Seconds int    `json:"seconds"`
	Label   string `json:"label"`
}

func newDurationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duration [seconds...]",
		Short: "Format durations in seconds as minutes and seconds",
		Long: `Formats each argument, a whole number of seconds, as a human readable label.

Examples:
  astrocalc duration 90 300`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			if format == config.OutputTUI {
				return unsupportedTUI(cmd)
			}

			labels := make([]durationLabel, 0, len(args))
			for _, a := range args {
				s, err := strconv.Atoi(strings.TrimSpace(a))
				if err != nil || s < 0 {
					cmd.SilenceUsage = true
					return fmt.Errorf("invalid duration '%s': expected a non-negative whole number of seconds", a)
				}
				labels = append(labels, durationLabel{Seconds: s, Label: optics.FormatDuration(s)})
			}

			if format == config.OutputJSON {
				return printJSON(cmd, labels)
			}
			rows := make([][]string, 0, len(labels))
			for _, l := range labels {
				rows = append(rows, []string{strconv.Itoa(l.Seconds), l.Label})
			}
			printTable(cmd.OutOrStdout(), []string{"SECONDS", "LABEL"}, rows)
			return nil
		},
	}
}
