// tui/screens.go
package tui

import (
	"fmt"
	"strings"

	"github.com/yackko/astro-tools/internal/catalog"
	"github.com/yackko/astro-tools/internal/optics"
)

// Screen names a calculator form.
type Screen string

const (
	ScreenExposure      Screen = "exposure"
	ScreenMagnification Screen = "magnification"
	ScreenHFR           Screen = "hfr"
)

// Screens lists the calculator forms in menu order.
var Screens = []Screen{ScreenExposure, ScreenMagnification, ScreenHFR}

// ParseScreen resolves a screen name, case-insensitively.
func ParseScreen(name string) (Screen, error) {
	n := Screen(strings.ToLower(strings.TrimSpace(name)))
	for _, s := range Screens {
		if s == n {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown screen %q (supported: exposure, magnification, hfr)", name)
}

// NewForm builds the form for screen.
func NewForm(screen Screen) (FormModel, error) {
	switch screen {
	case ScreenExposure:
		return NewExposureForm(), nil
	case ScreenMagnification:
		return NewMagnificationForm(), nil
	case ScreenHFR:
		return NewHFRForm(), nil
	}
	return FormModel{}, fmt.Errorf("unknown screen %q", screen)
}

func focalRatioOptions(key string) []option {
	var opts []option
	for _, t := range catalog.Telescopes() {
		opts = append(opts, option{label: t.ID(), values: map[string]float64{key: t.FocalRatio()}})
	}
	return opts
}

func telescopeOptions() []option {
	var opts []option
	for _, t := range catalog.Telescopes() {
		opts = append(opts, option{label: t.ID(), values: map[string]float64{
			"focal-length": t.FocalLength,
			"aperture":     t.Aperture,
		}})
	}
	return opts
}

func durationOptions() []option {
	var opts []option
	for _, d := range catalog.Durations() {
		opts = append(opts, option{label: d.Label(), values: map[string]float64{"t1": float64(d.Seconds)}})
	}
	return opts
}

func eyepieceOptions() []option {
	var opts []option
	for _, e := range catalog.Eyepieces() {
		opts = append(opts, option{label: e.ID(), values: map[string]float64{
			"eyepiece-focal-length": float64(e.FocalLength),
			"eyepiece-fov":          e.FieldOfView,
		}})
	}
	return opts
}

func barlowOptions() []option {
	var opts []option
	for _, b := range catalog.Barlows() {
		opts = append(opts, option{label: b.Label(), values: map[string]float64{"barlow": b.Factor}})
	}
	return opts
}

func cameraOptions() []option {
	var opts []option
	for _, c := range catalog.Cameras() {
		opts = append(opts, option{label: c.ID(), values: map[string]float64{"pixel-size": c.PixelSize}})
	}
	return opts
}

// NewExposureForm is the exposure time equivalence screen.
func NewExposureForm() FormModel {
	fields := []field{
		newField("f1", "Focal Ratio 1").withAutofill("telescope", focalRatioOptions("f1")),
		newField("t1", "Exposure Time 1").withAutofill("time", durationOptions()),
		newField("f2", "Focal Ratio 2").withAutofill("telescope", focalRatioOptions("f2")),
	}
	return newFormModel("Exposure Time Equivalence", fields, func(v map[string]float64) []ResultRow {
		res := optics.ExposureEquivalence(v["f1"], v["t1"], v["f2"])
		return []ResultRow{
			{Label: "Exposure Time 2", Value: res.T2Label, Style: ValueStyle},
			{Label: "Ratio", Value: res.RatioLabel, Style: ValueStyle},
		}
	})
}

// NewMagnificationForm is the magnification and field of view screen.
func NewMagnificationForm() FormModel {
	fields := []field{
		newField("focal-length", "Focal Length").withAutofill("telescope", telescopeOptions()),
		newField("aperture", "Aperture"),
		newField("eyepiece-focal-length", "Eyepiece Focal Length").withAutofill("eyepiece", eyepieceOptions()),
		newField("eyepiece-fov", "Eyepiece Field of View"),
		newField("barlow", "Barlow").withAutofill("barlow", barlowOptions()),
	}
	return newFormModel("Magnification", fields, func(v map[string]float64) []ResultRow {
		res := optics.MagnificationAndFOV(v["aperture"], v["focal-length"], v["eyepiece-focal-length"], v["eyepiece-fov"], v["barlow"])
		return []ResultRow{
			{Label: "Maximum Magnification", Value: res.MaxMagLabel, Style: ValueStyle},
			{Label: "Magnification", Value: res.MagLabel, Style: ValueStyle},
			{Label: "Field of View", Value: res.FOVLabel, Style: ValueStyle},
		}
	})
}

// NewHFRForm is the HFR to arc-seconds screen, including the sampling
// verdict for every seeing tier.
func NewHFRForm() FormModel {
	fields := []field{
		newField("focal-length", "Focal Length").withAutofill("telescope", telescopeOptions()),
		newField("aperture", "Aperture"),
		newField("pixel-size", "Pixel Size").withAutofill("camera", cameraOptions()),
		newField("hfr", "HFR"),
	}
	return newFormModel("HFR to Arc Seconds", fields, func(v map[string]float64) []ResultRow {
		res := optics.HFRMetrics(v["focal-length"], v["aperture"], v["pixel-size"], v["hfr"])
		rows := []ResultRow{
			{Label: "Max Resolution in Arc Seconds", Value: res.MaxResolutionLabel, Style: ValueStyle},
			{Label: "Arc Seconds per Pixel", Value: res.ArcSecPerPixelLabel, Style: ValueStyle},
			{Label: "Star Diameter in Arc Seconds", Value: res.StarDiameterLabel, Style: ValueStyle},
		}
		for _, s := range optics.ClassifyAll(res.ArcSecPerPixel) {
			row := ResultRow{Label: s.Seeing.Title(), Value: s.Label, Style: samplingStyle(s.Sampling)}
			if s.Sampling != optics.SamplingNone {
				row.Value = samplingIcon(s.Sampling) + " " + s.Label
				row.Detail = s.RangeDescription
			}
			rows = append(rows, row)
		}
		return rows
	})
}
