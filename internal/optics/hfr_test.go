package optics

import (
	"math"
	"testing"
)

func TestHFRMetrics(t *testing.T) {
	got := HFRMetrics(1500, 150, 3.8, 2.5)

	if got.ArcSecPerPixelLabel != "0.52" {
		t.Errorf("ArcSecPerPixelLabel = %q, want 0.52", got.ArcSecPerPixelLabel)
	}
	if got.StarDiameterLabel != "2.61" {
		t.Errorf("StarDiameterLabel = %q, want 2.61", got.StarDiameterLabel)
	}
	if got.MaxResolutionLabel != "0.77" {
		t.Errorf("MaxResolutionLabel = %q, want 0.77", got.MaxResolutionLabel)
	}

	want := 206.2648 * 3.8 / 1500
	if math.Abs(got.ArcSecPerPixel-want) > 1e-12 {
		t.Errorf("ArcSecPerPixel = %v, want %v", got.ArcSecPerPixel, want)
	}
}

func TestHFRMetrics_ZeroHFR(t *testing.T) {
	got := HFRMetrics(1500, 150, 3.8, 0)
	if got.ArcSecPerPixelLabel != "0.52" {
		t.Errorf("ArcSecPerPixelLabel = %q, want 0.52", got.ArcSecPerPixelLabel)
	}
	if got.StarDiameterLabel != "0.00" {
		t.Errorf("StarDiameterLabel = %q, want 0.00", got.StarDiameterLabel)
	}
}

func TestHFRMetrics_Guards(t *testing.T) {
	tests := []struct {
		name                  string
		fl, aperture, px, hfr float64
		wantScale, wantRes    string
	}{
		{"no focal length", 0, 150, 3.8, 2.5, "--", "0.77"},
		{"no pixel size", 1500, 150, 0, 2.5, "--", "0.77"},
		{"negative hfr", 1500, 150, 3.8, -1, "--", "0.77"},
		{"no aperture", 1500, 0, 3.8, 2.5, "0.52", "--"},
		{"NaN pixel size", 1500, 150, math.NaN(), 2.5, "--", "0.77"},
		{"NaN hfr", 1500, 150, 3.8, math.NaN(), "--", "0.77"},
		{"scale overflow", 1e-308, 150, 1e300, 2.5, "--", "0.77"},
		{"diameter overflow", 1500, 150, 3.8, 1e308, "--", "0.77"},
		{"resolution overflow", 1500, 1e-310, 3.8, 2.5, "0.52", "--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HFRMetrics(tt.fl, tt.aperture, tt.px, tt.hfr)
			if got.ArcSecPerPixelLabel != tt.wantScale {
				t.Errorf("ArcSecPerPixelLabel = %q, want %q", got.ArcSecPerPixelLabel, tt.wantScale)
			}
			if tt.wantScale == "--" {
				if got.ArcSecPerPixel != 0 {
					t.Errorf("ArcSecPerPixel = %v, want 0", got.ArcSecPerPixel)
				}
				if got.StarDiameterLabel != "--" {
					t.Errorf("StarDiameterLabel = %q, want --", got.StarDiameterLabel)
				}
			}
			if got.MaxResolutionLabel != tt.wantRes {
				t.Errorf("MaxResolutionLabel = %q, want %q", got.MaxResolutionLabel, tt.wantRes)
			}
		})
	}
}

func TestHFRMetrics_Idempotent(t *testing.T) {
	a := HFRMetrics(1500, 150, 3.8, 2.5)
	b := HFRMetrics(1500, 150, 3.8, 2.5)
	if a != b {
		t.Errorf("repeated calls differ: %+v vs %+v", a, b)
	}
}
