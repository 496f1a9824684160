package optics

import (
	"math"
	"testing"
)

func TestExposureEquivalence_Formula(t *testing.T) {
	cases := []struct{ f1, t1, f2 float64 }{
		{10, 60, 5},
		{5, 60, 10},
		{2, 1, 2},
		{6.3, 180, 2},
		{10, 300, 7},
	}

	for _, c := range cases {
		got := ExposureEquivalence(c.f1, c.t1, c.f2)
		want := c.t1 * math.Pow(c.f2/c.f1, 2)
		if math.Abs(got.T2-want) > 1e-9 {
			t.Errorf("ExposureEquivalence(%v, %v, %v).T2 = %v, want %v", c.f1, c.t1, c.f2, got.T2, want)
		}
	}
}

func TestExposureEquivalence_Labels(t *testing.T) {
	tests := []struct {
		name      string
		f1, t1    float64
		f2        float64
		wantT2    string
		wantRatio string
	}{
		{"shorter", 10, 60, 5, "15.00", "0.25x"},
		{"exactly one minute", 10, 60, 10, "60.00", "1.00x"},
		{"longer than a minute", 5, 60, 10, "240.00 seconds - 4.00 minutes", "4.00x"},
		{"zero f1", 0, 60, 5, "--", "--"},
		{"zero t1", 10, 0, 5, "--", "--"},
		{"zero f2", 10, 60, 0, "--", "--"},
		{"negative t1", 10, -30, 5, "--", "--"},
		{"negative f1", -10, 60, 5, "--", "--"},
		{"negative f2", 10, 60, -5, "--", "--"},
		{"NaN f1", math.NaN(), 60, 5, "--", "--"},
		{"NaN t1", 10, math.NaN(), 5, "--", "--"},
		{"NaN f2", 10, 60, math.NaN(), "--", "--"},
		{"infinite f2", 10, 60, math.Inf(1), "--", "--"},
		{"overflow", 1e-200, 60, 1e200, "--", "--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExposureEquivalence(tt.f1, tt.t1, tt.f2)
			if got.T2Label != tt.wantT2 {
				t.Errorf("T2Label = %q, want %q", got.T2Label, tt.wantT2)
			}
			if got.RatioLabel != tt.wantRatio {
				t.Errorf("RatioLabel = %q, want %q", got.RatioLabel, tt.wantRatio)
			}
		})
	}
}

func TestExposureEquivalence_InvalidIsZero(t *testing.T) {
	got := ExposureEquivalence(0, 60, 5)
	if got.T2 != 0 {
		t.Errorf("T2 = %v, want 0", got.T2)
	}
}

func TestExposureEquivalence_Idempotent(t *testing.T) {
	a := ExposureEquivalence(6.3, 120, 2)
	b := ExposureEquivalence(6.3, 120, 2)
	if a != b {
		t.Errorf("repeated calls differ: %+v vs %+v", a, b)
	}
}

func TestExposureEquivalence_NonFiniteIsZero(t *testing.T) {
	for _, got := range []Exposure{
		ExposureEquivalence(math.NaN(), 60, 5),
		ExposureEquivalence(1e-200, 60, 1e200),
	} {
		if got.T2 != 0 {
			t.Errorf("T2 = %v, want 0", got.T2)
		}
	}
}
