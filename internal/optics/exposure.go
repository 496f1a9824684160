// internal/optics/exposure.go
package optics

import "fmt"

// Exposure is the result of an exposure time equivalence calculation.
type Exposure struct {
	T2         float64 `json:"t2"`
	T2Label    string  `json:"t2Label"`
	RatioLabel string  `json:"ratioLabel"`
}

// ExposureEquivalence returns the exposure time needed at focal ratio f2 to
// collect the same signal as t1 seconds at focal ratio f1.
func ExposureEquivalence(f1, t1, f2 float64) Exposure {
	undefined := Exposure{T2: 0, T2Label: placeholder(), RatioLabel: placeholder()}
	if !(f1 > 0 && t1 > 0 && f2 > 0) {
		return undefined
	}

	t2 := t1 * (f2 * f2) / (f1 * f1)
	if !finite(t2) {
		return undefined
	}

	res := Exposure{T2: t2, T2Label: format2(t2), RatioLabel: placeholder()}
	if t2 > 60 {
		res.T2Label = fmt.Sprintf("%.2f seconds - %.2f minutes", t2, t2/60)
	}
	if ratio := t2 / t1; t2 > 0 && finite(ratio) {
		res.RatioLabel = fmt.Sprintf("%.2fx", ratio)
	}
	return res
}
