// types/telescope.go
package types

import "fmt"

// Telescope describes an optical tube, optionally with a reducer or
// corrector already folded into its focal length.
type Telescope struct {
	Brand       string  `json:"brand"`
	Name        string  `json:"name"`
	Aperture    float64 `json:"aperture"`    // mm
	FocalLength float64 `json:"focalLength"` // mm
}

// FocalRatio is FocalLength / Aperture, 0 when the aperture is unknown.
func (t Telescope) FocalRatio() float64 {
	if t.Aperture <= 0 {
		return 0
	}
	return t.FocalLength / t.Aperture
}

// ID identifies the telescope in its catalog.
func (t Telescope) ID() string {
	return fmt.Sprintf("%s.%s", t.Brand, t.Name)
}
