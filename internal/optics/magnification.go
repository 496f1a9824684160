// internal/optics/magnification.go
package optics

import "math"

const (
	// MagnificationCeiling caps the useful magnification regardless of aperture.
	MagnificationCeiling = 350.0
	// MagnificationPerMM is the useful magnification per millimetre of aperture.
	MagnificationPerMM = 2.5
)

// Magnification holds the visual observing figures for a telescope,
// eyepiece and optional barlow combination.
type Magnification struct {
	MaxMagnification float64 `json:"maxMagnification"`
	Magnification    float64 `json:"magnification"`
	FieldOfView      float64 `json:"fieldOfView"`
	MaxMagLabel      string  `json:"maxMagLabel"`
	MagLabel         string  `json:"magLabel"`
	FOVLabel         string  `json:"fovLabel"`
}

// MagnificationAndFOV computes the maximum useful magnification, the actual
// magnification and the true field of view. A barlow of 0 means none.
//
// The true field of view divides by the telescope/eyepiece focal length
// ratio without the barlow applied, unlike Magnification.
func MagnificationAndFOV(aperture, telescopeFocalLength, eyepieceFocalLength, eyepieceFOV, barlow float64) Magnification {
	res := Magnification{
		MaxMagLabel: placeholder(),
		MagLabel:    placeholder(),
		FOVLabel:    placeholder(),
	}

	if aperture > 0 {
		if maxMag := math.Min(MagnificationCeiling, MagnificationPerMM*aperture); finite(maxMag) {
			res.MaxMagnification = maxMag
			res.MaxMagLabel = format2(maxMag)
		}
	}

	if telescopeFocalLength > 0 && eyepieceFocalLength > 0 {
		effective := eyepieceFocalLength
		if barlow > 0 {
			effective = eyepieceFocalLength / barlow
		}
		if mag := telescopeFocalLength / effective; finite(mag) {
			res.Magnification = mag
			res.MagLabel = format2(mag)
		}
	}

	if eyepieceFocalLength > 0 && eyepieceFOV > 0 && telescopeFocalLength > 0 {
		if fov := eyepieceFOV / (telescopeFocalLength / eyepieceFocalLength); finite(fov) {
			res.FieldOfView = fov
			res.FOVLabel = format2(fov) + "°"
		}
	}

	return res
}
