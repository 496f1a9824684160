// internal/optics/hfr.go
package optics

const (
	// ArcSecondsPerRadianMilli converts µm/mm into arc-seconds
	// (206264.8 arc-seconds per radian, scaled by 1e-3).
	ArcSecondsPerRadianMilli = 206.2648
	// DawesLimit is the Dawes resolution constant in arc-seconds·mm.
	DawesLimit = 116.0
)

// HFR holds the image scale and resolution figures derived from a star's
// half-flux radius.
type HFR struct {
	ArcSecPerPixel      float64 `json:"arcSecPerPixel"`
	StarDiameter        float64 `json:"starDiameter"`
	MaxResolution       float64 `json:"maxResolution"`
	ArcSecPerPixelLabel string  `json:"arcSecPerPixelLabel"`
	StarDiameterLabel   string  `json:"starDiameterLabel"`
	MaxResolutionLabel  string  `json:"maxResolutionLabel"`
}

// HFRMetrics converts an HFR measured in pixels into arc-seconds for the
// given focal length (mm) and pixel size (µm), and reports the aperture's
// theoretical resolution.
func HFRMetrics(focalLength, aperture, pixelSize, hfr float64) HFR {
	res := HFR{
		ArcSecPerPixelLabel: placeholder(),
		StarDiameterLabel:   placeholder(),
		MaxResolutionLabel:  placeholder(),
	}

	if focalLength > 0 && pixelSize > 0 && hfr >= 0 {
		scale := (ArcSecondsPerRadianMilli * pixelSize) / focalLength
		diameter := scale * hfr * 2
		if finite(scale) && finite(diameter) {
			res.ArcSecPerPixel = scale
			res.StarDiameter = diameter
			res.ArcSecPerPixelLabel = format2(scale)
			res.StarDiameterLabel = format2(diameter)
		}
	}

	if aperture > 0 {
		if r := DawesLimit / aperture; finite(r) {
			res.MaxResolution = r
			res.MaxResolutionLabel = format2(r)
		}
	}

	return res
}
