// types/camera.go
package types

import "fmt"

// Camera is an imaging sensor; only the pixel pitch matters to the
// calculators.
type Camera struct {
	Brand     string  `json:"brand"`
	Name      string  `json:"name"`
	PixelSize float64 `json:"pixelSize"` // µm
}

// ID identifies the camera in its catalog.
func (c Camera) ID() string {
	return fmt.Sprintf("%s.%s", c.Brand, c.Name)
}
