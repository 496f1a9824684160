// types/eyepiece.go
package types

import "fmt"

// Eyepiece represents an eyepiece of a given focal length and apparent
// field of view.
type Eyepiece struct {
	Brand       string  `json:"brand"`
	Name        string  `json:"name"`
	FocalLength int     `json:"focalLength"` // mm
	FieldOfView float64 `json:"fieldOfView"` // degrees, apparent
}

// ID identifies the eyepiece. A product line usually comes in several focal
// lengths, so the focal length is part of the identity.
func (e Eyepiece) ID() string {
	return fmt.Sprintf("%s.%s.%dmm", e.Brand, e.Name, e.FocalLength)
}
