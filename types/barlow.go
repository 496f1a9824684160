// types/barlow.go
package types

import "fmt"

// Barlow is a focal length multiplier (barlow lens or telecentric).
type Barlow struct {
	Factor float64 `json:"factor"`
}

// Label renders the factor the way it is printed on the lens, e.g. "2x"
// or "2.5x".
func (b Barlow) Label() string {
	return fmt.Sprintf("%gx", b.Factor)
}

// ID identifies the barlow by its label.
func (b Barlow) ID() string {
	return b.Label()
}
