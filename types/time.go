// types/time.go
package types

import "github.com/yackko/astro-tools/internal/optics"

// Time is a common exposure duration.
type Time struct {
	Seconds int `json:"seconds"`
}

// Label is the human readable duration, e.g. "1 minute 30 seconds".
func (t Time) Label() string {
	return optics.FormatDuration(t.Seconds)
}

// ID identifies the duration by its label.
func (t Time) ID() string {
	return t.Label()
}
