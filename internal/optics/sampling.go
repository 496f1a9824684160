// internal/optics/sampling.go
package optics

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownSeeing is returned by ParseSeeing for names outside the tier list.
var ErrUnknownSeeing = errors.New("unknown seeing tier")

// Seeing is an atmospheric seeing tier.
type Seeing int

const (
	// SeeingExceptional samples well at 0.00 - 0.50"/px.
	SeeingExceptional Seeing = iota
	// SeeingGood samples well at 0.33 - 1.00"/px.
	SeeingGood
	// SeeingOK samples well at 0.67 - 2.00"/px.
	SeeingOK
	// SeeingPoor samples well at 1.33 - 2.50"/px.
	SeeingPoor
	// SeeingVeryPoor samples well from 1.67"/px up.
	SeeingVeryPoor
)

// SeeingTiers lists every tier from best to worst.
var SeeingTiers = []Seeing{SeeingExceptional, SeeingGood, SeeingOK, SeeingPoor, SeeingVeryPoor}

var seeingNames = map[Seeing]string{
	SeeingExceptional: "exceptional",
	SeeingGood:        "good",
	SeeingOK:          "ok",
	SeeingPoor:        "poor",
	SeeingVeryPoor:    "veryPoor",
}

var seeingTitles = map[Seeing]string{
	SeeingExceptional: "Exceptional Seeing",
	SeeingGood:        "Good Seeing",
	SeeingOK:          "OK Seeing",
	SeeingPoor:        "Poor Seeing",
	SeeingVeryPoor:    "Very Poor Seeing",
}

// String returns the tier name accepted by ParseSeeing.
func (s Seeing) String() string {
	if n, ok := seeingNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Seeing(%d)", int(s))
}

// Title is the display name of the tier, e.g. "OK Seeing".
func (s Seeing) Title() string {
	return seeingTitles[s]
}

// Range returns the arc-seconds per pixel interval that samples the tier
// well. The upper bound of SeeingVeryPoor is +Inf.
func (s Seeing) Range() (lo, hi float64) {
	switch s {
	case SeeingExceptional:
		return 0.00, 0.50
	case SeeingGood:
		return 0.33, 1.00
	case SeeingOK:
		return 0.67, 2.00
	case SeeingPoor:
		return 1.33, 2.50
	default:
		return 1.67, math.Inf(1)
	}
}

// RangeDescription renders Range as "min - max", or "min - ..." when the
// tier is open-ended.
func (s Seeing) RangeDescription() string {
	lo, hi := s.Range()
	if math.IsInf(hi, 1) {
		return fmt.Sprintf("%.2f - ...", lo)
	}
	return fmt.Sprintf("%.2f - %.2f", lo, hi)
}

// ParseSeeing maps a tier name to a Seeing. Matching ignores case and the
// separators in "very-poor" / "very_poor" / "very poor".
func ParseSeeing(name string) (Seeing, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	for _, s := range SeeingTiers {
		if strings.ToLower(s.String()) == key {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSeeing, name)
}

// Sampling is the outcome of comparing an image scale to a seeing tier.
type Sampling int

const (
	// SamplingNone means the image scale is unknown.
	SamplingNone Sampling = iota
	// SamplingOver means pixels are finer than the seeing resolves.
	SamplingOver
	// SamplingGood means the image scale fits the seeing tier.
	SamplingGood
	// SamplingUnder means pixels are too coarse for the seeing.
	SamplingUnder
)

// String returns "over", "good", "under" or "none".
func (s Sampling) String() string {
	switch s {
	case SamplingOver:
		return "over"
	case SamplingGood:
		return "good"
	case SamplingUnder:
		return "under"
	default:
		return "none"
	}
}

// Label is the display text, config.Placeholder for SamplingNone.
func (s Sampling) Label() string {
	switch s {
	case SamplingOver:
		return "Over-Sampled"
	case SamplingGood:
		return "Good"
	case SamplingUnder:
		return "Under-Sampled"
	default:
		return placeholder()
	}
}

// MarshalText encodes the sampling as its short name.
func (s Sampling) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// SamplingResult is the classification of one resolution for one tier.
type SamplingResult struct {
	Seeing           Seeing   `json:"-"`
	Tier             string   `json:"tier"`
	Sampling         Sampling `json:"sampling"`
	Label            string   `json:"label"`
	RangeDescription string   `json:"range"`
}

// ClassifySampling compares resolution (arc-seconds per pixel) with the
// tier's range. A resolution of zero or less yields SamplingNone.
func ClassifySampling(tier Seeing, resolution float64) SamplingResult {
	res := SamplingResult{
		Seeing:           tier,
		Tier:             tier.String(),
		Sampling:         SamplingNone,
		RangeDescription: tier.RangeDescription(),
	}

	if resolution > 0 {
		lo, hi := tier.Range()
		switch {
		case resolution < lo:
			res.Sampling = SamplingOver
		case resolution > hi:
			res.Sampling = SamplingUnder
		default:
			res.Sampling = SamplingGood
		}
	}

	res.Label = res.Sampling.Label()
	return res
}

// ClassifyAll classifies resolution against every tier in SeeingTiers order.
func ClassifyAll(resolution float64) []SamplingResult {
	out := make([]SamplingResult, 0, len(SeeingTiers))
	for _, s := range SeeingTiers {
		out = append(out, ClassifySampling(s, resolution))
	}
	return out
}
