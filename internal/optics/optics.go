// Package optics implements the telescope and imaging calculators.
//
// Every function here is a pure function of its arguments. Inputs that
// cannot produce a meaningful value (zero or negative divisors, missing
// fields) never produce an error: the numeric result is 0 and the label is
// config.Placeholder, so a caller can keep re-invoking the functions on
// every input change and simply display whatever comes back.
package optics

import (
	"fmt"
	"math"

	"github.com/yackko/astro-tools/internal/config"
)

// format2 renders v with two decimals, the precision used by every label.
func format2(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func placeholder() string {
	return config.Placeholder
}

// finite reports whether v is neither NaN nor ±Inf. Results that overflow
// are treated like missing input.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
