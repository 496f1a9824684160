// internal/optics/duration.go
package optics

import (
	"fmt"
	"strings"
)

// FormatDuration renders seconds as "<m> minute(s) <s> second(s)", leaving
// out zero components. Zero renders as "0 seconds".
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	minutes := seconds / 60
	rem := seconds % 60

	var parts []string
	if minutes > 0 {
		parts = append(parts, plural(minutes, "minute"))
	}
	if rem > 0 || minutes == 0 {
		parts = append(parts, plural(rem, "second"))
	}
	return strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
