// internal/catalog/tabulate.go
package catalog

import (
	"fmt"
	"strconv"
)

// Entries returns a copy of the catalog for kind, typed as its element
// slice, for JSON encoding.
func Entries(kind Kind) any {
	switch kind {
	case KindTelescopes:
		return Telescopes()
	case KindEyepieces:
		return Eyepieces()
	case KindDurations:
		return Durations()
	case KindBarlows:
		return Barlows()
	case KindCameras:
		return Cameras()
	}
	return nil
}

// Tabulate renders a catalog as column headers and string rows. The first
// column is always the entry id accepted by the Find functions.
func Tabulate(kind Kind) (headers []string, rows [][]string) {
	switch kind {
	case KindTelescopes:
		headers = []string{"ID", "APERTURE (mm)", "FOCAL LENGTH (mm)", "FOCAL RATIO"}
		for _, t := range telescopes {
			rows = append(rows, []string{t.ID(), num(t.Aperture), num(t.FocalLength), fmt.Sprintf("f/%.2f", t.FocalRatio())})
		}
	case KindEyepieces:
		headers = []string{"ID", "FOCAL LENGTH (mm)", "FIELD OF VIEW (°)"}
		for _, e := range eyepieces {
			rows = append(rows, []string{e.ID(), strconv.Itoa(e.FocalLength), num(e.FieldOfView)})
		}
	case KindDurations:
		headers = []string{"ID", "SECONDS"}
		for _, d := range durations {
			rows = append(rows, []string{d.ID(), strconv.Itoa(d.Seconds)})
		}
	case KindBarlows:
		headers = []string{"ID", "FACTOR"}
		for _, b := range barlows {
			rows = append(rows, []string{b.ID(), num(b.Factor)})
		}
	case KindCameras:
		headers = []string{"ID", "PIXEL SIZE (µm)"}
		for _, c := range cameras {
			rows = append(rows, []string{c.ID(), num(c.PixelSize)})
		}
	}
	return headers, rows
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
