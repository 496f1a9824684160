// internal/catalog/catalog.go
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/yackko/astro-tools/types"
)

// ErrNotFound is wrapped by every Find function when no entry matches.
var ErrNotFound = errors.New("catalog entry not found")

// Kind names one of the reference catalogs.
type Kind string

const (
	KindTelescopes Kind = "telescopes"
	KindEyepieces  Kind = "eyepieces"
	KindDurations  Kind = "durations"
	KindBarlows    Kind = "barlows"
	KindCameras    Kind = "cameras"
)

// Kinds lists every catalog in display order.
var Kinds = []Kind{KindTelescopes, KindEyepieces, KindDurations, KindBarlows, KindCameras}

// ParseKind accepts a catalog name in singular or plural form.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, k := range Kinds {
		if n == string(k) || n+"s" == string(k) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown catalog %q (supported: telescopes, eyepieces, durations, barlows, cameras)", name)
}

var telescopes = []types.Telescope{
	{Brand: "Celestron", Name: "NexStar Evolution 6", Aperture: 150, FocalLength: 1500},
	{Brand: "Celestron", Name: "NexStar Evolution 6 + 0.63 Reducer", Aperture: 150, FocalLength: 1500 * 0.63},
	{Brand: "Celestron", Name: "NexStar Evolution 6 + Starizona HyperStar", Aperture: 150, FocalLength: 300},
	{Brand: "Lunt", Name: "60mm Universal Telescope", Aperture: 60, FocalLength: 420},
}

var eyepieces = []types.Eyepiece{
	{Brand: "Celestron", Name: "PLÖSSL", FocalLength: 13, FieldOfView: 52},
	{Brand: "Celestron", Name: "PLÖSSL", FocalLength: 40, FieldOfView: 43},
	{Brand: "Celestron", Name: "X-Cell LX", FocalLength: 9, FieldOfView: 60},
	{Brand: "Celestron", Name: "X-Cell LX", FocalLength: 25, FieldOfView: 60},
}

var durations = []types.Time{
	{Seconds: 1},
	{Seconds: 2},
	{Seconds: 5},
	{Seconds: 10},
	{Seconds: 20},
	{Seconds: 30},
	{Seconds: 60},
	{Seconds: 120},
	{Seconds: 180},
	{Seconds: 240},
	{Seconds: 300},
}

var barlows = []types.Barlow{
	{Factor: 2},
	{Factor: 2.5},
	{Factor: 3},
	{Factor: 5},
}

var cameras = []types.Camera{
	{Brand: "ZWO", Name: "ASI120MM Mini", PixelSize: 3.75},
	{Brand: "ZWO", Name: "ASI294MC Pro", PixelSize: 4.63},
	{Brand: "ZWO", Name: "ASI533MC Pro", PixelSize: 3.76},
	{Brand: "ZWO", Name: "ASI2600MC Pro", PixelSize: 3.76},
	{Brand: "Canon", Name: "EOS Ra", PixelSize: 5.36},
}

// Telescopes returns a copy of the telescope catalog.
func Telescopes() []types.Telescope { return slices.Clone(telescopes) }

// Eyepieces returns a copy of the eyepiece catalog.
func Eyepieces() []types.Eyepiece { return slices.Clone(eyepieces) }

// Durations returns a copy of the common exposure durations.
func Durations() []types.Time { return slices.Clone(durations) }

// Barlows returns a copy of the barlow factors.
func Barlows() []types.Barlow { return slices.Clone(barlows) }

// Cameras returns a copy of the camera catalog.
func Cameras() []types.Camera { return slices.Clone(cameras) }

type identified interface {
	ID() string
}

// find matches id against each entry's ID, ignoring case.
func find[T identified](entries []T, kind Kind, id string) (T, error) {
	want := strings.TrimSpace(id)
	for _, e := range entries {
		if strings.EqualFold(e.ID(), want) {
			return e, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: no %s entry with id %q", ErrNotFound, strings.TrimSuffix(string(kind), "s"), id)
}

// FindTelescope looks up a telescope by "brand.name".
func FindTelescope(id string) (types.Telescope, error) { return find(telescopes, KindTelescopes, id) }

// FindEyepiece looks up an eyepiece by "brand.name.<focal length>mm".
func FindEyepiece(id string) (types.Eyepiece, error) { return find(eyepieces, KindEyepieces, id) }

// FindDuration looks up a duration by its label, e.g. "2 minutes".
func FindDuration(id string) (types.Time, error) { return find(durations, KindDurations, id) }

// FindBarlow looks up a barlow by its label, e.g. "2x".
func FindBarlow(id string) (types.Barlow, error) { return find(barlows, KindBarlows, id) }

// FindCamera looks up a camera by "brand.name".
func FindCamera(id string) (types.Camera, error) { return find(cameras, KindCameras, id) }

// IDs returns the ids of every entry in the given catalog, in catalog order.
func IDs(kind Kind) []string {
	switch kind {
	case KindTelescopes:
		return ids(telescopes)
	case KindEyepieces:
		return ids(eyepieces)
	case KindDurations:
		return ids(durations)
	case KindBarlows:
		return ids(barlows)
	case KindCameras:
		return ids(cameras)
	}
	return nil
}

func ids[T identified](entries []T) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID())
	}
	return out
}
