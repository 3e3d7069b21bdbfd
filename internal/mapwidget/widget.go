// Package mapwidget is the narrow contract between the map viewer and the
// mapping widget that renders it. Only the operations the viewer needs are
// exposed: markers with click popups, and weighted heatmap layers with
// show/hide, radius and gradient.
package mapwidget

import (
	"errors"

	"github.com/golang/geo/s2"
)

// ErrInvalidCoordinate is returned for a latitude/longitude outside the valid range
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// WeightedPoint is a heatmap sample
type WeightedPoint struct {
	Location s2.LatLng
	Weight   float64
}

// HeatmapOptions configures a heatmap layer at construction.
// Radius 0 and a nil Gradient mean the widget defaults.
type HeatmapOptions struct {
	Visible  bool
	Radius   int
	Gradient []string
}

// MarkerOptions configures a point marker
type MarkerOptions struct {
	Position s2.LatLng
	Title    string
}

// HeatmapLayer is a weighted-point heatmap attached to (or detached from) the map
type HeatmapLayer interface {
	Show()
	Hide()
	SetRadius(radius int)
	SetGradient(gradient []string)
}

// Marker is a point marker on the map
type Marker interface {
	Title() string
	// OnClick registers fn to run when this marker is clicked
	OnClick(fn func())
}

// Popup is an info window anchored to a marker
type Popup interface {
	Open(anchor Marker)
}

// Widget is the map itself
type Widget interface {
	Center() s2.LatLng
	Zoom() int
	AddMarker(opts MarkerOptions) (Marker, error)
	NewPopup(content string) Popup
	NewHeatmap(points []WeightedPoint, opts HeatmapOptions) (HeatmapLayer, error)
}

// Factory constructs a widget centered at center with the given zoom level
type Factory func(center s2.LatLng, zoom int) (Widget, error)

// LatLng converts degrees to an s2.LatLng, rejecting out-of-range values
func LatLng(lat, lng float64) (s2.LatLng, error) {
	ll := s2.LatLngFromDegrees(lat, lng)
	if !ll.IsValid() {
		return s2.LatLng{}, ErrInvalidCoordinate
	}
	return ll, nil
}
