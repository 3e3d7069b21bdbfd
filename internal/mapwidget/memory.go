package mapwidget

import (
	"fmt"
	"sync"

	"github.com/golang/geo/s2"
)

// MarkerState is a snapshot of a marker on a Memory widget
type MarkerState struct {
	Title        string
	Position     s2.LatLng
	PopupContent string
	PopupOpen    bool
}

// HeatmapState is a snapshot of a heatmap layer on a Memory widget
type HeatmapState struct {
	Points   []WeightedPoint
	Visible  bool
	Radius   int
	Gradient []string
}

// Memory is an in-process Widget that records what would be drawn.
// It backs the headless viewer and tests.
type Memory struct {
	mu       sync.Mutex
	center   s2.LatLng
	zoom     int
	markers  []*memoryMarker
	heatmaps []*memoryHeatmap
}

// NewMemory creates a Memory widget
func NewMemory(center s2.LatLng, zoom int) (*Memory, error) {
	if !center.IsValid() {
		return nil, fmt.Errorf("map center %v: %w", center, ErrInvalidCoordinate)
	}
	return &Memory{center: center, zoom: zoom}, nil
}

// MemoryFactory is a Factory producing Memory widgets
func MemoryFactory(center s2.LatLng, zoom int) (Widget, error) {
	m, err := NewMemory(center, zoom)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Memory) Center() s2.LatLng { return m.center }

func (m *Memory) Zoom() int { return m.zoom }

func (m *Memory) AddMarker(opts MarkerOptions) (Marker, error) {
	if !opts.Position.IsValid() {
		return nil, fmt.Errorf("marker %q: %w", opts.Title, ErrInvalidCoordinate)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	mk := &memoryMarker{owner: m, title: opts.Title, position: opts.Position}
	m.markers = append(m.markers, mk)
	return mk, nil
}

func (m *Memory) NewPopup(content string) Popup {
	return &memoryPopup{owner: m, content: content}
}

func (m *Memory) NewHeatmap(points []WeightedPoint, opts HeatmapOptions) (HeatmapLayer, error) {
	for i, p := range points {
		if !p.Location.IsValid() {
			return nil, fmt.Errorf("heatmap point %d: %w", i, ErrInvalidCoordinate)
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	h := &memoryHeatmap{
		owner:    m,
		points:   append([]WeightedPoint(nil), points...),
		visible:  opts.Visible,
		radius:   opts.Radius,
		gradient: append([]string(nil), opts.Gradient...),
	}
	m.heatmaps = append(m.heatmaps, h)
	return h, nil
}

// Click simulates a user click on the i-th marker added
func (m *Memory) Click(i int) error {
	m.mu.Lock()
	if i < 0 || i >= len(m.markers) {
		m.mu.Unlock()
		return fmt.Errorf("no marker %d", i)
	}
	handlers := append([]func(){}, m.markers[i].handlers...)
	m.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
	return nil
}

// Markers returns a snapshot of all markers in insertion order
func (m *Memory) Markers() []MarkerState {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MarkerState, 0, len(m.markers))
	for _, mk := range m.markers {
		out = append(out, MarkerState{
			Title:        mk.title,
			Position:     mk.position,
			PopupContent: mk.popupContent,
			PopupOpen:    mk.popupOpen,
		})
	}
	return out
}

// Heatmaps returns a snapshot of all heatmap layers in construction order
func (m *Memory) Heatmaps() []HeatmapState {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]HeatmapState, 0, len(m.heatmaps))
	for _, h := range m.heatmaps {
		var gradient []string
		if h.gradient != nil {
			gradient = append([]string(nil), h.gradient...)
		}
		out = append(out, HeatmapState{
			Points:   append([]WeightedPoint(nil), h.points...),
			Visible:  h.visible,
			Radius:   h.radius,
			Gradient: gradient,
		})
	}
	return out
}

type memoryMarker struct {
	owner        *Memory
	title        string
	position     s2.LatLng
	handlers     []func()
	popupContent string
	popupOpen    bool
}

func (mk *memoryMarker) Title() string { return mk.title }

func (mk *memoryMarker) OnClick(fn func()) {
	mk.owner.mu.Lock()
	defer mk.owner.mu.Unlock()
	mk.handlers = append(mk.handlers, fn)
}

type memoryPopup struct {
	owner   *Memory
	content string
}

func (p *memoryPopup) Open(anchor Marker) {
	mk, ok := anchor.(*memoryMarker)
	if !ok || mk.owner != p.owner {
		return
	}
	p.owner.mu.Lock()
	defer p.owner.mu.Unlock()
	mk.popupContent = p.content
	mk.popupOpen = true
}

type memoryHeatmap struct {
	owner    *Memory
	points   []WeightedPoint
	visible  bool
	radius   int
	gradient []string
}

func (h *memoryHeatmap) Show() {
	h.owner.mu.Lock()
	defer h.owner.mu.Unlock()
	h.visible = true
}

func (h *memoryHeatmap) Hide() {
	h.owner.mu.Lock()
	defer h.owner.mu.Unlock()
	h.visible = false
}

func (h *memoryHeatmap) SetRadius(radius int) {
	h.owner.mu.Lock()
	defer h.owner.mu.Unlock()
	h.radius = radius
}

func (h *memoryHeatmap) SetGradient(gradient []string) {
	h.owner.mu.Lock()
	defer h.owner.mu.Unlock()
	if gradient == nil {
		h.gradient = nil
		return
	}
	h.gradient = append([]string(nil), gradient...)
}
