// Package overlay implements the toggleable heatmap layers drawn over the map.
package overlay

import (
	"fmt"

	"github.com/jengzang/victory-garden-go/internal/mapwidget"
)

// AltRadius is the radius applied when the radius toggle is on
const AltRadius = 20

// Config describes one heatmap overlay
type Config struct {
	Name             string
	InitiallyVisible bool
	// Gradient is the base gradient; nil means the widget default
	Gradient []string
	// AltGradient is applied while the gradient toggle is on
	AltGradient []string
	// AltRadius is applied while the radius toggle is on; the base radius is the widget default
	AltRadius int
}

// Heatmap is one overlay: an explicit state plus the widget layer it drives.
// It is not safe for concurrent use; callers serialise access.
type Heatmap struct {
	cfg   Config
	state State
	layer mapwidget.HeatmapLayer

	radiusOn   bool
	gradientOn bool
}

// New creates an uninitialized overlay
func New(cfg Config) *Heatmap {
	return &Heatmap{cfg: cfg, state: Uninitialized}
}

// Name returns the overlay name
func (h *Heatmap) Name() string {
	return h.cfg.Name
}

// State returns the current state
func (h *Heatmap) State() State {
	return h.state
}

// Attach builds the widget layer from points and moves the overlay out of
// Uninitialized. If the widget rejects the layer the overlay stays Uninitialized.
func (h *Heatmap) Attach(w mapwidget.Widget, points []mapwidget.WeightedPoint) error {
	if h.state != Uninitialized {
		return fmt.Errorf("%s heatmap: %w", h.cfg.Name, ErrAlreadyInitialized)
	}

	layer, err := w.NewHeatmap(points, mapwidget.HeatmapOptions{
		Visible:  h.cfg.InitiallyVisible,
		Gradient: h.cfg.Gradient,
	})
	if err != nil {
		return fmt.Errorf("%s heatmap: %w", h.cfg.Name, err)
	}

	h.layer = layer
	if h.cfg.InitiallyVisible {
		h.state = Visible
	} else {
		h.state = Hidden
	}
	return nil
}

// Show makes the overlay visible; showing a visible overlay is a no-op
func (h *Heatmap) Show() error {
	if err := h.ready(); err != nil {
		return err
	}
	h.layer.Show()
	h.state = Visible
	return nil
}

// Hide detaches the overlay from the map; hiding a hidden overlay is a no-op
func (h *Heatmap) Hide() error {
	if err := h.ready(); err != nil {
		return err
	}
	h.layer.Hide()
	h.state = Hidden
	return nil
}

// Toggle flips between Visible and Hidden and returns the new state
func (h *Heatmap) Toggle() (State, error) {
	if err := h.ready(); err != nil {
		return h.state, err
	}
	if h.state == Visible {
		return Hidden, h.Hide()
	}
	return Visible, h.Show()
}

// Radius returns the radius in effect; 0 is the widget default
func (h *Heatmap) Radius() int {
	if h.radiusOn {
		return h.cfg.AltRadius
	}
	return 0
}

// ToggleRadius flips between the widget default radius and the alternate radius
func (h *Heatmap) ToggleRadius() (int, error) {
	if err := h.ready(); err != nil {
		return h.Radius(), err
	}
	h.radiusOn = !h.radiusOn
	h.layer.SetRadius(h.Radius())
	return h.Radius(), nil
}

// Gradient returns the gradient in effect; nil is the widget default
func (h *Heatmap) Gradient() []string {
	if h.gradientOn {
		return copyGradient(h.cfg.AltGradient)
	}
	return copyGradient(h.cfg.Gradient)
}

// ToggleGradient flips between the base gradient and the alternate gradient
func (h *Heatmap) ToggleGradient() ([]string, error) {
	if err := h.ready(); err != nil {
		return h.Gradient(), err
	}
	h.gradientOn = !h.gradientOn
	h.layer.SetGradient(h.Gradient())
	return h.Gradient(), nil
}

func (h *Heatmap) ready() error {
	if h.state == Uninitialized {
		return fmt.Errorf("%s heatmap: %w", h.cfg.Name, ErrNotReady)
	}
	return nil
}

func copyGradient(g []string) []string {
	if g == nil {
		return nil
	}
	return append([]string(nil), g...)
}
