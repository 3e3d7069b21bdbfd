// Package mapview is the map page controller: it creates the map, loads the
// produce and climate datasets concurrently, and renders markers and heatmap
// overlays. All widget and overlay state is touched only from the viewer's
// event loop.
package mapview

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/jengzang/victory-garden-go/internal/mapwidget"
	"github.com/jengzang/victory-garden-go/internal/models"
	"github.com/jengzang/victory-garden-go/internal/overlay"
)

// Default map position: New York City
const (
	DefaultCenterLat = 40.7128
	DefaultCenterLng = -74.0060
	DefaultZoom      = 13
)

// DataSource supplies the two map datasets
type DataSource interface {
	ProduceData(ctx context.Context) ([]models.ProduceLocation, error)
	ClimateZones(ctx context.Context) ([]models.ClimateZone, error)
}

// ErrUnknownLayer is returned for a Layer value that names no overlay
var ErrUnknownLayer = errors.New("unknown layer")

// Layer selects one of the viewer's heatmap overlays
type Layer int

const (
	ProduceLayer Layer = iota
	ClimateLayer
)

func (l Layer) String() string {
	switch l {
	case ProduceLayer:
		return "produce"
	case ClimateLayer:
		return "climate"
	}
	return fmt.Sprintf("Layer(%d)", int(l))
}

// Config positions the map
type Config struct {
	CenterLat float64
	CenterLng float64
	Zoom      int
}

// DefaultConfig centers the map on New York City
func DefaultConfig() Config {
	return Config{
		CenterLat: DefaultCenterLat,
		CenterLng: DefaultCenterLng,
		Zoom:      DefaultZoom,
	}
}

// Status is a snapshot of the viewer
type Status struct {
	Produce    overlay.State
	Climate    overlay.State
	Markers    int
	ProduceErr error
	ClimateErr error
}

// Viewer owns the map widget, its overlays and the event loop for one page lifetime.
type Viewer struct {
	widget mapwidget.Widget
	source DataSource
	logger *log.Logger
	loop   *Loop

	produce *overlay.Heatmap
	climate *overlay.Heatmap
	markers int

	produceErr error
	climateErr error

	fetches sync.WaitGroup
	cancel  context.CancelFunc
}

// New constructs the map widget and an idle viewer. Call Start to load data.
func New(cfg Config, newWidget mapwidget.Factory, source DataSource, logger *log.Logger) (*Viewer, error) {
	if logger == nil {
		logger = log.Default()
	}

	center, err := mapwidget.LatLng(cfg.CenterLat, cfg.CenterLng)
	if err != nil {
		return nil, fmt.Errorf("map center: %w", err)
	}

	logger.Printf("Initializing map...")
	widget, err := newWidget(center, cfg.Zoom)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize map: %w", err)
	}
	logger.Printf("Map initialized")

	return &Viewer{
		widget:  widget,
		source:  source,
		logger:  logger,
		loop:    NewLoop(),
		produce: overlay.New(overlay.ProduceConfig()),
		climate: overlay.New(overlay.ClimateConfig()),
		cancel:  func() {},
	}, nil
}

// Widget returns the map widget
func (v *Viewer) Widget() mapwidget.Widget {
	return v.widget
}

// Start begins the produce and climate fetches. Their completions are applied
// on the event loop in whatever order they arrive.
func (v *Viewer) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	v.cancel = cancel

	v.fetches.Add(2)
	go func() {
		defer v.fetches.Done()
		v.logger.Printf("Fetching produce data...")
		data, err := v.source.ProduceData(ctx)
		v.apply(ctx, func() { v.renderProduce(data, err) })
	}()
	go func() {
		defer v.fetches.Done()
		v.logger.Printf("Fetching climate zone data...")
		data, err := v.source.ClimateZones(ctx)
		v.apply(ctx, func() { v.renderClimate(data, err) })
	}()
}

// Wait blocks until both fetches have completed and been rendered
func (v *Viewer) Wait() {
	v.fetches.Wait()
}

// Close cancels outstanding fetches and stops the event loop
func (v *Viewer) Close() {
	v.cancel()
	v.fetches.Wait()
	v.loop.Close()
}

func (v *Viewer) apply(ctx context.Context, fn func()) {
	if err := v.loop.Do(ctx, fn); err != nil {
		v.logger.Printf("Dropped fetch result: %v", err)
	}
}

func (v *Viewer) renderProduce(data []models.ProduceLocation, err error) {
	if err != nil {
		v.produceErr = err
		v.logger.Printf("Error fetching produce data: %v", err)
		return
	}
	v.logger.Printf("Produce data received: %d locations", len(data))

	v.addMarkers(data)

	points, err := overlay.ProducePoints(data)
	if err == nil {
		err = v.produce.Attach(v.widget, points)
	}
	if err != nil {
		v.produceErr = err
		v.logger.Printf("Error building produce heatmap: %v", err)
		return
	}
	v.logger.Printf("Produce heatmap initialized: %s", v.produce.State())
}

func (v *Viewer) renderClimate(data []models.ClimateZone, err error) {
	if err != nil {
		v.climateErr = err
		v.logger.Printf("Error fetching climate zone data: %v", err)
		return
	}
	v.logger.Printf("Climate zone data received: %d zones", len(data))

	points, err := overlay.ClimatePoints(data)
	if err == nil {
		err = v.climate.Attach(v.widget, points)
	}
	if err != nil {
		v.climateErr = err
		v.logger.Printf("Error building climate heatmap: %v", err)
		return
	}
	v.logger.Printf("Climate zone heatmap initialized: %s", v.climate.State())
}

func (v *Viewer) heatmap(layer Layer) (*overlay.Heatmap, error) {
	switch layer {
	case ProduceLayer:
		return v.produce, nil
	case ClimateLayer:
		return v.climate, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownLayer, layer)
}

// Toggle flips a heatmap between visible and hidden. Once the toggle has been
// handed to the event loop it completes even if ctx is cancelled.
func (v *Viewer) Toggle(ctx context.Context, layer Layer) (overlay.State, error) {
	h, err := v.heatmap(layer)
	if err != nil {
		return overlay.Uninitialized, err
	}

	var state overlay.State
	if doErr := v.loop.Do(ctx, func() {
		state, err = h.Toggle()
	}); doErr != nil {
		return overlay.Uninitialized, doErr
	}
	if err != nil {
		v.logger.Printf("Toggle %s heatmap: %v", layer, err)
		return state, err
	}
	v.logger.Printf("%s heatmap visibility toggled: %s", layer, state)
	return state, nil
}

// ChangeRadius flips a heatmap between the default and alternate radius
func (v *Viewer) ChangeRadius(ctx context.Context, layer Layer) (int, error) {
	h, err := v.heatmap(layer)
	if err != nil {
		return 0, err
	}

	var radius int
	if doErr := v.loop.Do(ctx, func() {
		radius, err = h.ToggleRadius()
	}); doErr != nil {
		return 0, doErr
	}
	if err != nil {
		v.logger.Printf("Change %s heatmap radius: %v", layer, err)
		return radius, err
	}
	v.logger.Printf("%s heatmap radius changed to: %d", layer, radius)
	return radius, nil
}

// ChangeGradient flips a heatmap between its base and alternate gradient
func (v *Viewer) ChangeGradient(ctx context.Context, layer Layer) ([]string, error) {
	h, err := v.heatmap(layer)
	if err != nil {
		return nil, err
	}

	var gradient []string
	if doErr := v.loop.Do(ctx, func() {
		gradient, err = h.ToggleGradient()
	}); doErr != nil {
		return nil, doErr
	}
	if err != nil {
		v.logger.Printf("Change %s heatmap gradient: %v", layer, err)
		return gradient, err
	}
	if gradient == nil {
		v.logger.Printf("%s heatmap gradient changed: default gradient", layer)
	} else {
		v.logger.Printf("%s heatmap gradient changed: custom gradient", layer)
	}
	return gradient, nil
}

// Status returns a snapshot taken on the event loop
func (v *Viewer) Status(ctx context.Context) (Status, error) {
	var s Status
	err := v.loop.Do(ctx, func() {
		s = Status{
			Produce:    v.produce.State(),
			Climate:    v.climate.State(),
			Markers:    v.markers,
			ProduceErr: v.produceErr,
			ClimateErr: v.climateErr,
		}
	})
	return s, err
}
