package overlay

import (
	"fmt"

	"github.com/jengzang/victory-garden-go/internal/mapwidget"
	"github.com/jengzang/victory-garden-go/internal/models"
)

// Produce heatmap weights by organic status
const (
	OrganicWeight      = 0.8
	ConventionalWeight = 0.5
)

// ProduceGradient is the alternate gradient of the produce heatmap
var ProduceGradient = []string{
	"rgba(0, 255, 255, 0)",
	"rgba(0, 255, 255, 1)",
	"rgba(0, 191, 255, 1)",
	"rgba(0, 127, 255, 1)",
	"rgba(0, 63, 255, 1)",
	"rgba(0, 0, 255, 1)",
	"rgba(0, 0, 223, 1)",
	"rgba(0, 0, 191, 1)",
	"rgba(0, 0, 159, 1)",
	"rgba(0, 0, 127, 1)",
	"rgba(63, 0, 91, 1)",
	"rgba(127, 0, 63, 1)",
	"rgba(191, 0, 31, 1)",
	"rgba(255, 0, 0, 1)",
}

// ClimateGradient is the base gradient of the climate heatmap, green to red
var ClimateGradient = []string{
	"rgba(0, 255, 0, 0)",
	"rgba(0, 255, 0, 1)",
	"rgba(255, 255, 0, 1)",
	"rgba(255, 128, 0, 1)",
	"rgba(255, 0, 0, 1)",
}

// ProduceConfig is the produce density overlay: visible on load, default gradient
func ProduceConfig() Config {
	return Config{
		Name:             "produce",
		InitiallyVisible: true,
		AltGradient:      ProduceGradient,
		AltRadius:        AltRadius,
	}
}

// ClimateConfig is the climate zone overlay: hidden on load, climate gradient.
// Its gradient toggle switches to the widget default.
func ClimateConfig() Config {
	return Config{
		Name:      "climate",
		Gradient:  ClimateGradient,
		AltRadius: AltRadius,
	}
}

// ProducePoints weights each location by organic status
func ProducePoints(locations []models.ProduceLocation) ([]mapwidget.WeightedPoint, error) {
	points := make([]mapwidget.WeightedPoint, 0, len(locations))
	for i, loc := range locations {
		ll, err := mapwidget.LatLng(loc.Lat, loc.Lng)
		if err != nil {
			return nil, fmt.Errorf("produce location %d (%s): %w", i, loc.Name, err)
		}
		weight := ConventionalWeight
		if loc.Organic {
			weight = OrganicWeight
		}
		points = append(points, mapwidget.WeightedPoint{Location: ll, Weight: weight})
	}
	return points, nil
}

// ClimatePoints passes each zone's weight through unchanged
func ClimatePoints(zones []models.ClimateZone) ([]mapwidget.WeightedPoint, error) {
	points := make([]mapwidget.WeightedPoint, 0, len(zones))
	for i, z := range zones {
		ll, err := mapwidget.LatLng(z.Lat, z.Lng)
		if err != nil {
			return nil, fmt.Errorf("climate zone %d: %w", i, err)
		}
		points = append(points, mapwidget.WeightedPoint{Location: ll, Weight: z.Weight})
	}
	return points, nil
}
