package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang/geo/s2"

	"github.com/jengzang/victory-garden-go/internal/models"
	"github.com/jengzang/victory-garden-go/internal/repository"
	"github.com/jengzang/victory-garden-go/internal/spatial"
)

// ErrInvalidInput is returned for requests that fail validation
var ErrInvalidInput = errors.New("invalid input")

// MapDataService serves the datasets behind the map overlays
type MapDataService struct {
	produce *repository.ProduceRepository
	climate *repository.ClimateRepository
}

// NewMapDataService creates a new map data service
func NewMapDataService(produce *repository.ProduceRepository, climate *repository.ClimateRepository) *MapDataService {
	return &MapDataService{produce: produce, climate: climate}
}

// ListProduce returns produce locations, optionally restricted to a circle
func (s *MapDataService) ListProduce(filter models.ProduceFilter) ([]models.ProduceLocation, error) {
	q := repository.ProduceQuery{Organic: filter.Organic}
	if !filter.HasArea() {
		return s.produce.List(q)
	}

	if filter.Lat == nil || filter.Lng == nil || filter.RadiusM == nil {
		return nil, fmt.Errorf("%w: lat, lng and radius_m must be given together", ErrInvalidInput)
	}
	lat, lng, radius := *filter.Lat, *filter.Lng, *filter.RadiusM
	if !s2.LatLngFromDegrees(lat, lng).IsValid() {
		return nil, fmt.Errorf("%w: coordinate out of range", ErrInvalidInput)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("%w: radius_m must be positive", ErrInvalidInput)
	}

	bounds, wrapped := spatial.CircleBounds(lat, lng, radius)
	q.Bounds = &bounds
	q.Wrapped = wrapped

	candidates, err := s.produce.List(q)
	if err != nil {
		return nil, err
	}

	// the rectangle over-selects near its corners
	locations := make([]models.ProduceLocation, 0, len(candidates))
	for _, p := range candidates {
		if spatial.WithinRadius(lat, lng, p.Lat, p.Lng, radius) {
			locations = append(locations, p)
		}
	}
	return locations, nil
}

// ListClimateZones returns all climate zone samples
func (s *MapDataService) ListClimateZones() ([]models.ClimateZone, error) {
	return s.climate.List()
}

// CreateProduce validates and stores a produce location
func (s *MapDataService) CreateProduce(req models.CreateProduceRequest) (*models.ProduceLocation, error) {
	if req.Lat == nil || req.Lng == nil {
		return nil, fmt.Errorf("%w: lat and lng are required", ErrInvalidInput)
	}
	if !s2.LatLngFromDegrees(*req.Lat, *req.Lng).IsValid() {
		return nil, fmt.Errorf("%w: coordinate out of range", ErrInvalidInput)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	p := &models.ProduceLocation{
		Lat:     *req.Lat,
		Lng:     *req.Lng,
		Name:    name,
		Price:   req.Price,
		Organic: req.Organic,
	}
	if err := s.produce.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}
