package models

// ProduceFilter represents query parameters for GET /api/produce_data.
// Lat, Lng and RadiusM must be given together.
type ProduceFilter struct {
	Lat     *float64 `form:"lat"`
	Lng     *float64 `form:"lng"`
	RadiusM *float64 `form:"radius_m"` // Meters
	Organic *bool    `form:"organic"`
}

// HasArea reports whether any of the area parameters is set
func (f ProduceFilter) HasArea() bool {
	return f.Lat != nil || f.Lng != nil || f.RadiusM != nil
}
