package models

// ProduceLocation is a market selling produce, as served by /api/produce_data
type ProduceLocation struct {
	ID      int64   `json:"-" db:"id"`
	Lat     float64 `json:"lat" db:"lat"`
	Lng     float64 `json:"lng" db:"lng"`
	Name    string  `json:"name" db:"name"`
	Price   float64 `json:"price" db:"price"`
	Organic bool    `json:"organic" db:"organic"`
}

// ClimateZone is a weighted climate/planting zone sample, as served by /api/climate_zones
type ClimateZone struct {
	ID     int64   `json:"-" db:"id"`
	Lat    float64 `json:"lat" db:"lat"`
	Lng    float64 `json:"lng" db:"lng"`
	Weight float64 `json:"weight" db:"weight"`
}

// CreateProduceRequest is the body of POST /api/produce_data
type CreateProduceRequest struct {
	Lat     *float64 `json:"lat" binding:"required"`
	Lng     *float64 `json:"lng" binding:"required"`
	Name    string   `json:"name" binding:"required,max=100"`
	Price   float64  `json:"price" binding:"gte=0"`
	Organic bool     `json:"organic"`
}
