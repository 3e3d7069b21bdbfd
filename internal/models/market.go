package models

// MarketPrice is one day of market history for a product
type MarketPrice struct {
	ID      int64   `json:"-" db:"id"`
	Product string  `json:"product" db:"product"`
	Day     string  `json:"day" db:"day"` // YYYY-MM-DD
	Demand  float64 `json:"demand" db:"demand"`
	Supply  float64 `json:"supply" db:"supply"`
	Price   float64 `json:"price" db:"price"`
	Weather float64 `json:"weather" db:"weather"`
}

// Trend directions reported by MarketInsights
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// MarketInsights summarizes a product's market history, as served by /api/market_insights/:product
type MarketInsights struct {
	Product string `json:"product"`
	Days    int    `json:"days"`

	AverageDemand float64 `json:"average_demand"`
	AverageSupply float64 `json:"average_supply"`
	AveragePrice  float64 `json:"average_price"`

	DemandTrend string `json:"demand_trend"`
	SupplyTrend string `json:"supply_trend"`
	PriceTrend  string `json:"price_trend"`

	DemandVolatility float64 `json:"demand_volatility"`
	SupplyVolatility float64 `json:"supply_volatility"`
	PriceVolatility  float64 `json:"price_volatility"`

	DemandSupplyRatio float64 `json:"demand_supply_ratio"`

	WeatherDemandCorrelation float64 `json:"weather_demand_correlation"`
	WeatherSupplyCorrelation float64 `json:"weather_supply_correlation"`
	WeatherPriceCorrelation  float64 `json:"weather_price_correlation"`

	PriceForecast []float64 `json:"price_forecast"`
}
