package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jengzang/victory-garden-go/internal/models"
	"github.com/jengzang/victory-garden-go/internal/repository"
	"github.com/jengzang/victory-garden-go/internal/stats"
)

// ErrUnknownProduct is returned when a product has no market history
var ErrUnknownProduct = errors.New("unknown product")

const (
	// TrendWindow is the number of days compared at each end of the history
	TrendWindow = 30
	// ForecastDays is the number of days of price forecast returned
	ForecastDays = 30
)

// MarketService computes market analytics over stored price history
type MarketService struct {
	repo *repository.MarketRepository
}

// NewMarketService creates a new market service
func NewMarketService(repo *repository.MarketRepository) *MarketService {
	return &MarketService{repo: repo}
}

// Products lists the products with market history
func (s *MarketService) Products() ([]string, error) {
	return s.repo.Products()
}

// Insights computes averages, trends, volatility, weather correlation and a
// linear price forecast for a product
func (s *MarketService) Insights(product string) (*models.MarketInsights, error) {
	product = strings.TrimSpace(product)
	if product == "" {
		return nil, fmt.Errorf("%w: product is required", ErrInvalidInput)
	}

	history, err := s.repo.History(product)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, product)
	}

	n := len(history)
	days := make([]float64, n)
	demand := make([]float64, n)
	supply := make([]float64, n)
	price := make([]float64, n)
	weather := make([]float64, n)
	for i, p := range history {
		days[i] = float64(i)
		demand[i] = p.Demand
		supply[i] = p.Supply
		price[i] = p.Price
		weather[i] = p.Weather
	}

	insights := &models.MarketInsights{
		Product: history[0].Product,
		Days:    n,

		AverageDemand: stats.Mean(demand),
		AverageSupply: stats.Mean(supply),
		AveragePrice:  stats.Mean(price),

		DemandTrend: trend(demand),
		SupplyTrend: trend(supply),
		PriceTrend:  trend(price),

		DemandVolatility: stats.CoefficientOfVariation(demand),
		SupplyVolatility: stats.CoefficientOfVariation(supply),
		PriceVolatility:  stats.CoefficientOfVariation(price),

		WeatherDemandCorrelation: stats.PearsonCorrelation(weather, demand),
		WeatherSupplyCorrelation: stats.PearsonCorrelation(weather, supply),
		WeatherPriceCorrelation:  stats.PearsonCorrelation(weather, price),
	}

	// Zero supply leaves the ratio at 0; JSON has no infinity
	if insights.AverageSupply != 0 {
		insights.DemandSupplyRatio = insights.AverageDemand / insights.AverageSupply
	}

	slope, intercept := stats.LinearRegression(days, price)
	future := make([]float64, ForecastDays)
	for i := range future {
		future[i] = float64(n + i)
	}
	insights.PriceForecast = stats.Predict(future, slope, intercept)

	return insights, nil
}

// trend compares the mean of the last TrendWindow values with the first
// TrendWindow, shrinking the window to half the series when it is short
func trend(values []float64) string {
	window := TrendWindow
	if len(values) < 2*window {
		window = len(values) / 2
	}
	if window == 0 {
		return models.TrendStable
	}

	first := stats.Mean(values[:window])
	last := stats.Mean(values[len(values)-window:])
	switch {
	case last > first:
		return models.TrendIncreasing
	case last < first:
		return models.TrendDecreasing
	default:
		return models.TrendStable
	}
}
