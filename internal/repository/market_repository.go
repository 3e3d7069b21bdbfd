package repository

import (
	"database/sql"
	"fmt"

	"github.com/jengzang/victory-garden-go/internal/models"
)

// MarketRepository handles database operations for market price history
type MarketRepository struct {
	db *sql.DB
}

// NewMarketRepository creates a new market repository
func NewMarketRepository(db *sql.DB) *MarketRepository {
	return &MarketRepository{db: db}
}

// Products lists the products that have price history
func (r *MarketRepository) Products() ([]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT product FROM market_prices ORDER BY product`)
	if err != nil {
		return nil, fmt.Errorf("failed to query market products: %w", err)
	}
	defer rows.Close()

	products := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan market product: %w", err)
		}
		products = append(products, name)
	}

	return products, rows.Err()
}

// History retrieves a product's daily history, oldest first. Product names match case-insensitively.
func (r *MarketRepository) History(product string) ([]models.MarketPrice, error) {
	query := `
		SELECT id, product, day, demand, supply, price, weather
		FROM market_prices
		WHERE product = ? COLLATE NOCASE
		ORDER BY day
	`

	rows, err := r.db.Query(query, product)
	if err != nil {
		return nil, fmt.Errorf("failed to query market history: %w", err)
	}
	defer rows.Close()

	history := []models.MarketPrice{}
	for rows.Next() {
		var p models.MarketPrice
		if err := rows.Scan(&p.ID, &p.Product, &p.Day, &p.Demand, &p.Supply, &p.Price, &p.Weather); err != nil {
			return nil, fmt.Errorf("failed to scan market price: %w", err)
		}
		history = append(history, p)
	}

	return history, rows.Err()
}
