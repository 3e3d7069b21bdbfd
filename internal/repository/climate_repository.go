package repository

import (
	"database/sql"
	"fmt"

	"github.com/jengzang/victory-garden-go/internal/models"
)

// ClimateRepository handles database operations for climate zones
type ClimateRepository struct {
	db *sql.DB
}

// NewClimateRepository creates a new climate repository
func NewClimateRepository(db *sql.DB) *ClimateRepository {
	return &ClimateRepository{db: db}
}

// List retrieves all climate zone samples
func (r *ClimateRepository) List() ([]models.ClimateZone, error) {
	rows, err := r.db.Query(`SELECT id, lat, lng, weight FROM climate_zones ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query climate zones: %w", err)
	}
	defer rows.Close()

	zones := []models.ClimateZone{}
	for rows.Next() {
		var z models.ClimateZone
		if err := rows.Scan(&z.ID, &z.Lat, &z.Lng, &z.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan climate zone: %w", err)
		}
		zones = append(zones, z)
	}

	return zones, rows.Err()
}
