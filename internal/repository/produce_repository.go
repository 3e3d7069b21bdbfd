package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jengzang/victory-garden-go/internal/models"
	"github.com/jengzang/victory-garden-go/internal/spatial"
)

// ProduceRepository handles database operations for produce locations
type ProduceRepository struct {
	db *sql.DB
}

// NewProduceRepository creates a new produce repository
func NewProduceRepository(db *sql.DB) *ProduceRepository {
	return &ProduceRepository{db: db}
}

// ProduceQuery narrows a produce listing. A nil Bounds lists everywhere.
type ProduceQuery struct {
	Bounds  *spatial.Bounds
	Wrapped bool // Bounds crosses the antimeridian
	Organic *bool
}

// List retrieves produce locations in insertion order
func (r *ProduceRepository) List(q ProduceQuery) ([]models.ProduceLocation, error) {
	query := `SELECT id, lat, lng, name, price, organic FROM produce_locations`

	var conditions []string
	var args []interface{}

	if q.Bounds != nil {
		conditions = append(conditions, "lat BETWEEN ? AND ?")
		args = append(args, q.Bounds.MinLat, q.Bounds.MaxLat)
		if q.Wrapped {
			conditions = append(conditions, "(lng >= ? OR lng <= ?)")
		} else {
			conditions = append(conditions, "lng BETWEEN ? AND ?")
		}
		args = append(args, q.Bounds.MinLng, q.Bounds.MaxLng)
	}
	if q.Organic != nil {
		conditions = append(conditions, "organic = ?")
		args = append(args, *q.Organic)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query produce locations: %w", err)
	}
	defer rows.Close()

	locations := []models.ProduceLocation{}
	for rows.Next() {
		var p models.ProduceLocation
		if err := rows.Scan(&p.ID, &p.Lat, &p.Lng, &p.Name, &p.Price, &p.Organic); err != nil {
			return nil, fmt.Errorf("failed to scan produce location: %w", err)
		}
		locations = append(locations, p)
	}

	return locations, rows.Err()
}

// Create inserts a produce location and sets its ID
func (r *ProduceRepository) Create(p *models.ProduceLocation) error {
	res, err := r.db.Exec(
		`INSERT INTO produce_locations (lat, lng, name, price, organic) VALUES (?, ?, ?, ?, ?)`,
		p.Lat, p.Lng, p.Name, p.Price, p.Organic,
	)
	if err != nil {
		return fmt.Errorf("failed to insert produce location: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get produce location id: %w", err)
	}
	p.ID = id
	return nil
}
