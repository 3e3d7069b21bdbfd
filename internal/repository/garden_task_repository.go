package repository

import (
	"database/sql"
	"fmt"

	"github.com/jengzang/victory-garden-go/internal/models"
)

// GardenTaskRepository handles database operations for garden tasks
type GardenTaskRepository struct {
	db *sql.DB
}

// NewGardenTaskRepository creates a new garden task repository
func NewGardenTaskRepository(db *sql.DB) *GardenTaskRepository {
	return &GardenTaskRepository{db: db}
}

// ListByUser retrieves a user's tasks ordered by due date
func (r *GardenTaskRepository) ListByUser(userID int64) ([]models.GardenTask, error) {
	rows, err := r.db.Query(`SELECT id, user_id, task, due_date, completed, created_at
		FROM garden_tasks WHERE user_id = ? ORDER BY due_date, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query garden tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.GardenTask{}
	for rows.Next() {
		var t models.GardenTask
		if err := rows.Scan(&t.ID, &t.UserID, &t.Task, &t.DueDate, &t.Completed, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan garden task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// Create inserts a garden task and sets its ID
func (r *GardenTaskRepository) Create(t *models.GardenTask) error {
	res, err := r.db.Exec(
		`INSERT INTO garden_tasks (user_id, task, due_date) VALUES (?, ?, ?)`,
		t.UserID, t.Task, t.DueDate,
	)
	if err != nil {
		return fmt.Errorf("failed to insert garden task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get garden task id: %w", err)
	}
	t.ID = id
	return nil
}
