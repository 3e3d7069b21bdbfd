package models

import "time"

// GardenTask is a user's scheduled garden chore
type GardenTask struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Task      string    `json:"task" db:"task"`
	DueDate   string    `json:"due_date" db:"due_date"` // YYYY-MM-DD
	Completed bool      `json:"completed" db:"completed"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateGardenTaskRequest is the body of POST /api/garden_tasks
type CreateGardenTaskRequest struct {
	Task    string `json:"task" form:"task" binding:"required,max=200"`
	DueDate string `json:"due_date" form:"due_date" binding:"required"`
}
