package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/jengzang/victory-garden-go/internal/garden"
	"github.com/jengzang/victory-garden-go/internal/models"
	"github.com/jengzang/victory-garden-go/internal/repository"
)

// GardenService handles the garden planner reference data and user tasks
type GardenService struct {
	tasks *repository.GardenTaskRepository
	now   func() time.Time
}

// NewGardenService creates a new garden service
func NewGardenService(tasks *repository.GardenTaskRepository) *GardenService {
	return &GardenService{tasks: tasks, now: time.Now}
}

// TaskList is a user's tasks plus the current season's suggestions
type TaskList struct {
	Tasks     []models.GardenTask    `json:"tasks"`
	Suggested []garden.SuggestedTask `json:"suggested_tasks"`
}

// Plants returns the palette in display order
func (s *GardenService) Plants() []garden.Plant {
	return garden.NewPalette(garden.DefaultPlants).Plants()
}

// Companions looks up the companion lists of a plant
func (s *GardenService) Companions(plant string) (garden.Companions, error) {
	return garden.LookupCompanions(plant)
}

// ListTasks returns a user's tasks ordered by due date with seasonal suggestions
func (s *GardenService) ListTasks(userID int64) (*TaskList, error) {
	tasks, err := s.tasks.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return &TaskList{
		Tasks:     tasks,
		Suggested: garden.SuggestedTasks(s.now()),
	}, nil
}

// CreateTask stores a task for a user
func (s *GardenService) CreateTask(userID int64, req models.CreateGardenTaskRequest) (*models.GardenTask, error) {
	task := strings.TrimSpace(req.Task)
	if task == "" {
		return nil, fmt.Errorf("%w: task is required", ErrInvalidInput)
	}
	if _, err := time.Parse(garden.TaskDateLayout, req.DueDate); err != nil {
		return nil, fmt.Errorf("%w: due_date must be YYYY-MM-DD", ErrInvalidInput)
	}

	t := &models.GardenTask{
		UserID:  userID,
		Task:    task,
		DueDate: req.DueDate,
	}
	if err := s.tasks.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}
