package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/victory-garden-go/internal/garden"
	"github.com/jengzang/victory-garden-go/internal/middleware"
	"github.com/jengzang/victory-garden-go/internal/models"
	"github.com/jengzang/victory-garden-go/internal/service"
	"github.com/jengzang/victory-garden-go/pkg/response"
)

// GardenHandler handles HTTP requests for the garden planner
type GardenHandler struct {
	service *service.GardenService
}

// NewGardenHandler creates a new garden handler
func NewGardenHandler(service *service.GardenService) *GardenHandler {
	return &GardenHandler{service: service}
}

// GetPlants handles GET /api/plants
func (h *GardenHandler) GetPlants(c *gin.Context) {
	plants := h.service.Plants()
	response.Success(c, gin.H{
		"data":  plants,
		"count": len(plants),
	})
}

// GetCompanions handles GET /api/companions/:plant
func (h *GardenHandler) GetCompanions(c *gin.Context) {
	plant := c.Param("plant")

	companions, err := h.service.Companions(plant)
	if err != nil {
		if errors.Is(err, garden.ErrUnknownPlant) {
			response.NotFound(c, "unknown plant")
			return
		}
		response.InternalError(c, "Failed to get companions", err)
		return
	}

	response.Success(c, gin.H{
		"plant": plant,
		"good":  companions.Good,
		"bad":   companions.Bad,
	})
}

// GetTasks handles GET /api/garden_tasks
func (h *GardenHandler) GetTasks(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Login required")
		return
	}

	list, err := h.service.ListTasks(userID)
	if err != nil {
		response.InternalError(c, "Failed to get garden tasks", err)
		return
	}

	response.Success(c, list)
}

// CreateTask handles POST /api/garden_tasks
func (h *GardenHandler) CreateTask(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Login required")
		return
	}

	var req models.CreateGardenTaskRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	task, err := h.service.CreateTask(userID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, err.Error(), err)
			return
		}
		response.InternalError(c, "Failed to create garden task", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"task":     task.Task,
		"due_date": task.DueDate,
	})
}
