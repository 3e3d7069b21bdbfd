package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/victory-garden-go/internal/models"
	"github.com/jengzang/victory-garden-go/internal/service"
	"github.com/jengzang/victory-garden-go/pkg/response"
)

// MapDataHandler handles HTTP requests for the map overlay datasets.
// The two GET endpoints return bare JSON arrays, which is what the map viewer consumes.
type MapDataHandler struct {
	service *service.MapDataService
}

// NewMapDataHandler creates a new map data handler
func NewMapDataHandler(service *service.MapDataService) *MapDataHandler {
	return &MapDataHandler{service: service}
}

// GetProduceData handles GET /api/produce_data
func (h *MapDataHandler) GetProduceData(c *gin.Context) {
	var filter models.ProduceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	locations, err := h.service.ListProduce(filter)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, err.Error(), err)
			return
		}
		response.InternalError(c, "Failed to get produce data", err)
		return
	}

	c.JSON(http.StatusOK, locations)
}

// GetClimateZones handles GET /api/climate_zones
func (h *MapDataHandler) GetClimateZones(c *gin.Context) {
	zones, err := h.service.ListClimateZones()
	if err != nil {
		response.InternalError(c, "Failed to get climate zones", err)
		return
	}

	c.JSON(http.StatusOK, zones)
}

// CreateProduce handles POST /api/produce_data
func (h *MapDataHandler) CreateProduce(c *gin.Context) {
	var req models.CreateProduceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	p, err := h.service.CreateProduce(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, err.Error(), err)
			return
		}
		response.InternalError(c, "Failed to create produce location", err)
		return
	}

	c.JSON(http.StatusCreated, p)
}
