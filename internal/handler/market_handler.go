package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/victory-garden-go/internal/service"
	"github.com/jengzang/victory-garden-go/pkg/response"
)

// MarketHandler handles HTTP requests for market analytics
type MarketHandler struct {
	service *service.MarketService
}

// NewMarketHandler creates a new market handler
func NewMarketHandler(service *service.MarketService) *MarketHandler {
	return &MarketHandler{service: service}
}

// GetProducts handles GET /api/market_insights
func (h *MarketHandler) GetProducts(c *gin.Context) {
	products, err := h.service.Products()
	if err != nil {
		response.InternalError(c, "Failed to list market products", err)
		return
	}

	response.Success(c, gin.H{
		"data":  products,
		"count": len(products),
	})
}

// GetInsights handles GET /api/market_insights/:product
func (h *MarketHandler) GetInsights(c *gin.Context) {
	insights, err := h.service.Insights(c.Param("product"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownProduct):
			response.NotFound(c, "unknown product")
		case errors.Is(err, service.ErrInvalidInput):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, "Failed to compute market insights", err)
		}
		return
	}

	response.Success(c, insights)
}
