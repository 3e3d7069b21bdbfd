package api

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/victory-garden-go/internal/config"
	"github.com/jengzang/victory-garden-go/internal/handler"
	"github.com/jengzang/victory-garden-go/internal/middleware"
	"github.com/jengzang/victory-garden-go/internal/repository"
	"github.com/jengzang/victory-garden-go/internal/service"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, db *sql.DB, limiter *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(log.Default()), gin.Recovery())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	if limiter == nil {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
	}

	mapDataHandler := handler.NewMapDataHandler(service.NewMapDataService(
		repository.NewProduceRepository(db),
		repository.NewClimateRepository(db),
	))
	gardenHandler := handler.NewGardenHandler(service.NewGardenService(
		repository.NewGardenTaskRepository(db),
	))
	marketHandler := handler.NewMarketHandler(service.NewMarketService(
		repository.NewMarketRepository(db),
	))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Victory Garden API is running",
		})
	})

	auth := middleware.JWTAuth(cfg.JWTSecret)
	writeLimit := middleware.RateLimit(limiter)

	api := r.Group("/api")
	{
		// 地图数据接口
		api.GET("/produce_data", mapDataHandler.GetProduceData)
		api.POST("/produce_data", writeLimit, auth, mapDataHandler.CreateProduce)
		api.GET("/climate_zones", mapDataHandler.GetClimateZones)

		// 花园规划接口
		api.GET("/plants", gardenHandler.GetPlants)
		api.GET("/companions/:plant", gardenHandler.GetCompanions)

		// 市场分析接口
		api.GET("/market_insights", marketHandler.GetProducts)
		api.GET("/market_insights/:product", marketHandler.GetInsights)

		tasks := api.Group("/garden_tasks", auth)
		{
			tasks.GET("", gardenHandler.GetTasks)
			tasks.POST("", writeLimit, gardenHandler.CreateTask)
		}
	}

	return r
}
