package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jengzang/victory-garden-go/internal/api"
	"github.com/jengzang/victory-garden-go/internal/config"
	"github.com/jengzang/victory-garden-go/internal/database"
	"github.com/jengzang/victory-garden-go/internal/middleware"
)

func main() {
	// 加载配置
	cfg := config.Load()

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		log.Fatal("Failed to create data directory:", err)
	}

	// 初始化数据库
	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
	stop := make(chan struct{})
	defer close(stop)
	go limiter.Run(stop)

	// 初始化路由
	router := api.SetupRouter(cfg, db, limiter)

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
