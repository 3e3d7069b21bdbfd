package config

import (
	"os"
	"strconv"
)

// Config 应用配置
type Config struct {
	Port       string
	DBPath     string
	JWTSecret  string
	APIBaseURL string // 地图数据接口地址（viewer 使用）

	MapCenterLat float64
	MapCenterLng float64
	MapZoom      int
	GridSize     int

	RateLimit int // 每分钟写请求上限
}

// Load 加载配置
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/garden.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	apiBaseURL := os.Getenv("API_BASE_URL")
	if apiBaseURL == "" {
		apiBaseURL = "http://localhost:8080"
	}

	return &Config{
		Port:         port,
		DBPath:       dbPath,
		JWTSecret:    jwtSecret,
		APIBaseURL:   apiBaseURL,
		MapCenterLat: envFloat("MAP_CENTER_LAT", 40.7128), // 纽约
		MapCenterLng: envFloat("MAP_CENTER_LNG", -74.0060),
		MapZoom:      envInt("MAP_ZOOM", 13),
		GridSize:     envInt("GRID_SIZE", 10),
		RateLimit:    envPositiveInt("RATE_LIMIT", 60),
	}
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// envPositiveInt is envInt with values <= 0 replaced by def
func envPositiveInt(key string, def int) int {
	if n := envInt(key, def); n > 0 {
		return n
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
