package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/jengzang/victory-garden-go/internal/config"
	"github.com/jengzang/victory-garden-go/internal/middleware"
)

func main() {
	userID := flag.Int64("user", 1, "user id to issue the token for")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg := config.Load()

	token, err := middleware.IssueToken(cfg.JWTSecret, *userID, *ttl)
	if err != nil {
		log.Fatal("Failed to issue token:", err)
	}
	fmt.Println(token)
}
