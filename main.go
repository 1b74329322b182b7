package main

import (
	"fmt"
	"log"

	"backend/configs"
	"backend/middlewares"
	"backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB (best-effort: the service still serves fallback content without it)
	db, err := configs.ConnectMongo(cfg)
	if err != nil {
		log.Println("⚠️ database unavailable, serving fallback content:", err)
	} else if db == nil {
		log.Println("⚠️ DATABASE_URL not set, serving fallback content")
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.RequestID())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
