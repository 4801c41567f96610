package main

import (
	"fmt"
	"log"

	"github.com/Eduardo-pena2000/parmesana-web-app/configs"
	"github.com/Eduardo-pena2000/parmesana-web-app/middlewares"
	"github.com/Eduardo-pena2000/parmesana-web-app/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.FrontendURL))

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🍕 La Parmesana API running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
