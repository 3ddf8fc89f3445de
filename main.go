package main

import (
	"fmt"
	"log"

	"github.com/chidough14/laravel-react-ecomm/configs"
	"github.com/chidough14/laravel-react-ecomm/middlewares"
	"github.com/chidough14/laravel-react-ecomm/routes"

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
	if err := configs.SeedDemoCatalog(); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}

	// HTTP
	r := gin.Default()

	// ✅ Enable CORS
	r.Use(middlewares.CORSMiddleware())

	// ✅ Register API routes
	routes.RegisterRoutes(r, db, cfg)

	// ✅ Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
