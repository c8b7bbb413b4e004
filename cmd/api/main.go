package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Endogen/antique-catalogue-sub001/internal/api/middleware"
	"github.com/Endogen/antique-catalogue-sub001/internal/api/routes"
	"github.com/Endogen/antique-catalogue-sub001/internal/config"
	"github.com/Endogen/antique-catalogue-sub001/internal/config/db"
	"github.com/Endogen/antique-catalogue-sub001/internal/storage"
)

// @title Catalogue API
// @version 1.0
// @description Multi-tenant collection catalogue with schema-driven item metadata.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey AdminAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()
	storage.InitMinio()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(router)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
