package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "github.com/agentdesk-backend/api/v1"
	"github.com/agentdesk-backend/config"
	"github.com/agentdesk-backend/database"
	"github.com/agentdesk-backend/middleware"
	"github.com/agentdesk-backend/services"
)

func main() {
	// Load .env before anything reads configuration
	config.LoadEnv()

	// Connect and migrate the database
	database.Initialize()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	// CORS configuration - the API serves a mobile client in development
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Health check endpoint
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Agentdesk backend API is running",
			"version": "1.0.0",
		})
	})

	// The simulated request registry lives for the whole process; in-flight
	// simulations are lost on restart
	registry := services.NewRequestRegistry()

	// Register API routes
	api := router.Group("/api")
	v1.RegisterRoutes(api, registry)

	port := config.GetEnv("PORT", "8000")

	log.Printf("🚀 Agentdesk backend starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
