package main

import (
	"log"
	"os"
	"quibble/internal/db"
	"quibble/internal/middleware"
	"quibble/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()
	defer db.Close()

	// Initialize Gin
	r := gin.Default()

	// Middleware
	r.Use(middleware.CORS())

	// Routes
	router.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8082"
	}
	log.Printf("Quibble server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
