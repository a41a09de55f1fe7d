package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/clean-alert/api-go/config"
	"github.com/clean-alert/api-go/routes"
	"github.com/clean-alert/api-go/storage"
)

func main() {
	logrus.SetOutput(os.Stdout)
	if os.Getenv("ENV") == "development" {
		logrus.SetLevel(logrus.DebugLevel)
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment")
	}

	// Initialize database
	db := config.InitDB()

	// Photo storage: local uploads dir, or R2 when configured.
	store, err := storage.New()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize photo storage")
	}

	// Create a new Gin router
	r := gin.Default()

	// Initialize routes
	routes.SetupRoutes(r, db, store)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.Infof("Starting server on port %s", port)
	r.Run(":" + port)
}
