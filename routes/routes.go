package routes

import (
	"net/http"

	"github.com/clean-alert/api-go/config"
	"github.com/clean-alert/api-go/controllers"
	"github.com/clean-alert/api-go/middleware"
	"github.com/clean-alert/api-go/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, store storage.Storage) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	adminController := controllers.NewAdminController(db)
	reportController := controllers.NewReportController(db, store)
	interactionController := controllers.NewInteractionController(db)
	leaderboardController := controllers.NewLeaderboardController(db)

	r.Use(middleware.CORSMiddleware(config.AllowedOrigins()))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "CleanAlert API running...")
	})

	// Uploaded photos; filenames are server-generated, never user input.
	r.GET("/uploads/:filename", reportController.ServeUpload)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/auth/register", authController.Register)
		public.POST("/auth/login", authController.Login)
		public.POST("/auth/refresh", authController.RefreshToken)
		public.POST("/auth/logout", authController.Logout)
		public.POST("/admin/login", adminController.Login)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		SetupReportRoutes(protected, reportController, interactionController, leaderboardController)
		SetupAdminRoutes(protected, adminController, reportController)
	}
}
