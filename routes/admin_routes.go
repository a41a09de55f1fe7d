package routes

import (
	"github.com/clean-alert/api-go/controllers"
	"github.com/clean-alert/api-go/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers the dashboard-only surface. Everything here
// requires the admin role claim on top of a valid token.
func SetupAdminRoutes(protected *gin.RouterGroup, adminController *controllers.AdminController, reportController *controllers.ReportController) {
	admin := protected.Group("", middleware.AdminRequired())
	{
		admin.PUT("/reports/resolve/:id", reportController.ResolveReport)
		admin.GET("/reports/admin/stats", adminController.Stats)
		admin.GET("/reports/users", adminController.ListUsers)
		admin.GET("/admin/export", adminController.Export)
	}
}
