package routes

import (
	"github.com/clean-alert/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupReportRoutes(protected *gin.RouterGroup, reportController *controllers.ReportController, interactionController *controllers.InteractionController, leaderboardController *controllers.LeaderboardController) {
	reports := protected.Group("/reports")
	{
		reports.GET("", reportController.ListReports)
		reports.POST("", reportController.CreateReport)
		reports.GET("/user/:userId", reportController.ListUserReports)
		reports.POST("/like", interactionController.ToggleLike)
		reports.GET("/leaderboard", leaderboardController.GetLeaderboard)
		// Owner-or-admin, checked in the handler.
		reports.DELETE("/:id", reportController.DeleteReport)
	}
}
