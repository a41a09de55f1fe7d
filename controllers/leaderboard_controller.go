package controllers

import (
	"net/http"

	"github.com/clean-alert/api-go/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type LeaderboardController struct {
	DB *gorm.DB
}

func NewLeaderboardController(db *gorm.DB) *LeaderboardController {
	return &LeaderboardController{DB: db}
}

type leaderboardEntry struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// GetLeaderboard ranks the top five contributors by submitted report count.
// Users with no reports never appear; an empty table yields an empty list.
func (lc *LeaderboardController) GetLeaderboard(c *gin.Context) {
	rows := []leaderboardEntry{}

	err := lc.DB.Model(&models.User{}).
		Select("users.fullname AS name, COUNT(reports.id) AS count").
		Joins("JOIN reports ON reports.user_id = users.id").
		Group("users.id").
		Order("count DESC").
		Limit(5).
		Scan(&rows).Error
	if err != nil {
		logrus.WithError(err).Error("leaderboard: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not load leaderboard"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: rows})
}
