package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/clean-alert/api-go/models"
	"github.com/clean-alert/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type InteractionController struct {
	DB *gorm.DB
}

func NewInteractionController(db *gorm.DB) *InteractionController {
	return &InteractionController{DB: db}
}

// ToggleLike inserts or removes the caller's like on a report. Counts are
// never cached; reads recompute the aggregate, so the delta is always ±1.
func (ic *InteractionController) ToggleLike(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	var input struct {
		ReportID uint `json:"report_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var report models.Report
	if err := ic.DB.First(&report, input.ReportID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Report not found"})
		return
	}

	var existingLike models.Like
	err := ic.DB.Where("report_id = ? AND user_id = ?", report.ID, user.UserID).First(&existingLike).Error

	liked := false
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		like := models.Like{
			UserID:    user.UserID,
			ReportID:  report.ID,
			CreatedAt: time.Now(),
		}
		if err := ic.DB.Create(&like).Error; err != nil {
			logrus.WithError(err).Error("toggle like: insert failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not like report"})
			return
		}
		liked = true
	case err != nil:
		logrus.WithError(err).Error("toggle like: lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not toggle like"})
		return
	default:
		if err := ic.DB.Delete(&existingLike).Error; err != nil {
			logrus.WithError(err).Error("toggle like: delete failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not unlike report"})
			return
		}
	}

	var count int64
	ic.DB.Model(&models.Like{}).Where("report_id = ?", report.ID).Count(&count)

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"liked":     liked,
		"likeCount": count,
	})
}
