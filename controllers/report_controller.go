package controllers

import (
	"errors"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/clean-alert/api-go/models"
	"github.com/clean-alert/api-go/storage"
	"github.com/clean-alert/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ReportController struct {
	DB    *gorm.DB
	Store storage.Storage
}

type CreateReportRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	Location    string `form:"location"`
	Priority    string `form:"priority"`
}

// reportRow is a Report annotated with the aggregates the clients render.
type reportRow struct {
	models.Report
	ReporterName string `json:"reporter_name"`
	LikeCount    int64  `gorm:"column:like_count" json:"likeCount"`
}

func NewReportController(db *gorm.DB, store storage.Storage) *ReportController {
	return &ReportController{DB: db, Store: store}
}

// CreateReport accepts the multipart submission from the mobile app. The
// photo is optional; the owner is always the authenticated principal.
func (rc *ReportController) CreateReport(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	var req CreateReportRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var imageName string
	if fileHeader, err := c.FormFile("image"); err == nil {
		imageName = storage.Filename(fileHeader.Filename)

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Could not read uploaded image"})
			return
		}
		defer file.Close()

		if err := rc.Store.Save(c.Request.Context(), imageName, file); err != nil {
			logrus.WithError(err).Error("create report: image save failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not store image"})
			return
		}
	}

	report := models.Report{
		UserID:      user.UserID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Priority:    req.Priority,
		Image:       imageName,
		Status:      models.ReportStatusPending,
		CreatedAt:   time.Now(),
	}

	if err := rc.DB.Create(&report).Error; err != nil {
		// Don't leave an orphaned photo behind when the insert fails.
		if imageName != "" {
			_ = rc.Store.Delete(c.Request.Context(), imageName)
		}
		logrus.WithError(err).Error("create report: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not submit report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Report submitted"})
}

// ListReports returns every report newest first, annotated with like counts
// and the reporter's name. status and priority query params filter the list.
func (rc *ReportController) ListReports(c *gin.Context) {
	query := rc.DB.Model(&models.Report{}).
		Select("reports.*, users.fullname AS reporter_name, " +
			"(SELECT COUNT(*) FROM likes WHERE likes.report_id = reports.id) AS like_count").
		Joins("JOIN users ON users.id = reports.user_id")

	if status := c.Query("status"); status != "" {
		query = query.Where("reports.status = ?", status)
	}
	if priority := c.Query("priority"); priority != "" {
		query = query.Where("reports.priority = ?", priority)
	}

	rows := []reportRow{}
	if err := query.Order("reports.created_at DESC").Find(&rows).Error; err != nil {
		logrus.WithError(err).Error("list reports: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not load reports"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: rows})
}

// ListUserReports returns one user's reports. Callers only see their own
// history unless they hold the admin role.
func (rc *ReportController) ListUserReports(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid user id"})
		return
	}

	if user.Role != utils.RoleAdmin && user.UserID != uint(userID) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Cannot view another user's reports"})
		return
	}

	reports := []models.Report{}
	if err := rc.DB.Where("user_id = ?", uint(userID)).Order("created_at DESC").Find(&reports).Error; err != nil {
		logrus.WithError(err).Error("list user reports: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not load reports"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: reports})
}

// ResolveReport closes a report with an explanatory note. Re-resolving simply
// overwrites the note and timestamp; there is no unresolve.
func (rc *ReportController) ResolveReport(c *gin.Context) {
	var input struct {
		AdminMessage string `json:"admin_message" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var report models.Report
	if err := rc.DB.First(&report, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Report not found"})
			return
		}
		logrus.WithError(err).Error("resolve report: lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not resolve report"})
		return
	}

	updates := map[string]interface{}{
		"status":      models.ReportStatusResolved,
		"admin_notes": input.AdminMessage,
		"resolved_at": time.Now(),
	}

	if err := rc.DB.Model(&report).Updates(updates).Error; err != nil {
		logrus.WithError(err).Error("resolve report: update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not resolve report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Report resolved"})
}

// DeleteReport hard-deletes a report. Only the owner or an admin may do it,
// and deleting a missing id reports failure instead of pretending success.
func (rc *ReportController) DeleteReport(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	var report models.Report
	if err := rc.DB.First(&report, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Report not found"})
			return
		}
		logrus.WithError(err).Error("delete report: lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not delete report"})
		return
	}

	if user.Role != utils.RoleAdmin && user.UserID != report.UserID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Cannot delete another user's report"})
		return
	}

	if err := rc.DB.Delete(&report).Error; err != nil {
		logrus.WithError(err).Error("delete report: delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not delete report"})
		return
	}

	// Best effort; the row is already gone and an orphaned file is harmless.
	if report.Image != "" {
		_ = rc.Store.Delete(c.Request.Context(), report.Image)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Report deleted"})
}

// ServeUpload streams a stored photo from whichever storage backend is
// active, keeping GET /uploads/:filename stable across backends.
func (rc *ReportController) ServeUpload(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))

	reader, err := rc.Store.Open(c.Request.Context(), filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "File not found"})
			return
		}
		logrus.WithError(err).Error("serve upload: open failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not read file"})
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.DataFromReader(http.StatusOK, -1, contentType, reader, nil)
}
