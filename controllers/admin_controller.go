package controllers

import (
	"net/http"
	"time"

	"github.com/clean-alert/api-go/models"
	"github.com/clean-alert/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// Login verifies admin credentials through the same bcrypt path as user
// logins and issues a token with the admin role claim.
func (ac *AdminController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var admin models.Admin
	if err := ac.DB.Where("email = ?", input.Email).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateAccessToken(admin.ID, utils.RoleAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"admin": gin.H{
			"id":    admin.ID,
			"email": admin.Email,
		},
	})
}

// Stats returns the dashboard counters in one aggregate query. Legacy rows
// with NULL or empty status predate the pending default and count as pending.
func (ac *AdminController) Stats(c *gin.Context) {
	var stats struct {
		Total    int64 `json:"total"`
		Resolved int64 `json:"resolved"`
		Pending  int64 `json:"pending"`
	}

	err := ac.DB.Model(&models.Report{}).
		Select("COUNT(*) AS total, " +
			"COALESCE(SUM(CASE WHEN status = 'resolved' THEN 1 ELSE 0 END), 0) AS resolved, " +
			"COALESCE(SUM(CASE WHEN status = 'pending' OR status IS NULL OR status = '' THEN 1 ELSE 0 END), 0) AS pending").
		Scan(&stats).Error
	if err != nil {
		logrus.WithError(err).Error("stats: aggregate query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not load stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

func (ac *AdminController) ListUsers(c *gin.Context) {
	users := []struct {
		ID        uint      `json:"id"`
		FullName  string    `gorm:"column:fullname" json:"fullname"`
		Email     string    `json:"email"`
		CreatedAt time.Time `json:"created_at"`
	}{}

	err := ac.DB.Model(&models.User{}).
		Select("id, fullname, email, created_at").
		Order("created_at DESC").
		Scan(&users).Error
	if err != nil {
		logrus.WithError(err).Error("users: list query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not load users"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: users})
}

// Export returns a flat report listing for offline analysis. The dashboard
// consumes the bare array, so no envelope here.
func (ac *AdminController) Export(c *gin.Context) {
	rows := []struct {
		ID        uint      `json:"id"`
		Title     string    `json:"title"`
		Location  string    `json:"location"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"created_at"`
	}{}

	err := ac.DB.Model(&models.Report{}).
		Select("id, title, location, status, created_at").
		Order("created_at DESC").
		Scan(&rows).Error
	if err != nil {
		logrus.WithError(err).Error("export: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not export reports"})
		return
	}

	c.JSON(http.StatusOK, rows)
}
