package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/zagross-express/zagross-admin-api/config"
	"github.com/zagross-express/zagross-admin-api/middleware"
	"github.com/zagross-express/zagross-admin-api/models"
	"github.com/zagross-express/zagross-admin-api/services"
	"gorm.io/gorm/clause"
)

// GetSettings handles GET /api/v1/settings - returns all calculator
// settings the customer app reads.
func GetSettings(c *gin.Context) {
	db := config.GetDB()

	var settings []models.Setting
	if err := db.Find(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch settings",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    settings,
	})
}

// UpdateSettingRequest represents the request body for updating a setting
type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

// UpdateSetting handles PUT /api/v1/settings/:key - upserts one of the
// known setting keys. The CBM price must be ≥ 0; the RMB exchange rate
// must be > 0.
func UpdateSetting(c *gin.Context) {
	key := c.Param("key")
	if key != models.SettingCBMPrice && key != models.SettingRMBExchangeRate {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SETTING_NOT_FOUND",
				"message": "Unknown setting key",
			},
		})
		return
	}

	var req UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	value := strings.TrimSpace(req.Value)
	num, err := strconv.ParseFloat(value, 64)
	if err != nil || num < 0 || (key == models.SettingRMBExchangeRate && num <= 0) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Please enter a valid number for this setting",
			},
		})
		return
	}

	setting := models.Setting{Key: key, Value: value}
	if adminID, err := middleware.GetUserID(c); err == nil {
		setting.UpdatedBy = &adminID
	}

	db := config.GetDB()
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_by", "updated_at"}),
	}).Create(&setting).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to save setting",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    setting,
	})
}

// BroadcastRequest represents the request body for a broadcast push
type BroadcastRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

// BroadcastNotification handles POST /api/v1/notifications/broadcast -
// sends a push to every registered device. Best-effort like all
// notification dispatch.
func BroadcastNotification(c *gin.Context) {
	var req BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	services.GetNotifier().Broadcast(strings.TrimSpace(req.Title), strings.TrimSpace(req.Body))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"sent": true},
	})
}
