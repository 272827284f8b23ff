package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/zagross-express/zagross-admin-api/config"
	"github.com/zagross-express/zagross-admin-api/models"
)

// ListAccessCodes handles GET /api/v1/access-codes - wholesale access
// codes newest first.
func ListAccessCodes(c *gin.Context) {
	db := config.GetDB()

	var codes []models.AccessCode
	if err := db.Order("created_at DESC").Find(&codes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch access codes",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    codes,
	})
}

// CreateAccessCodeRequest represents the request body for creating an access code
type CreateAccessCodeRequest struct {
	Password     string `json:"password" binding:"required,min=4"`
	CustomerName string `json:"customer_name" binding:"required"`
	IsShared     bool   `json:"is_shared"`
}

// CreateAccessCode handles POST /api/v1/access-codes
func CreateAccessCode(c *gin.Context) {
	var req CreateAccessCodeRequest
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

	code := models.AccessCode{
		Password:     strings.TrimSpace(req.Password),
		CustomerName: strings.TrimSpace(req.CustomerName),
		IsShared:     req.IsShared,
		IsActive:     true,
	}

	if err := config.GetDB().Create(&code).Error; err != nil {
		errMsg := strings.ToLower(err.Error())
		if strings.Contains(errMsg, "duplicate") ||
			strings.Contains(errMsg, "unique constraint") ||
			strings.Contains(errMsg, "unique") {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "CODE_EXISTS",
					"message": "An access code with this password already exists",
				},
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create access code",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    code,
	})
}

// UpdateAccessCodeRequest represents the request body for updating an access code
type UpdateAccessCodeRequest struct {
	IsActive    *bool `json:"is_active"`
	IsShared    *bool `json:"is_shared"`
	ResetDevice bool  `json:"reset_device"`
}

// UpdateAccessCode handles PATCH /api/v1/access-codes/:id - toggles
// the active/shared flags or clears the bound device so the code can
// be used on a new phone.
func UpdateAccessCode(c *gin.Context) {
	db := config.GetDB()

	var code models.AccessCode
	if err := db.First(&code, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CODE_NOT_FOUND",
				"message": "Access code not found",
			},
		})
		return
	}

	var req UpdateAccessCodeRequest
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

	if req.IsActive != nil {
		code.IsActive = *req.IsActive
	}
	if req.IsShared != nil {
		code.IsShared = *req.IsShared
	}
	if req.ResetDevice {
		code.DeviceID = nil
	}

	if err := db.Save(&code).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update access code",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    code,
	})
}

// DeleteAccessCode handles DELETE /api/v1/access-codes/:id
func DeleteAccessCode(c *gin.Context) {
	db := config.GetDB()

	var code models.AccessCode
	if err := db.First(&code, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CODE_NOT_FOUND",
				"message": "Access code not found",
			},
		})
		return
	}

	if err := db.Delete(&code).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete access code",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"deleted": true},
	})
}
