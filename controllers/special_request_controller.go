package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/zagross-express/zagross-admin-api/config"
	"github.com/zagross-express/zagross-admin-api/models"
	"github.com/zagross-express/zagross-admin-api/services"
)

// ListSpecialRequests handles GET /api/v1/special-requests - lists
// sourcing requests newest first, optionally filtered by status.
func ListSpecialRequests(c *gin.Context) {
	db := config.GetDB()

	query := db.Preload("Customer").Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var requests []models.SpecialRequest
	if err := query.Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch special requests",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    requests,
	})
}

var specialRequestStatuses = map[string]bool{
	models.RequestQuoted:    true,
	models.RequestReplied:   true,
	models.RequestRejected:  true,
	models.RequestCompleted: true,
}

// RespondSpecialRequest handles POST /api/v1/special-requests/:id/respond
// as a multipart form: status, admin_response, optional quoted_price,
// and an optional attachment uploaded with the reply.
func RespondSpecialRequest(c *gin.Context) {
	db := config.GetDB()

	var request models.SpecialRequest
	if err := db.First(&request, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "REQUEST_NOT_FOUND",
				"message": "Special request not found",
			},
		})
		return
	}

	status := c.PostForm("status")
	if !specialRequestStatuses[status] {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Status must be one of quoted, replied, rejected, completed",
			},
		})
		return
	}

	response := strings.TrimSpace(c.PostForm("admin_response"))
	if response == "" && status != models.RequestRejected {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "A response message is required",
			},
		})
		return
	}

	if priceStr := strings.TrimSpace(c.PostForm("quoted_price")); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "Quoted price must be a number greater than or equal to 0",
				},
			})
			return
		}
		request.QuotedPrice = &price
	}

	if fileHeader, err := c.FormFile("attachment"); err == nil {
		if err := services.ValidateImageFile(fileHeader); err != nil {
			uploadErr := err.(*services.FileUploadError)
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    uploadErr.Code,
					"message": uploadErr.Message,
				},
			})
			return
		}

		url, err := services.GetStorage().UploadFile("special-requests/"+request.ID, fileHeader)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UPLOAD_FAILED",
					"message": "Failed to upload attachment",
				},
			})
			return
		}

		// A replaced attachment is orphaned, remove its object.
		if old := request.AdminAttachmentURL; old != nil && *old != "" {
			if err := services.GetStorage().DeleteFile(*old); err != nil {
				log.Warn().Err(err).Str("request_id", request.ID).Msg("Failed to delete replaced attachment")
			}
		}
		request.AdminAttachmentURL = &url
	}

	request.Status = status
	if response != "" {
		request.AdminResponse = &response
	}

	if err := db.Save(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update special request",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    request,
	})
}
