package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/zagross-express/zagross-admin-api/config"
	"github.com/zagross-express/zagross-admin-api/models"
)

// LinkRequest represents the request body for creating or updating an
// external storefront link.
type LinkRequest struct {
	Name         string  `json:"name" binding:"required"`
	NameAr       *string `json:"name_ar"`
	NameKu       *string `json:"name_ku"`
	ExternalLink string  `json:"external_link" binding:"required,url"`
	ImageURL     *string `json:"image_url"`
	NoteEn       *string `json:"note_en"`
	NoteAr       *string `json:"note_ar"`
	NoteKu       *string `json:"note_ku"`
	DisplayOrder *int    `json:"display_order"`
}

// ListLinks handles GET /api/v1/links - ordered the way the customer
// app displays them.
func ListLinks(c *gin.Context) {
	db := config.GetDB()

	var links []models.ExternalLink
	if err := db.Order("display_order ASC, created_at ASC").Find(&links).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch links",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    links,
	})
}

// CreateLink handles POST /api/v1/links
func CreateLink(c *gin.Context) {
	var req LinkRequest
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

	link := models.ExternalLink{
		Name:         strings.TrimSpace(req.Name),
		NameAr:       req.NameAr,
		NameKu:       req.NameKu,
		ExternalLink: req.ExternalLink,
		ImageURL:     req.ImageURL,
		NoteEn:       req.NoteEn,
		NoteAr:       req.NoteAr,
		NoteKu:       req.NoteKu,
		DisplayOrder: req.DisplayOrder,
	}

	if err := config.GetDB().Create(&link).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create link",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    link,
	})
}

// UpdateLink handles PUT /api/v1/links/:id
func UpdateLink(c *gin.Context) {
	db := config.GetDB()

	var link models.ExternalLink
	if err := db.First(&link, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "LINK_NOT_FOUND",
				"message": "Link not found",
			},
		})
		return
	}

	var req LinkRequest
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

	link.Name = strings.TrimSpace(req.Name)
	link.NameAr = req.NameAr
	link.NameKu = req.NameKu
	link.ExternalLink = req.ExternalLink
	link.ImageURL = req.ImageURL
	link.NoteEn = req.NoteEn
	link.NoteAr = req.NoteAr
	link.NoteKu = req.NoteKu
	link.DisplayOrder = req.DisplayOrder

	if err := db.Save(&link).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update link",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    link,
	})
}

// DeleteLink handles DELETE /api/v1/links/:id
func DeleteLink(c *gin.Context) {
	db := config.GetDB()

	var link models.ExternalLink
	if err := db.First(&link, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "LINK_NOT_FOUND",
				"message": "Link not found",
			},
		})
		return
	}

	if err := db.Delete(&link).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete link",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"deleted": true},
	})
}
