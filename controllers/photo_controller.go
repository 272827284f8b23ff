package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zagross-express/zagross-admin-api/models"
	"github.com/zagross-express/zagross-admin-api/services"
)

// UploadOrderPhotos handles POST /api/v1/orders/:id/photos - attaches
// warehouse photos taken when the parcel was received in China. At
// most 6 photos per order; a batch larger than the remaining slots is
// truncated. Uploads run sequentially and each success is persisted
// immediately, so a failure partway through keeps the earlier photos
// referenced.
func UploadOrderPhotos(c *gin.Context) {
	order, ok := fetchOrder(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "Expected multipart form data",
			},
		})
		return
	}

	files := form.File["photos"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "At least one photo is required",
			},
		})
		return
	}

	remaining := models.MaxReceivedChinaPhotos - len(order.ReceivedChinaPhotoURLs)
	if remaining <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PHOTO_LIMIT_REACHED",
				"message": "This order already has the maximum of 6 photos",
			},
		})
		return
	}
	if len(files) > remaining {
		files = files[:remaining]
	}

	for _, fileHeader := range files {
		if err := services.ValidateImageFile(fileHeader); err != nil {
			uploadErr := err.(*services.FileUploadError)
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    uploadErr.Code,
					"message": uploadErr.Message,
				},
				"data": order,
			})
			return
		}

		url, err := services.GetStorage().UploadFile("orders/"+order.ID, fileHeader)
		if err != nil {
			// Earlier photos in the batch stay referenced.
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UPLOAD_FAILED",
					"message": "Failed to upload photo",
				},
				"data": order,
			})
			return
		}

		order.ReceivedChinaPhotoURLs = append(order.ReceivedChinaPhotoURLs, url)
		if !saveOrder(c, order) {
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// RemoveOrderPhotoRequest represents the request body for removing a photo
type RemoveOrderPhotoRequest struct {
	URL string `json:"url" binding:"required"`
}

// RemoveOrderPhoto handles DELETE /api/v1/orders/:id/photos - drops a
// photo URL from the order. The stored object is left in place, same
// as the dashboard always behaved.
func RemoveOrderPhoto(c *gin.Context) {
	order, ok := fetchOrder(c)
	if !ok {
		return
	}

	var req RemoveOrderPhotoRequest
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

	next := make(models.StringList, 0, len(order.ReceivedChinaPhotoURLs))
	found := false
	for _, u := range order.ReceivedChinaPhotoURLs {
		if u == req.URL {
			found = true
			continue
		}
		next = append(next, u)
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PHOTO_NOT_FOUND",
				"message": "Photo not found on this order",
			},
		})
		return
	}

	order.ReceivedChinaPhotoURLs = next

	if !saveOrder(c, order) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}
