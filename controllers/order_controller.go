package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/zagross-express/zagross-admin-api/config"
	"github.com/zagross-express/zagross-admin-api/models"
)

// ListOrders handles GET /api/v1/orders - lists orders newest first.
// Supports ?status= filtering and ?q= search over the full id, the
// 8-character short reference, and the tracking number.
func ListOrders(c *gin.Context) {
	db := config.GetDB()

	query := db.Preload("Customer").Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		if !models.OrderStatus(status).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "Unknown order status",
				},
			})
			return
		}
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch orders",
			},
		})
		return
	}

	if q := strings.ToLower(strings.TrimSpace(c.Query("q"))); q != "" {
		filtered := make([]models.Order, 0, len(orders))
		for _, o := range orders {
			track := ""
			if o.TrackingNumber != nil {
				track = strings.ToLower(*o.TrackingNumber)
			}
			if strings.Contains(strings.ToLower(o.ID), q) ||
				strings.Contains(strings.ToLower(o.ShortID()), q) ||
				(track != "" && strings.Contains(track, q)) {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
	})
}

// GetOrder handles GET /api/v1/orders/:id - fetches one order
func GetOrder(c *gin.Context) {
	db := config.GetDB()

	var order models.Order
	if err := db.Preload("Customer").First(&order, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// GetOrderStats handles GET /api/v1/orders/stats - the dashboard header counters
func GetOrderStats(c *gin.Context) {
	db := config.GetDB()

	var totalOrders, pendingOrders, completedOrders, totalCustomers int64
	if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to count orders",
			},
		})
		return
	}
	db.Model(&models.Order{}).Where("status = ?", models.StatusPending).Count(&pendingOrders)
	db.Model(&models.Order{}).Where("status = ?", models.StatusCompleted).Count(&completedOrders)
	db.Model(&models.Profile{}).Count(&totalCustomers)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"total_orders":     totalOrders,
			"pending_orders":   pendingOrders,
			"completed_orders": completedOrders,
			"total_customers":  totalCustomers,
		},
	})
}
