package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zagross-express/zagross-admin-api/config"
	"github.com/zagross-express/zagross-admin-api/models"
)

// CustomerSummary is a profile enriched with its order activity.
type CustomerSummary struct {
	models.Profile
	OrderCount int64   `json:"order_count"`
	TotalSpent float64 `json:"total_spent"`
}

// ListCustomers handles GET /api/v1/customers - lists customer
// profiles with order counts and the total value of their completed
// orders (product + shipping + fee + benefit).
func ListCustomers(c *gin.Context) {
	db := config.GetDB()

	var profiles []models.Profile
	if err := db.Order("created_at DESC").Find(&profiles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch customers",
			},
		})
		return
	}

	summaries := make([]CustomerSummary, 0, len(profiles))
	for _, p := range profiles {
		var count int64
		db.Model(&models.Order{}).Where("user_id = ?", p.ID).Count(&count)

		var spent float64
		db.Model(&models.Order{}).
			Where("user_id = ? AND status = ?", p.ID, models.StatusCompleted).
			Select("COALESCE(SUM(COALESCE(product_price,0) + COALESCE(shipping_cost,0) + COALESCE(transfer_fee,0) + COALESCE(admin_benefit,0)), 0)").
			Scan(&spent)

		summaries = append(summaries, CustomerSummary{
			Profile:    p,
			OrderCount: count,
			TotalSpent: spent,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    summaries,
	})
}

// GetCustomerOrders handles GET /api/v1/customers/:id/orders - the
// order history panel on the customer screen.
func GetCustomerOrders(c *gin.Context) {
	db := config.GetDB()

	var profile models.Profile
	if err := db.First(&profile, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CUSTOMER_NOT_FOUND",
				"message": "Customer not found",
			},
		})
		return
	}

	var orders []models.Order
	if err := db.Where("user_id = ?", profile.ID).Order("created_at DESC").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch customer orders",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"customer": profile,
			"orders":   orders,
		},
	})
}
