package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
	"github.com/zagross-express/zagross-admin-api/config"
	"github.com/zagross-express/zagross-admin-api/models"
	"gorm.io/gorm"
)

// FinancialStats aggregates order money across a period. Revenue is
// what the customer pays less the admin margin (product + shipping +
// fee), cost is what the business pays out (product + shipping), and
// profit is the admin benefit. Only completed orders count; everything
// else is pending revenue.
type FinancialStats struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalCosts      float64 `json:"total_costs"`
	TotalProfit     float64 `json:"total_profit"`
	CompletedOrders int     `json:"completed_orders"`
	PendingRevenue  float64 `json:"pending_revenue"`
}

func financeQuery(db *gorm.DB, period string) *gorm.DB {
	query := db.Preload("Customer").Order("created_at DESC")
	switch period {
	case "month":
		query = query.Where("created_at >= ?", time.Now().AddDate(0, -1, 0))
	case "week":
		query = query.Where("created_at >= ?", time.Now().AddDate(0, 0, -7))
	}
	return query
}

func computeStats(orders []models.Order) FinancialStats {
	var stats FinancialStats
	for _, o := range orders {
		revenue := floatOrZero(o.ProductPrice) + floatOrZero(o.ShippingCost) + floatOrZero(o.TransferFee)
		cost := floatOrZero(o.ProductPrice) + floatOrZero(o.ShippingCost)
		profit := floatOrZero(o.AdminBenefit)

		if o.Status == models.StatusCompleted {
			stats.TotalRevenue += revenue
			stats.TotalCosts += cost
			stats.TotalProfit += profit
			stats.CompletedOrders++
		} else {
			stats.PendingRevenue += revenue
		}
	}
	return stats
}

// GetFinancialSummary handles GET /api/v1/finance/summary - supports
// ?period=all|month|week, defaulting to month like the dashboard.
func GetFinancialSummary(c *gin.Context) {
	period := c.DefaultQuery("period", "month")
	if period != "all" && period != "month" && period != "week" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Period must be one of all, month, week",
			},
		})
		return
	}

	var orders []models.Order
	if err := financeQuery(config.GetDB(), period).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch financial data",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"stats":  computeStats(orders),
			"orders": orders,
		},
	})
}

// ExportFinancialReport handles GET /api/v1/finance/export - streams
// the period's orders as an xlsx workbook for the bookkeeper.
func ExportFinancialReport(c *gin.Context) {
	period := c.DefaultQuery("period", "month")
	if period != "all" && period != "month" && period != "week" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Period must be one of all, month, week",
			},
		})
		return
	}

	var orders []models.Order
	if err := financeQuery(config.GetDB(), period).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch financial data",
			},
		})
		return
	}

	f := excelize.NewFile()
	sheet := "Orders"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Order", "Customer", "Status", "Shipping", "Product Price", "Shipping Cost", "Transfer Fee", "Admin Benefit", "Amount Paid", "Created"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, o := range orders {
		name := ""
		if o.Customer != nil {
			name = o.Customer.FullName
		}
		values := []interface{}{
			o.ShortID(), name, string(o.Status), string(o.ShippingMethod),
			floatOrZero(o.ProductPrice), floatOrZero(o.ShippingCost),
			floatOrZero(o.TransferFee), floatOrZero(o.AdminBenefit),
			floatOrZero(o.AmountPaid), o.CreatedAt.Format("2006-01-02"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	stats := computeStats(orders)
	summaryRow := len(orders) + 3
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "Total revenue")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow), stats.TotalRevenue)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow+1), "Total profit")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow+1), stats.TotalProfit)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow+2), "Pending revenue")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow+2), stats.PendingRevenue)

	filename := fmt.Sprintf("zagross-finance-%s-%s.xlsx", period, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		log.Warn().Err(err).Msg("Failed to stream financial export")
	}
}
