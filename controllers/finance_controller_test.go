package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zagross-express/zagross-admin-api/models"
	"github.com/zagross-express/zagross-admin-api/services"
)

func TestGetFinancialSummary(t *testing.T) {
	db := setupTestDB(t)
	services.NewMockNotifier().SetAsMockForTesting()
	customer := seedCustomer(t, db, "Rawa Salar")

	completed := seedOrder(t, db, customer.ID, models.StatusCompleted, models.ShippingSea)
	db.Model(&completed).Updates(map[string]interface{}{
		"product_price": 100, "shipping_cost": 20, "transfer_fee": 5, "admin_benefit": 10,
	})

	buying := seedOrder(t, db, customer.ID, models.StatusBuying, models.ShippingAir)
	db.Model(&buying).Updates(map[string]interface{}{
		"product_price": 40, "shipping_cost": 15, "transfer_fee": 5,
	})

	// Unpriced pending order contributes nothing.
	seedOrder(t, db, customer.ID, models.StatusPending, models.ShippingSea)

	router := setupTestRouter()
	router.GET("/finance/summary", mockAuthMiddleware("auth0|admin", "admin"), GetFinancialSummary)

	t.Run("Aggregates completed and pending money", func(t *testing.T) {
		w := performJSON(router, http.MethodGet, "/finance/summary?period=all", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		response := parseResponse(t, w)
		data := response["data"].(map[string]interface{})
		stats := data["stats"].(map[string]interface{})

		assert.Equal(t, float64(125), stats["total_revenue"])
		assert.Equal(t, float64(120), stats["total_costs"])
		assert.Equal(t, float64(10), stats["total_profit"])
		assert.Equal(t, float64(1), stats["completed_orders"])
		assert.Equal(t, float64(60), stats["pending_revenue"])

		assert.Len(t, data["orders"].([]interface{}), 3)
	})

	t.Run("Defaults to the monthly period", func(t *testing.T) {
		w := performJSON(router, http.MethodGet, "/finance/summary", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		stats := parseResponse(t, w)["data"].(map[string]interface{})["stats"].(map[string]interface{})
		// All seeded orders were created just now, so they fall inside the month.
		assert.Equal(t, float64(1), stats["completed_orders"])
	})

	t.Run("Rejects an unknown period", func(t *testing.T) {
		w := performJSON(router, http.MethodGet, "/finance/summary?period=decade", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(parseResponse(t, w)))
	})
}

func TestExportFinancialReport(t *testing.T) {
	db := setupTestDB(t)
	services.NewMockNotifier().SetAsMockForTesting()
	customer := seedCustomer(t, db, "Rawa Salar")

	completed := seedOrder(t, db, customer.ID, models.StatusCompleted, models.ShippingSea)
	db.Model(&completed).Updates(map[string]interface{}{
		"product_price": 100, "shipping_cost": 20, "transfer_fee": 5, "admin_benefit": 10,
	})

	router := setupTestRouter()
	router.GET("/finance/export", mockAuthMiddleware("auth0|admin", "admin"), ExportFinancialReport)

	t.Run("Streams an xlsx attachment", func(t *testing.T) {
		w := performJSON(router, http.MethodGet, "/finance/export?period=all", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
		assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
		assert.NotZero(t, w.Body.Len())
	})

	t.Run("Rejects an unknown period", func(t *testing.T) {
		w := performJSON(router, http.MethodGet, "/finance/export?period=decade", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(parseResponse(t, w)))
	})
}
