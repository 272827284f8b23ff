package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zagross-express/zagross-admin-api/models"
	"github.com/zagross-express/zagross-admin-api/services"
)

func TestListCustomers(t *testing.T) {
	db := setupTestDB(t)
	services.NewMockNotifier().SetAsMockForTesting()

	spender := seedCustomer(t, db, "Narin Qadir")
	seedCustomer(t, db, "Hawre Aziz")

	completed := seedOrder(t, db, spender.ID, models.StatusCompleted, models.ShippingSea)
	db.Model(&completed).Updates(map[string]interface{}{
		"product_price": 100, "shipping_cost": 20, "transfer_fee": 5, "admin_benefit": 10,
	})
	seedOrder(t, db, spender.ID, models.StatusPending, models.ShippingSea)

	router := setupTestRouter()
	router.GET("/customers", mockAuthMiddleware("auth0|admin", "admin"), ListCustomers)

	w := performJSON(router, http.MethodGet, "/customers", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := parseResponse(t, w)["data"].([]interface{})
	assert.Len(t, data, 2)

	byName := map[string]map[string]interface{}{}
	for _, item := range data {
		summary := item.(map[string]interface{})
		byName[summary["full_name"].(string)] = summary
	}

	// Pending orders count toward activity but not toward spend.
	assert.Equal(t, float64(2), byName["Narin Qadir"]["order_count"])
	assert.Equal(t, float64(135), byName["Narin Qadir"]["total_spent"])

	assert.Equal(t, float64(0), byName["Hawre Aziz"]["order_count"])
	assert.Equal(t, float64(0), byName["Hawre Aziz"]["total_spent"])
}

func TestGetCustomerOrders(t *testing.T) {
	db := setupTestDB(t)
	services.NewMockNotifier().SetAsMockForTesting()

	customer := seedCustomer(t, db, "Narin Qadir")
	other := seedCustomer(t, db, "Hawre Aziz")
	seedOrder(t, db, customer.ID, models.StatusPending, models.ShippingSea)
	seedOrder(t, db, customer.ID, models.StatusQuoted, models.ShippingAir)
	seedOrder(t, db, other.ID, models.StatusPending, models.ShippingSea)

	router := setupTestRouter()
	router.GET("/customers/:id/orders", mockAuthMiddleware("auth0|admin", "admin"), GetCustomerOrders)

	t.Run("Returns only that customer's orders", func(t *testing.T) {
		w := performJSON(router, http.MethodGet, "/customers/"+customer.ID+"/orders", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		data := parseResponse(t, w)["data"].(map[string]interface{})

		profile := data["customer"].(map[string]interface{})
		assert.Equal(t, "Narin Qadir", profile["full_name"])
		assert.Len(t, data["orders"].([]interface{}), 2)
	})

	t.Run("Fail with unknown customer", func(t *testing.T) {
		w := performJSON(router, http.MethodGet, "/customers/missing/orders", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "CUSTOMER_NOT_FOUND", errorCode(parseResponse(t, w)))
	})
}
