package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zagross-express/zagross-admin-api/models"
	"github.com/zagross-express/zagross-admin-api/services"
)

func TestUpdateSetting(t *testing.T) {
	db := setupTestDB(t)
	services.NewMockNotifier().SetAsMockForTesting()

	router := setupTestRouter()
	router.PUT("/settings/:key", mockAuthMiddleware("auth0|admin1", "admin"), UpdateSetting)
	router.GET("/settings", mockAuthMiddleware("auth0|admin1", "admin"), GetSettings)

	t.Run("Creates the CBM price setting", func(t *testing.T) {
		w := performJSON(router, http.MethodPut, "/settings/cbm_price", map[string]interface{}{
			"value": "145",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		data := parseResponse(t, w)["data"].(map[string]interface{})
		assert.Equal(t, "cbm_price", data["key"])
		assert.Equal(t, "145", data["value"])
		assert.Equal(t, "auth0|admin1", data["updated_by"])
	})

	t.Run("Overwrites an existing value", func(t *testing.T) {
		w := performJSON(router, http.MethodPut, "/settings/cbm_price", map[string]interface{}{
			"value": "150",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		var setting models.Setting
		assert.NoError(t, db.First(&setting, "key = ?", models.SettingCBMPrice).Error)
		assert.Equal(t, "150", setting.Value)

		var count int64
		db.Model(&models.Setting{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Rejects a non-numeric value", func(t *testing.T) {
		w := performJSON(router, http.MethodPut, "/settings/cbm_price", map[string]interface{}{
			"value": "cheap",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(parseResponse(t, w)))
	})

	t.Run("Rejects a zero exchange rate", func(t *testing.T) {
		w := performJSON(router, http.MethodPut, "/settings/rmb_exchange_rate", map[string]interface{}{
			"value": "0",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(parseResponse(t, w)))
	})

	t.Run("Rejects an unknown key", func(t *testing.T) {
		w := performJSON(router, http.MethodPut, "/settings/vat_rate", map[string]interface{}{
			"value": "7",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "SETTING_NOT_FOUND", errorCode(parseResponse(t, w)))
	})

	t.Run("Lists the stored settings", func(t *testing.T) {
		w := performJSON(router, http.MethodGet, "/settings", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		data := parseResponse(t, w)["data"].([]interface{})
		assert.Len(t, data, 1)
	})
}

func TestBroadcastNotification(t *testing.T) {
	setupTestDB(t)
	notifier := services.NewMockNotifier()
	notifier.SetAsMockForTesting()

	router := setupTestRouter()
	router.POST("/notifications/broadcast", mockAuthMiddleware("auth0|admin", "admin"), BroadcastNotification)

	t.Run("Sends the broadcast", func(t *testing.T) {
		w := performJSON(router, http.MethodPost, "/notifications/broadcast", map[string]interface{}{
			"title": "Eid hours",
			"body":  "The office closes early this week.",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		broadcasts := notifier.Broadcasts()
		assert.Len(t, broadcasts, 1)
		assert.Equal(t, "Eid hours", broadcasts[0][0])
		assert.Equal(t, "The office closes early this week.", broadcasts[0][1])
	})

	t.Run("Fail without a body", func(t *testing.T) {
		w := performJSON(router, http.MethodPost, "/notifications/broadcast", map[string]interface{}{
			"title": "Eid hours",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(parseResponse(t, w)))
	})
}
