package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/zagross-express/zagross-admin-api/models"
	"github.com/zagross-express/zagross-admin-api/services"
)

func buildPhotoForm(t *testing.T, filenames []string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, name := range filenames {
		part, err := writer.CreateFormFile("photos", name)
		if err != nil {
			t.Fatalf("Failed to create form file: %v", err)
		}
		if _, err := part.Write([]byte("fake image bytes")); err != nil {
			t.Fatalf("Failed to write form file: %v", err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func performPhotoUpload(router *gin.Engine, orderID string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/orders/"+orderID+"/photos", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUploadOrderPhotos(t *testing.T) {
	db := setupTestDB(t)
	storage := services.NewMockStorage()
	storage.SetAsMockForTesting()
	services.NewMockNotifier().SetAsMockForTesting()
	customer := seedCustomer(t, db, "Zhyar Ali")

	router := setupTestRouter()
	router.POST("/orders/:id/photos", mockAuthMiddleware("auth0|admin", "admin"), UploadOrderPhotos)

	t.Run("Successfully upload a batch", func(t *testing.T) {
		storage.Clear()
		order := seedOrder(t, db, customer.ID, models.StatusReceivedChina, models.ShippingSea)

		body, contentType := buildPhotoForm(t, []string{"box1.jpg", "box2.png"})
		w := performPhotoUpload(router, order.ID, body, contentType)

		assert.Equal(t, http.StatusOK, w.Code)
		data := parseResponse(t, w)["data"].(map[string]interface{})
		urls := data["received_china_photo_urls"].([]interface{})
		assert.Len(t, urls, 2)
		assert.Contains(t, urls[0], "https://test-bucket.s3.us-east-1.amazonaws.com/orders/"+order.ID)
		assert.Equal(t, 2, storage.UploadCount())
	})

	t.Run("Batch is truncated to the remaining slots", func(t *testing.T) {
		storage.Clear()
		order := seedOrder(t, db, customer.ID, models.StatusReceivedChina, models.ShippingSea)
		order.ReceivedChinaPhotoURLs = models.StringList{"https://example.com/a.jpg", "https://example.com/b.jpg", "https://example.com/c.jpg", "https://example.com/d.jpg", "https://example.com/e.jpg"}
		db.Save(&order)

		body, contentType := buildPhotoForm(t, []string{"f1.jpg", "f2.jpg", "f3.jpg"})
		w := performPhotoUpload(router, order.ID, body, contentType)

		assert.Equal(t, http.StatusOK, w.Code)
		data := parseResponse(t, w)["data"].(map[string]interface{})
		urls := data["received_china_photo_urls"].([]interface{})
		assert.Len(t, urls, models.MaxReceivedChinaPhotos)
		assert.Equal(t, 1, storage.UploadCount())
	})

	t.Run("Fail when the gallery is full", func(t *testing.T) {
		storage.Clear()
		order := seedOrder(t, db, customer.ID, models.StatusReceivedChina, models.ShippingSea)
		full := make(models.StringList, models.MaxReceivedChinaPhotos)
		for i := range full {
			full[i] = "https://example.com/photo.jpg"
		}
		order.ReceivedChinaPhotoURLs = full
		db.Save(&order)

		body, contentType := buildPhotoForm(t, []string{"extra.jpg"})
		w := performPhotoUpload(router, order.ID, body, contentType)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "PHOTO_LIMIT_REACHED", errorCode(parseResponse(t, w)))
		assert.Equal(t, 0, storage.UploadCount())
	})

	t.Run("Partial failure keeps the earlier photos", func(t *testing.T) {
		storage.Clear()
		storage.FailAfter(2)
		defer storage.Clear()

		order := seedOrder(t, db, customer.ID, models.StatusReceivedChina, models.ShippingSea)

		body, contentType := buildPhotoForm(t, []string{"p1.jpg", "p2.jpg", "p3.jpg"})
		w := performPhotoUpload(router, order.ID, body, contentType)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "UPLOAD_FAILED", errorCode(parseResponse(t, w)))

		// The two successful uploads before the failure are persisted.
		var saved models.Order
		db.First(&saved, "id = ?", order.ID)
		assert.Len(t, saved.ReceivedChinaPhotoURLs, 2)
	})

	t.Run("Fail with an unsupported file format", func(t *testing.T) {
		storage.Clear()
		order := seedOrder(t, db, customer.ID, models.StatusReceivedChina, models.ShippingSea)

		body, contentType := buildPhotoForm(t, []string{"invoice.pdf"})
		w := performPhotoUpload(router, order.ID, body, contentType)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_FILE_FORMAT", errorCode(parseResponse(t, w)))
	})

	t.Run("Fail with no files", func(t *testing.T) {
		storage.Clear()
		order := seedOrder(t, db, customer.ID, models.StatusReceivedChina, models.ShippingSea)

		body, contentType := buildPhotoForm(t, nil)
		w := performPhotoUpload(router, order.ID, body, contentType)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(parseResponse(t, w)))
	})
}

func TestRemoveOrderPhoto(t *testing.T) {
	db := setupTestDB(t)
	storage := services.NewMockStorage()
	storage.SetAsMockForTesting()
	services.NewMockNotifier().SetAsMockForTesting()
	customer := seedCustomer(t, db, "Zhyar Ali")

	router := setupTestRouter()
	router.DELETE("/orders/:id/photos", mockAuthMiddleware("auth0|admin", "admin"), RemoveOrderPhoto)

	t.Run("Successfully remove a photo reference", func(t *testing.T) {
		order := seedOrder(t, db, customer.ID, models.StatusReceivedChina, models.ShippingSea)
		order.ReceivedChinaPhotoURLs = models.StringList{"https://example.com/a.jpg", "https://example.com/b.jpg"}
		db.Save(&order)

		w := performJSON(router, http.MethodDelete, "/orders/"+order.ID+"/photos", map[string]interface{}{
			"url": "https://example.com/a.jpg",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		data := parseResponse(t, w)["data"].(map[string]interface{})
		urls := data["received_china_photo_urls"].([]interface{})
		assert.Len(t, urls, 1)
		assert.Equal(t, "https://example.com/b.jpg", urls[0])

		// The stored object itself is untouched.
		assert.Empty(t, storage.DeletedKeys())
	})

	t.Run("Fail when the photo is not on the order", func(t *testing.T) {
		order := seedOrder(t, db, customer.ID, models.StatusReceivedChina, models.ShippingSea)

		w := performJSON(router, http.MethodDelete, "/orders/"+order.ID+"/photos", map[string]interface{}{
			"url": "https://example.com/missing.jpg",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "PHOTO_NOT_FOUND", errorCode(parseResponse(t, w)))
	})
}
