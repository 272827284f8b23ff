package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setClaims(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", "auth0|user123")
		c.Set("validated_claims", &validator.ValidatedClaims{
			CustomClaims: &CustomClaims{Role: role},
		})
		c.Next()
	}
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		middleware     []gin.HandlerFunc
		expectedStatus int
	}{
		{
			name:           "Admin passes",
			middleware:     []gin.HandlerFunc{setClaims("admin"), RequireAdmin()},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Customer role is forbidden",
			middleware:     []gin.HandlerFunc{setClaims("customer"), RequireAdmin()},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Empty role is forbidden",
			middleware:     []gin.HandlerFunc{setClaims(""), RequireAdmin()},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Missing claims are unauthorized",
			middleware:     []gin.HandlerFunc{RequireAdmin()},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			handlers := append(tt.middleware, func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"success": true})
			})
			router.GET("/protected", handlers...)

			req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestGetUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Returns the stored user id", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set("user_id", "auth0|user123")

		userID, err := GetUserID(c)
		assert.NoError(t, err)
		assert.Equal(t, "auth0|user123", userID)
	})

	t.Run("Errors when missing", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		_, err := GetUserID(c)
		assert.Error(t, err)

		var authErr *AuthError
		assert.ErrorAs(t, err, &authErr)
		assert.Equal(t, "MISSING_USER_ID", authErr.Code)
	})

	t.Run("Errors on a non-string value", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set("user_id", 42)

		_, err := GetUserID(c)
		assert.Error(t, err)
	})
}

func TestHasScope(t *testing.T) {
	claims := CustomClaims{Scope: "read:orders write:orders"}

	assert.True(t, claims.HasScope("read:orders"))
	assert.True(t, claims.HasScope("write:orders"))
	assert.False(t, claims.HasScope("delete:orders"))
}
