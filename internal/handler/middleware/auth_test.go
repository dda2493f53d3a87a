//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"postify/internal/handler/middleware"
	"postify/internal/pkg/jwt"
	"postify/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(jwtService *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	auth := middleware.NewAuthMiddleware(jwtService)
	router.GET("/protected", auth.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": c.GetString(middleware.AuthSubjectKey)})
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	jwtService := jwt.NewService("test-signing-key", time.Hour)
	router := newAuthRouter(jwtService)

	t.Run("valid bearer token passes and exposes the subject", func(t *testing.T) {
		token, err := jwtService.GenerateToken("admin")
		require.NoError(t, err)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "admin")
	})

	t.Run("missing header is a 401", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Access token required")
	})

	t.Run("tampered token is a 401", func(t *testing.T) {
		token, err := jwt.NewService("other-key", time.Hour).GenerateToken("admin")
		require.NoError(t, err)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid or expired token")
	})

	t.Run("expired token is a 401", func(t *testing.T) {
		token, err := jwt.NewService("test-signing-key", -time.Minute).GenerateToken("admin")
		require.NoError(t, err)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
