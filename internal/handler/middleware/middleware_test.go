//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"voucher-seckill/internal/handler/httperr"
	"voucher-seckill/internal/handler/middleware"
	"voucher-seckill/internal/pkg/config"
	"voucher-seckill/internal/pkg/errs"
	"voucher-seckill/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequireUser(t *testing.T) {
	router := httptest.NewTestEngine()
	router.GET("/me", middleware.RequireUser(), func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		assert.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	tests := []struct {
		name       string
		userID     string
		wantStatus int
	}{
		{"valid id", "42", http.StatusOK},
		{"padded id", " 42 ", http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"not a number", "u-42", http.StatusUnauthorized},
		{"zero", "0", http.StatusUnauthorized},
		{"overflow", "92233720368547758070", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, tt.userID)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestGetUserID_WithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(nil)
	_, ok := middleware.GetUserID(c)
	assert.False(t, ok)
}

func TestLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	router := httptest.NewTestEngine()
	router.Use(middleware.LoggingMiddleware(zap.New(core), config.NewTestConfig().Log))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })

	t.Run("generates a request id and logs at info", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/ok", nil, "42")

		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
		entries := logs.TakeAll()
		if assert.Len(t, entries, 1) {
			assert.Equal(t, zap.InfoLevel, entries[0].Level)
			assert.Equal(t, "42", entries[0].ContextMap()["user_id"])
			assert.Equal(t, int64(http.StatusNoContent), entries[0].ContextMap()["status_code"])
		}
	})

	t.Run("keeps the caller request id and logs 5xx at error", func(t *testing.T) {
		req := httptest.NewRequest(t, http.MethodGet, "/boom", nil)
		req.Header.Set(middleware.HeaderRequestID, "req-1")
		w := httptest.Serve(router, req)

		httptest.AssertHeaders(t, w, map[string]string{middleware.HeaderRequestID: "req-1"})
		entries := logs.TakeAll()
		if assert.Len(t, entries, 1) {
			assert.Equal(t, zap.ErrorLevel, entries[0].Level)
			assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
		}
	})
}

func TestErrorHandlerAndRecovery(t *testing.T) {
	router := httptest.NewTestEngine()
	router.Use(middleware.CustomRecovery(zap.NewNop()), middleware.ErrorHandler())
	router.GET("/panic", func(*gin.Context) { panic("kaboom") })
	router.GET("/sold-out", func(c *gin.Context) {
		httperr.AbortWithDomainError(c, errs.Mark(errs.ErrSoldOut, errs.ErrAdmissionRejected))
	})
	router.GET("/closed", func(c *gin.Context) {
		httperr.AbortWithDomainError(c, errs.Mark(errs.ErrSaleClosed, errs.ErrAdmissionRejected))
	})
	router.GET("/unknown", func(c *gin.Context) {
		httperr.AbortWithDomainError(c, errs.New("surprise"))
	})

	w := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")
	httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")

	w = httptest.PerformRequest(t, router, http.MethodGet, "/sold-out", nil, "")
	httptest.AssertRejection(t, w, http.StatusConflict, "SOLD_OUT")

	w = httptest.PerformRequest(t, router, http.MethodGet, "/closed", nil, "")
	httptest.AssertRejection(t, w, http.StatusForbidden, "SALE_CLOSED")

	w = httptest.PerformRequest(t, router, http.MethodGet, "/unknown", nil, "")
	httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
}

func TestCORSMiddleware(t *testing.T) {
	router := httptest.NewTestEngine()
	router.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Content-Type", middleware.HeaderUserID},
	}, zap.NewNop()))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(t, http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.Serve(router, req)

	httptest.AssertHeaders(t, w, map[string]string{"Access-Control-Allow-Origin": "http://localhost:3000"})
}
