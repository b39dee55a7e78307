package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(requestsPerMinute, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(requestsPerMinute, burst))
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRateLimit(t *testing.T) {
	t.Run("requests inside the burst pass", func(t *testing.T) {
		r := newLimitedRouter(60, 2)

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("exceeding the burst is rejected", func(t *testing.T) {
		r := newLimitedRouter(60, 2)

		var last int
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			r.ServeHTTP(w, req)
			last = w.Code
		}
		assert.Equal(t, http.StatusTooManyRequests, last)
	})

	t.Run("clients are limited independently", func(t *testing.T) {
		r := newLimitedRouter(60, 1)

		first := httptest.NewRecorder()
		reqA := httptest.NewRequest(http.MethodGet, "/ping", nil)
		reqA.Header.Set("X-Forwarded-For", "10.0.0.1")
		r.ServeHTTP(first, reqA)
		assert.Equal(t, http.StatusOK, first.Code)

		second := httptest.NewRecorder()
		reqB := httptest.NewRequest(http.MethodGet, "/ping", nil)
		reqB.Header.Set("X-Forwarded-For", "10.0.0.2")
		r.ServeHTTP(second, reqB)
		assert.Equal(t, http.StatusOK, second.Code)
	})
}
