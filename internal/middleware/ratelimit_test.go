package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(2)
	router := gin.New()
	router.GET("/limited", limiter.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	doGet := func() int {
		req := httptest.NewRequest("GET", "/limited", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, doGet())
	assert.Equal(t, http.StatusOK, doGet())
	assert.Equal(t, http.StatusTooManyRequests, doGet())
}

func TestRateLimit_SeparateClients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(1)
	router := gin.New()
	router.GET("/limited", limiter.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	doGet := func(addr string) int {
		req := httptest.NewRequest("GET", "/limited", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, doGet("203.0.113.7:1234"))
	assert.Equal(t, http.StatusTooManyRequests, doGet("203.0.113.7:1234"))
	assert.Equal(t, http.StatusOK, doGet("203.0.113.8:1234"))
}
