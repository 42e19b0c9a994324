//go:build unit

package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"reservation-book/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	l := newLogger(config.LogConfig{Level: "info", TimeZone: "Not/AZone"}, &buf)

	router := gin.New()
	router.Use(l.LoggingMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		assert.NotEmpty(t, GetRequestID(c))
		c.Status(http.StatusTeapot)
	})

	t.Run("generates a request id", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		require.Equal(t, http.StatusTeapot, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		assert.Contains(t, buf.String(), "Request completed")
		assert.Contains(t, buf.String(), "status_code=418")
		assert.Contains(t, buf.String(), "level=WARN")
	})

	t.Run("propagates an incoming request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
		assert.Contains(t, buf.String(), "request_id=abc-123")
	})
}
