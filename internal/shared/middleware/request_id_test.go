package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() (*gin.Engine, *string) {
		var captured string
		router := gin.New()
		router.Use(RequestID())
		router.GET("/", func(c *gin.Context) {
			captured = c.GetString("request_id")
			c.Status(http.StatusOK)
		})
		return router, &captured
	}

	t.Run("generates an id when the header is absent", func(t *testing.T) {
		router, captured := newRouter()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		header := w.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, header)
		assert.Equal(t, header, *captured)

		_, err := uuid.Parse(header)
		assert.NoError(t, err)
	})

	t.Run("propagates an inbound id", func(t *testing.T) {
		router, captured := newRouter()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "caller-supplied-id")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "caller-supplied-id", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "caller-supplied-id", *captured)
	})
}
