package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func record(write func(c *gin.Context)) (*httptest.ResponseRecorder, map[string]interface{}) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	write(c)

	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestSuccessEnvelope(t *testing.T) {
	w, body := record(func(c *gin.Context) {
		Success(c, http.StatusOK, "Resource retrieved successfully", gin.H{"id": "abc"})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Resource retrieved successfully", body["message"])
	assert.NotNil(t, body["data"])
	assert.NotContains(t, body, "meta")
	assert.NotContains(t, body, "errors")
}

func TestSuccessWithMetaEnvelope(t *testing.T) {
	_, body := record(func(c *gin.Context) {
		SuccessWithMeta(c, http.StatusOK, "ok", []string{}, &Meta{
			Page: 2, Limit: 10, Total: 25, TotalPages: 3,
		})
	})

	meta, ok := body["meta"].(map[string]interface{})
	assert.True(t, ok)
	assert.EqualValues(t, 2, meta["page"])
	assert.EqualValues(t, 25, meta["total"])
	assert.EqualValues(t, 3, meta["totalPages"])
}

func TestErrorEnvelope(t *testing.T) {
	w, body := record(func(c *gin.Context) {
		NotFound(c, "Specialist not found")
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Specialist not found", body["message"])
	assert.NotContains(t, body, "data")
}

func TestValidationErrorEnvelope(t *testing.T) {
	w, body := record(func(c *gin.Context) {
		ValidationError(c, "Validation failed", []FieldError{
			{Field: "name", Message: "name is required"},
		})
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	errs, ok := body["errors"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, errs, 1)

	first := errs[0].(map[string]interface{})
	assert.Equal(t, "name", first["field"])
	assert.Equal(t, "name is required", first["message"])
	assert.NotContains(t, first, "code")
}
