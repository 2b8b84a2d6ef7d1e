package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidator(t *testing.T) {
	// Should not panic
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestHandleValidationError(t *testing.T) {
	type TestStruct struct {
		Account  string `json:"account" binding:"required"`
		Priority string `json:"priority" binding:"omitempty,oneof=Highest High Medium Low"`
	}

	SetupValidator()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		var req TestStruct
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	t.Run("reports missing required field by its json name", func(t *testing.T) {
		body := strings.NewReader(`{"priority": "High"}`)
		req := httptest.NewRequest("POST", "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp["error"], "account")
		assert.Contains(t, resp["error"], "This field is required")
	})

	t.Run("reports disallowed enum value", func(t *testing.T) {
		body := strings.NewReader(`{"account": "Acme", "priority": "Urgent"}`)
		req := httptest.NewRequest("POST", "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Must be one of")
	})

	t.Run("passes valid input through", func(t *testing.T) {
		body := strings.NewReader(`{"account": "Acme", "priority": "Low"}`)
		req := httptest.NewRequest("POST", "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed JSON yields generic message", func(t *testing.T) {
		body := strings.NewReader(`{not json`)
		req := httptest.NewRequest("POST", "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid request body")
	})
}

func TestFormatValidationError(t *testing.T) {
	t.Run("non-validator error", func(t *testing.T) {
		assert.Equal(t, "Invalid request body", FormatValidationError(assert.AnError))
	})

	t.Run("joins multiple failures", func(t *testing.T) {
		type input struct {
			Account string `json:"account" validate:"required"`
			DocURL  string `json:"integrationScopeDocUrl" validate:"omitempty,url"`
		}

		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		})

		err := v.Struct(input{DocURL: "not-a-url"})
		require.Error(t, err)

		msg := FormatValidationError(err)
		assert.Contains(t, msg, "account: This field is required")
		assert.Contains(t, msg, "integrationScopeDocUrl: Invalid URL format")
		assert.Contains(t, msg, "; ")
	})
}
