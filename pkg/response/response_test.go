package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "pourpal-backoffice/pkg/errors"
	"pourpal-backoffice/pkg/response"
)

func record(fn func(c *gin.Context)) (*httptest.ResponseRecorder, response.Resp) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)

	var resp response.Resp
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestOK(t *testing.T) {
	w, resp := record(func(c *gin.Context) { response.OK(c, map[string]string{"foo": "bar"}) })

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, resp.ErrorCode)
	assert.Equal(t, response.MessageSuccess, resp.Message)
	assert.Equal(t, map[string]any{"foo": "bar"}, resp.Data)
}

func TestError(t *testing.T) {
	t.Run("HTTPError keeps status", func(t *testing.T) {
		wrapped := fmt.Errorf("item: %w", pkgErrors.NewHTTPError(http.StatusConflict, "Item already exists"))
		w, resp := record(func(c *gin.Context) { response.Error(c, wrapped) })

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, http.StatusConflict, resp.ErrorCode)
		assert.Equal(t, "Item already exists", resp.Message)
	})

	t.Run("validation errors become 400", func(t *testing.T) {
		type req struct {
			Email string `json:"email" validate:"required"`
		}
		err := validator.New().Struct(req{})
		require.Error(t, err)

		w, resp := record(func(c *gin.Context) { response.Error(c, err) })
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Validation failed", resp.Message)
		assert.NotNil(t, resp.Errors)
	})

	t.Run("unknown errors are hidden", func(t *testing.T) {
		w, resp := record(func(c *gin.Context) { response.Error(c, errors.New("pq: connection refused")) })

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, response.DefaultErrorMessage, resp.Message)
	})
}

func TestShortcuts(t *testing.T) {
	w, resp := record(response.Unauthorized)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized", resp.Message)

	w, _ = record(response.TooManyRequests)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w, resp = record(func(c *gin.Context) { response.BadRequest(c, "Invalid request body") })
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", resp.Message)
}
