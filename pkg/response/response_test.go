package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestUnauthorized(t *testing.T) {
	c, w := newContext()
	Unauthorized(c, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, c.IsAborted())
	body := decode(t, w)
	assert.Equal(t, CodeNotLoggedIn, body.Code)
	assert.Equal(t, http.StatusUnauthorized, body.Data.Status)
	assert.NotEmpty(t, body.Message)
}

func TestForbiddenKeepsMessage(t *testing.T) {
	c, w := newContext()
	Forbidden(c, "You do not have permission to view team data.")

	assert.Equal(t, http.StatusForbidden, w.Code)
	body := decode(t, w)
	assert.Equal(t, CodeForbidden, body.Code)
	assert.Equal(t, "You do not have permission to view team data.", body.Message)
}

func TestInvalidParam(t *testing.T) {
	c, w := newContext()
	InvalidParam(c, "range", "range is not one of today, week, month")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, CodeInvalidParam, body.Code)
	assert.Equal(t, "range", body.Data.Params)
}

func TestOKWritesBareBody(t *testing.T) {
	c, w := newContext()
	OK(c, gin.H{"total": 0})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":0}`, w.Body.String())
}
