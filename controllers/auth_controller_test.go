package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clean-alert/api-go/controllers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Validation failures are rejected before any query runs, so these tests run
// against a nil DB.

func postJSON(t *testing.T, handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	ac := controllers.NewAuthController(nil)

	w := postJSON(t, ac.Register, `{"email":"a@b.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	ac := controllers.NewAuthController(nil)

	w := postJSON(t, ac.Register, `{"fullname":"Jo Doe","email":"not-an-email","password":"secret1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	ac := controllers.NewAuthController(nil)

	w := postJSON(t, ac.Register, `{"fullname":"Jo Doe","email":"a@b.com","password":"123"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginRejectsMissingPassword(t *testing.T) {
	ac := controllers.NewAuthController(nil)

	w := postJSON(t, ac.Login, `{"email":"a@b.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestRefreshRejectsMissingToken(t *testing.T) {
	ac := controllers.NewAuthController(nil)

	w := postJSON(t, ac.RefreshToken, `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutRejectsMissingToken(t *testing.T) {
	ac := controllers.NewAuthController(nil)

	w := postJSON(t, ac.Logout, `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminLoginRejectsInvalidEmail(t *testing.T) {
	ac := controllers.NewAdminController(nil)

	w := postJSON(t, ac.Login, `{"email":"nope","password":"secret"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}
