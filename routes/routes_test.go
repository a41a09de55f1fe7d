package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clean-alert/api-go/routes"
	"github.com/clean-alert/api-go/storage"
	"github.com/clean-alert/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewLocal(t.TempDir(), 1)
	require.NoError(t, err)

	r := gin.New()
	routes.SetupRoutes(r, nil, store)
	return r
}

func TestHealthEndpoint(t *testing.T) {
	r := newRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CleanAlert API running...", w.Body.String())
}

func TestReportRoutesRequireToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newRouter(t)

	for _, target := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/reports"},
		{http.MethodPost, "/api/reports"},
		{http.MethodGet, "/api/reports/user/1"},
		{http.MethodPost, "/api/reports/like"},
		{http.MethodGet, "/api/reports/leaderboard"},
		{http.MethodDelete, "/api/reports/1"},
		{http.MethodPut, "/api/reports/resolve/1"},
		{http.MethodGet, "/api/reports/admin/stats"},
		{http.MethodGet, "/api/reports/users"},
		{http.MethodGet, "/api/admin/export"},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(target.method, target.path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s should require a token", target.method, target.path)
	}
}

func TestAdminRoutesRejectUserRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateAccessToken(1, utils.RoleUser)
	require.NoError(t, err)

	r := newRouter(t)

	for _, target := range []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/api/reports/resolve/1"},
		{http.MethodGet, "/api/reports/admin/stats"},
		{http.MethodGet, "/api/reports/users"},
		{http.MethodGet, "/api/admin/export"},
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(target.method, target.path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s should need the admin role", target.method, target.path)
	}
}

func TestServeUploadUnknownFile(t *testing.T) {
	r := newRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/missing.jpg", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
