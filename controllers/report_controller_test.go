package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clean-alert/api-go/controllers"
	"github.com/clean-alert/api-go/storage"
	"github.com/clean-alert/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, method, target string, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	return c, w
}

func asUser(c *gin.Context, id uint) {
	c.Set(string(utils.UserContextKey), &utils.UserClaims{UserID: id, Role: utils.RoleUser})
}

func TestCreateReportRequiresAuth(t *testing.T) {
	rc := controllers.NewReportController(nil, nil)

	c, w := testContext(t, http.MethodPost, "/api/reports", "")
	rc.CreateReport(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestDeleteReportRequiresAuth(t *testing.T) {
	rc := controllers.NewReportController(nil, nil)

	c, w := testContext(t, http.MethodDelete, "/api/reports/1", "")
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	rc.DeleteReport(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestResolveReportRequiresMessage(t *testing.T) {
	rc := controllers.NewReportController(nil, nil)

	c, w := testContext(t, http.MethodPut, "/api/reports/resolve/1", `{}`)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	rc.ResolveReport(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestListUserReportsRejectsOtherUsers(t *testing.T) {
	rc := controllers.NewReportController(nil, nil)

	c, w := testContext(t, http.MethodGet, "/api/reports/user/2", "")
	c.Params = gin.Params{{Key: "userId", Value: "2"}}
	asUser(c, 1)
	rc.ListUserReports(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestListUserReportsRejectsBadID(t *testing.T) {
	rc := controllers.NewReportController(nil, nil)

	c, w := testContext(t, http.MethodGet, "/api/reports/user/abc", "")
	c.Params = gin.Params{{Key: "userId", Value: "abc"}}
	asUser(c, 1)
	rc.ListUserReports(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServeUploadStreamsStoredPhoto(t *testing.T) {
	store, err := storage.NewLocal(t.TempDir(), 1)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), "photo.jpg", strings.NewReader("jpeg-bytes")))

	rc := controllers.NewReportController(nil, store)

	c, w := testContext(t, http.MethodGet, "/uploads/photo.jpg", "")
	c.Params = gin.Params{{Key: "filename", Value: "photo.jpg"}}
	rc.ServeUpload(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jpeg-bytes", w.Body.String())
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
}

func TestServeUploadMissingFile(t *testing.T) {
	store, err := storage.NewLocal(t.TempDir(), 1)
	require.NoError(t, err)

	rc := controllers.NewReportController(nil, store)

	c, w := testContext(t, http.MethodGet, "/uploads/nope.jpg", "")
	c.Params = gin.Params{{Key: "filename", Value: "nope.jpg"}}
	rc.ServeUpload(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServeUploadStripsPathTraversal(t *testing.T) {
	store, err := storage.NewLocal(t.TempDir(), 1)
	require.NoError(t, err)

	rc := controllers.NewReportController(nil, store)

	c, w := testContext(t, http.MethodGet, "/uploads/x", "")
	c.Params = gin.Params{{Key: "filename", Value: "../../etc/passwd"}}
	rc.ServeUpload(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
