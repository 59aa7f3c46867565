package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vietwoods/catalog-api/utils"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Setenv("SESSION_SECRET", "middleware-test-secret")
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", RequireSession(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"adminID":  c.GetString("adminID"),
			"username": c.GetString("username"),
		})
	})
	return r
}

func TestRequireSessionWithoutCookie(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireSessionWithInvalidCookie(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: "garbage"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireSessionWithValidCookie(t *testing.T) {
	r := setupRouter(t)

	token, err := utils.SignSession([]byte("middleware-test-secret"), utils.AdminSession{
		ID:       "42",
		Username: "admin",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"admin"`)
}

func TestRequireSessionWithClearedCookie(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: ""})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
