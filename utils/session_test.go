package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-session-secret")

func TestSignAndParseSession(t *testing.T) {
	token, err := SignSession(testSecret, AdminSession{ID: "42", Username: "admin"})
	require.NoError(t, err)

	session, ok := ParseSession(testSecret, token)
	require.True(t, ok)
	assert.Equal(t, "42", session.ID)
	assert.Equal(t, "admin", session.Username)
}

func TestParseSessionRejectsTampering(t *testing.T) {
	token, err := SignSession(testSecret, AdminSession{ID: "42", Username: "admin"})
	require.NoError(t, err)

	_, ok := ParseSession([]byte("other-secret"), token)
	assert.False(t, ok, "token signed with a different secret must be absent")

	_, ok = ParseSession(testSecret, token+"x")
	assert.False(t, ok, "modified token must be absent")

	_, ok = ParseSession(testSecret, "not-a-token")
	assert.False(t, ok)

	_, ok = ParseSession(testSecret, "")
	assert.False(t, ok, "a cleared cookie reads as absent")
}

func TestParseSessionRejectsEmptyFields(t *testing.T) {
	token, err := SignSession(testSecret, AdminSession{ID: "", Username: "admin"})
	require.NoError(t, err)
	_, ok := ParseSession(testSecret, token)
	assert.False(t, ok)

	token, err = SignSession(testSecret, AdminSession{ID: "42", Username: ""})
	require.NoError(t, err)
	_, ok = ParseSession(testSecret, token)
	assert.False(t, ok)
}

func TestSessionCookieAttributes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SetSessionCookie(c, "token-value")

	res := w.Result()
	cookies := res.Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int(SessionMaxAge.Seconds()), cookie.MaxAge)
}

func TestClearSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ClearSessionCookie(c)

	res := w.Result()
	cookies := res.Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}
