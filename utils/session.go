package utils

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	SessionCookieName = "admin_session"
	SessionMaxAge     = 24 * time.Hour
)

// AdminSession is the payload carried by the admin cookie. It is signed, not
// stored: the cookie itself is the whole session.
type AdminSession struct {
	ID       string
	Username string
}

type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// SignSession encodes the session as an HS256-signed token. Base64 alone
// would let a client forge arbitrary id/username pairs, so the payload is
// always signed with the server secret.
func SignSession(secret []byte, s AdminSession) (string, error) {
	claims := sessionClaims{
		Username: s.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionMaxAge)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseSession validates a cookie value and returns the session it carries.
// Any signature, expiry or shape problem yields ok=false, never an error.
func ParseSession(secret []byte, value string) (AdminSession, bool) {
	if value == "" {
		return AdminSession{}, false
	}
	token, err := jwt.ParseWithClaims(value, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return AdminSession{}, false
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || claims.Subject == "" || claims.Username == "" {
		return AdminSession{}, false
	}
	return AdminSession{ID: claims.Subject, Username: claims.Username}, true
}

func cookieSecure() bool {
	return os.Getenv("COOKIE_SECURE") == "true"
}

func SetSessionCookie(c *gin.Context, token string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cookieSecure(),
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearSessionCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cookieSecure(),
		SameSite: http.SameSiteLaxMode,
	})
}
