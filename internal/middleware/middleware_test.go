package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/slot-booker/internal/logging"
)

func signed(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func authRouter(secret string) *gin.Engine {
	r := gin.New()
	r.GET("/me", AuthMiddleware(secret), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextUserID))
	})
	return r
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := authRouter("s3cret")

	valid := signed(t, "s3cret", jwt.MapClaims{"sub": "user-1", "exp": time.Now().Add(time.Hour).Unix()})
	w := get(r, "/me", valid)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "").Code)

	wrongKey := signed(t, "other", jwt.MapClaims{"sub": "user-1", "exp": time.Now().Add(time.Hour).Unix()})
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", wrongKey).Code)

	noExp := signed(t, "s3cret", jwt.MapClaims{"sub": "user-1"})
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", noExp).Code)
}

func TestAuthMiddlewareDisabledWithoutSecret(t *testing.T) {
	w := get(authRouter(""), "/me", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestTimeoutSetsDeadline(t *testing.T) {
	r := gin.New()
	r.GET("/t", RequestTimeout(time.Second), func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		assert.True(t, ok)
		c.Status(http.StatusNoContent)
	})
	assert.Equal(t, http.StatusNoContent, get(r, "/t", "").Code)
}

func TestRequestIDEchoed(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), RequestLogger(logging.Discard()))
	r.GET("/t", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))

	assert.NotEmpty(t, get(r, "/t", "").Header().Get("X-Request-ID"))
}

func TestRateLimiter(t *testing.T) {
	r := gin.New()
	r.GET("/t", RateLimiter("2-M", logging.Discard()), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, get(r, "/t", "").Code)
	assert.Equal(t, http.StatusOK, get(r, "/t", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "/t", "").Code)
}
