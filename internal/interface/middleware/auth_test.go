package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresmx/tasktrack/pkg/helpers"
)

func newAuthEngine(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(jwt), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(CtxUserIDKey))
	})
	return r
}

func TestAuth_MissingToken(t *testing.T) {
	t.Parallel()
	jwt := &helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour}
	r := newAuthEngine(jwt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// a non-bearer scheme counts as no token presented
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	t.Parallel()
	jwt := &helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour}
	r := newAuthEngine(jwt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	t.Parallel()
	issuer := &helpers.JWTManager{Secret: []byte("s"), TTL: -time.Minute}
	tok, _, err := issuer.Generate("u1", "a@b.c", "A")
	require.NoError(t, err)

	verifier := &helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour}
	r := newAuthEngine(verifier)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuth_ValidTokenBindsIdentity(t *testing.T) {
	t.Parallel()
	jwt := &helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour}
	tok, _, err := jwt.Generate("user-42", "a@b.c", "A")
	require.NoError(t, err)

	r := newAuthEngine(jwt)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", w.Body.String())
}
