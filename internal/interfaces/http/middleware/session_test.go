package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/infrastructure/config"
)

func testCookieConfig() config.CookieConfig {
	return config.CookieConfig{
		Name:     "sf_session",
		Path:     "/",
		SameSite: "lax",
		MaxAge:   3600,
	}
}

func setupSessionRouter(cfg config.CookieConfig) (*gin.Engine, *string) {
	router := gin.New()
	router.Use(SessionCookie(cfg))

	var captured string
	router.GET("/test", func(c *gin.Context) {
		captured = GetSessionID(c)
		c.Status(http.StatusOK)
	})
	return router, &captured
}

func TestSessionCookie_AssignsNewID(t *testing.T) {
	router, captured := setupSessionRouter(testCookieConfig())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	_, err := uuid.Parse(*captured)
	assert.NoError(t, err)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sf_session", cookies[0].Name)
	assert.Equal(t, *captured, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSessionCookie_ReusesExistingID(t *testing.T) {
	router, captured := setupSessionRouter(testCookieConfig())
	existing := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.AddCookie(&http.Cookie{Name: "sf_session", Value: existing})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, existing, *captured)
	assert.Empty(t, w.Result().Cookies(), "a valid cookie should not be reissued")
}

func TestSessionCookie_RejectsForgedID(t *testing.T) {
	router, captured := setupSessionRouter(testCookieConfig())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.AddCookie(&http.Cookie{Name: "sf_session", Value: "../../etc/passwd"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	_, err := uuid.Parse(*captured)
	assert.NoError(t, err, "forged value should be replaced with a fresh UUID")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.NotEqual(t, "../../etc/passwd", cookies[0].Value)
}
