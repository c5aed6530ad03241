package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/storefront/backend/internal/infrastructure/config"
)

// SessionIDKey is the gin context key for the shopper session ID
const SessionIDKey = "session_id"

// SessionCookie assigns every shopper a stable anonymous session ID via
// an HttpOnly cookie. The ID is the key carts are persisted under, so a
// returning shopper gets their cart back without any login.
func SessionCookie(cfg config.CookieConfig) gin.HandlerFunc {
	sameSite := parseSameSite(cfg.SameSite)

	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.Name)
		if err != nil || !validSessionID(sessionID) {
			sessionID = uuid.NewString()
			c.SetSameSite(sameSite)
			c.SetCookie(cfg.Name, sessionID, cfg.MaxAge, cfg.Path, cfg.Domain, cfg.Secure, true)
		}

		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

// GetSessionID retrieves the shopper session ID from gin.Context
func GetSessionID(c *gin.Context) string {
	if id, exists := c.Get(SessionIDKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// validSessionID rejects anything that is not a UUID so forged cookie
// values cannot become storage keys
func validSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func parseSameSite(mode string) http.SameSite {
	switch mode {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
