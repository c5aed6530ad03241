package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/tenant"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// StoreContextKey is the gin context key for the resolved store
const StoreContextKey = "store_context"

// ResolveStore maps the request's hostname and path to exactly one
// store before any storefront handler runs. A subdomain that disagrees
// with the path segment triggers a corrective redirect to the canonical
// path; an unresolvable request is rejected with 404 and never reaches
// a handler.
func ResolveStore(resolver *tenant.Resolver, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		res, err := resolver.Resolve(c.Request.Context(), c.Request.Host, c.Request.URL.Path)
		if err != nil {
			if errors.Is(err, shared.ErrStoreNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponseWithRequestID(
					dto.ErrCodeStoreNotFound,
					"No store matches this address",
					c.GetString("request_id"),
				))
				return
			}
			log.Error("store resolution failed",
				zap.String("host", c.Request.Host),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeInternal,
				"An unexpected error occurred",
				c.GetString("request_id"),
			))
			return
		}

		if res.RedirectTo != "" {
			c.Redirect(http.StatusTemporaryRedirect, res.RedirectTo)
			c.Abort()
			return
		}

		c.Set(StoreContextKey, res.Context)

		// Make the store ID visible to the request-scoped logger
		ctx := c.Request.Context()
		ctxLog := logger.FromContext(ctx)
		ctx, _ = logger.WithStoreID(ctx, ctxLog, res.Context.StoreID().String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetStoreContext retrieves the resolved store from gin.Context
func GetStoreContext(c *gin.Context) *tenant.Context {
	if v, exists := c.Get(StoreContextKey); exists {
		if tc, ok := v.(*tenant.Context); ok {
			return tc
		}
	}
	return nil
}
