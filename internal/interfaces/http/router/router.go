package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router mounts every storefront route twice: under the path-based
// store prefix ("/store/:slug/...") and at the host root ("/...") for
// subdomain navigation. Both mounts share the same resolver middleware,
// so a handler never cares which form addressed the store.
type Router struct {
	engine     *gin.Engine
	pathPrefix string
	middleware []gin.HandlerFunc
	registrars []RouteRegistrar
}

// NewRouter creates a new Router with the given store path prefix
// (e.g. "/store")
func NewRouter(engine *gin.Engine, pathPrefix string) *Router {
	return &Router{
		engine:     engine,
		pathPrefix: pathPrefix,
		registrars: make([]RouteRegistrar, 0),
	}
}

// Use adds middleware applied to every storefront route on both mounts
func (r *Router) Use(middleware ...gin.HandlerFunc) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

// Register adds a RouteRegistrar to be mounted during Setup
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	pathGroup := r.engine.Group(r.pathPrefix + "/:slug")
	pathGroup.Use(r.middleware...)

	hostGroup := r.engine.Group("/")
	hostGroup.Use(r.middleware...)

	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(pathGroup)
		registrar.RegisterRoutes(hostGroup)
	}
}
