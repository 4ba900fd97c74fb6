package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router manages HTTP route registration under a versioned API prefix
type Router struct {
	engine     *gin.Engine
	apiVersion string
	middleware []gin.HandlerFunc
	registrars []RouteRegistrar
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g., "v1", "v2")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
		registrars: make([]RouteRegistrar, 0),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Use adds middleware applied to every route under the API prefix
func (r *Router) Use(middleware ...gin.HandlerFunc) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

// Register adds a RouteRegistrar to be registered later
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)

	if len(r.middleware) > 0 {
		api.Use(r.middleware...)
	}

	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
}

// ResourceGroup collects the routes of one resource under a shared
// prefix, with optional group level middleware
type ResourceGroup struct {
	name       string
	prefix     string
	routes     []routeDefinition
	middleware []gin.HandlerFunc
}

type routeDefinition struct {
	method   string
	path     string
	handlers []gin.HandlerFunc
}

// NewResourceGroup creates a route group for a resource
func NewResourceGroup(name, prefix string) *ResourceGroup {
	return &ResourceGroup{
		name:   name,
		prefix: prefix,
		routes: make([]routeDefinition, 0),
	}
}

// Use adds middleware to this group
func (rg *ResourceGroup) Use(middleware ...gin.HandlerFunc) *ResourceGroup {
	rg.middleware = append(rg.middleware, middleware...)
	return rg
}

func (rg *ResourceGroup) handle(method, path string, handlers []gin.HandlerFunc) *ResourceGroup {
	rg.routes = append(rg.routes, routeDefinition{
		method:   method,
		path:     path,
		handlers: handlers,
	})
	return rg
}

// GET registers a GET route
func (rg *ResourceGroup) GET(path string, handlers ...gin.HandlerFunc) *ResourceGroup {
	return rg.handle("GET", path, handlers)
}

// POST registers a POST route
func (rg *ResourceGroup) POST(path string, handlers ...gin.HandlerFunc) *ResourceGroup {
	return rg.handle("POST", path, handlers)
}

// PUT registers a PUT route
func (rg *ResourceGroup) PUT(path string, handlers ...gin.HandlerFunc) *ResourceGroup {
	return rg.handle("PUT", path, handlers)
}

// PATCH registers a PATCH route
func (rg *ResourceGroup) PATCH(path string, handlers ...gin.HandlerFunc) *ResourceGroup {
	return rg.handle("PATCH", path, handlers)
}

// DELETE registers a DELETE route
func (rg *ResourceGroup) DELETE(path string, handlers ...gin.HandlerFunc) *ResourceGroup {
	return rg.handle("DELETE", path, handlers)
}

// RegisterRoutes implements RouteRegistrar
func (rg *ResourceGroup) RegisterRoutes(parent *gin.RouterGroup) {
	group := parent.Group(rg.prefix)

	if len(rg.middleware) > 0 {
		group.Use(rg.middleware...)
	}

	for _, route := range rg.routes {
		group.Handle(route.method, route.path, route.handlers...)
	}
}

// Name returns the group name
func (rg *ResourceGroup) Name() string {
	return rg.name
}

// Prefix returns the group prefix
func (rg *ResourceGroup) Prefix() string {
	return rg.prefix
}
