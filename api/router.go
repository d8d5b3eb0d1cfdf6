package api

import (
	"net/http"

	"spectra-directory/api/middleware"
	"spectra-directory/config"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// ControllerRegister is implemented by every controller that hangs
// routes on the engine.
type ControllerRegister interface {
	RegisterRoutes(e *gin.Engine)
}

// Router assembles middleware, templates and controllers into the gin
// engine.
type Router struct {
	engine      *gin.Engine
	config      *config.Config
	controllers []ControllerRegister
}

// NewRouter creates the router with the standard middleware chain.
func NewRouter(cfg *config.Config, controllers ...ControllerRegister) *Router {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Order matters: the request ID must exist before anything logs.
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.RecoveryMiddleware())
	engine.Use(middleware.LoggingMiddleware())
	engine.Use(middleware.RateLimitMiddleware(&cfg.Server.RateLimit))

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	engine.Use(sessions.Sessions("spectra_session", store))

	engine.LoadHTMLGlob(cfg.Server.TemplatesGlob)

	return &Router{
		engine:      engine,
		config:      cfg,
		controllers: controllers,
	}
}

// SetupRoutes registers all controller routes and the 404 handler.
func (r *Router) SetupRoutes() {
	for _, c := range r.controllers {
		c.RegisterRoutes(r.engine)
	}

	r.engine.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"Title":   "404 - Page not found",
			"Message": "The page you are looking for does not exist.",
		})
	})
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
