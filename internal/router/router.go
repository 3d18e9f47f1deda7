package router

import (
	"html/template"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/directory-web/internal/handler/pages"
	"github.com/jwalitptl/directory-web/internal/handler/prometheus"
	"github.com/jwalitptl/directory-web/internal/middleware"
	"github.com/jwalitptl/directory-web/internal/web"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Router struct {
	engine   *gin.Engine
	pagesH   *pages.Handler
	contactH Handler
	sitemapH Handler
	healthH  Handler
	metrics  *prometheus.Handler
	config   RouterConfig
}

type RouterConfig struct {
	Mode           string
	RequestTimeout time.Duration
	ContactRPS     float64
	ContactBurst   int
	MaxBodySize    int64
}

func NewRouter(
	pagesH *pages.Handler,
	contactH Handler,
	sitemapH Handler,
	healthH Handler,
	metrics *prometheus.Handler,
	templates *template.Template,
	config RouterConfig,
) *Router {
	if config.Mode != "" {
		gin.SetMode(config.Mode)
	}
	if config.MaxBodySize <= 0 {
		config.MaxBodySize = middleware.DefaultMaxBodySize
	}

	engine := gin.New()
	engine.SetHTMLTemplate(templates)

	r := &Router{
		engine:   engine,
		pagesH:   pagesH,
		contactH: contactH,
		sitemapH: sitemapH,
		healthH:  healthH,
		metrics:  metrics,
		config:   config,
	}

	// Core middlewares
	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(pagesH.RenderError),
		metrics.Middleware(),
		middleware.SecurityHeaders(middleware.DefaultSecurityConfig()),
	)
	if config.RequestTimeout > 0 {
		engine.Use(middleware.Timeout(config.RequestTimeout))
	}

	return r
}

func (r *Router) Setup() {
	r.engine.StaticFS("/static", web.Static())

	// Probes and metrics are never cached.
	ops := r.engine.Group("", middleware.Cache(middleware.NoStoreConfig()))
	r.healthH.RegisterRoutes(ops)
	ops.GET("/metrics", r.metrics.Handler())

	site := r.engine.Group("", middleware.Cache(middleware.PageCacheConfig()))
	r.pagesH.RegisterRoutes(site)
	r.sitemapH.RegisterRoutes(site)

	contactLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RPS:   r.config.ContactRPS,
		Burst: r.config.ContactBurst,
	})
	api := r.engine.Group("/api",
		middleware.Cache(middleware.NoStoreConfig()),
		middleware.SizeLimit(r.config.MaxBodySize),
		contactLimiter.RateLimit(),
		middleware.ErrorHandler(),
	)
	r.contactH.RegisterRoutes(api)

	r.engine.NoRoute(r.pagesH.NotFound)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
