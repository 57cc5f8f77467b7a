package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/medrec/hospital-api/internal/handler/admin"
	"github.com/medrec/hospital-api/internal/handler/pages"
	"github.com/medrec/hospital-api/internal/middleware"
)

// Handler registers JSON API routes on the /api group.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	SessionSecret string
	SessionCookie string
	TemplatesGlob string
	RateLimit     middleware.RateLimiterConfig
}

type Router struct {
	engine   *gin.Engine
	registry *prometheus.Registry
	metrics  *routerMetrics
}

func New(cfg Config, pagesH *pages.Handler, adminH *admin.Handler, apiHandlers ...Handler) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.LoadHTMLGlob(cfg.TemplatesGlob)

	registry := prometheus.NewRegistry()
	r := &Router{
		engine:   engine,
		registry: registry,
		metrics:  newRouterMetrics(registry),
	}

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		r.metricsMiddleware(),
	)

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", middleware.HeaderXRequestID)
	engine.Use(cors.New(corsConfig))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   7 * 24 * 60 * 60,
	})
	engine.Use(sessions.Sessions(cfg.SessionCookie, store))

	if cfg.RateLimit.RPS > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit)
		engine.Use(limiter.RateLimit())
	}

	engine.Static("/static", "web/static")

	engine.GET("/health", pagesH.HealthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	pagesH.RegisterRoutes(engine)
	adminH.RegisterRoutes(engine)

	api := engine.Group("/api")
	for _, h := range apiHandlers {
		h.RegisterRoutes(api)
	}

	engine.NoRoute(pagesH.NotFound)

	return r
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
