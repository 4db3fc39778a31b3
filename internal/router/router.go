package router

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nes268/healmate/internal/handler"
	authHandler "github.com/nes268/healmate/internal/handler/auth"
	"github.com/nes268/healmate/internal/middleware"
)

// Handler registers a group of related routes.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	RateLimitRPS   float64
	RateLimitBurst int
	CORS           middleware.CORSConfig
}

type Router struct {
	engine  *gin.Engine
	auth    *middleware.AuthMiddleware
	health  *handler.HealthHandler
	authH   *authHandler.Handler
	public  []Handler
	guarded []Handler
	metrics *routerMetrics
}

type routerMetrics struct {
	registry        *prometheus.Registry
	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func newRouterMetrics() *routerMetrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &routerMetrics{
		registry: registry,
		requestTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "healmate_http_requests_total",
			Help: "Total HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "healmate_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// NewRouter assembles the gin engine: recovery, request id, logging,
// CORS, rate limiting and metrics around the public and token-guarded
// route groups.
func NewRouter(
	auth *middleware.AuthMiddleware,
	health *handler.HealthHandler,
	authH *authHandler.Handler,
	public []Handler,
	guarded []Handler,
	cfg Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	r := &Router{
		engine:  engine,
		auth:    auth,
		health:  health,
		authH:   authH,
		public:  public,
		guarded: guarded,
		metrics: newRouterMetrics(),
	}

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RPS:   cfg.RateLimitRPS,
		Burst: cfg.RateLimitBurst,
	})

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(cfg.CORS),
		rateLimiter.RateLimit(),
		r.metricsMiddleware(),
	)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("Route not found"))
	})

	return r
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) Setup() {
	r.engine.GET("/", r.health.Root)
	r.engine.GET("/healthz", r.health.Healthz)
	r.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.metrics.registry, promhttp.HandlerOpts{})))

	api := r.engine.Group("/api")

	r.authH.RegisterRoutes(api)
	for _, h := range r.public {
		h.RegisterRoutes(api)
	}

	protected := api.Group("")
	protected.Use(r.auth.Authenticate())
	r.authH.RegisterProtectedRoutes(protected)
	for _, h := range r.guarded {
		h.RegisterRoutes(protected)
	}
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		r.metrics.requestTotal.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		r.metrics.requestDuration.WithLabelValues(
			c.Request.Method,
			route,
		).Observe(time.Since(start).Seconds())
	}
}
