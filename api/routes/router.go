package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/buyyourkawa/kawa-backend/api/controllers"
	"github.com/buyyourkawa/kawa-backend/api/middleware"
	analyticssvc "github.com/buyyourkawa/kawa-backend/internal/analytics"
	authsvc "github.com/buyyourkawa/kawa-backend/internal/auth"
	"github.com/buyyourkawa/kawa-backend/internal/catalog"
	"github.com/buyyourkawa/kawa-backend/internal/clients"
	ordersvc "github.com/buyyourkawa/kawa-backend/internal/orders"
	"github.com/buyyourkawa/kawa-backend/pkg/config"
	"github.com/buyyourkawa/kawa-backend/pkg/logger"
	"github.com/buyyourkawa/kawa-backend/pkg/metrics"
	"github.com/buyyourkawa/kawa-backend/pkg/redis"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	Redis          *redis.Client
	Metrics        *metrics.HTTPMetrics
	MetricsHandler http.Handler

	AuthService      authsvc.Service
	ClientStore      *clients.Store
	Catalog          *catalog.Store
	OrderService     ordersvc.Service
	AnalyticsService analyticssvc.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginUserLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, readyPinger(deps.Redis), logg))
	})

	metricsHandler := deps.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Get("/ping", controllers.PublicPing())

	r.With(authRateLimit(loginPolicy, deps.Redis, logg)).
		Post("/token", controllers.Login(deps.AuthService, logg))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Get("/me/ping", controllers.PrivatePing())

		r.Route("/clients", func(r chi.Router) {
			r.Post("/", controllers.CreateClient(deps.ClientStore, logg))
			r.Get("/", controllers.ListClients(deps.ClientStore, logg))
			r.Get("/{clientID}", controllers.GetClient(deps.ClientStore, logg))
			r.Put("/{clientID}", controllers.UpdateClient(deps.ClientStore, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", controllers.CreateProduct(deps.Catalog, logg))
			r.Get("/", controllers.ListProducts(deps.Catalog, logg))
			r.Get("/{productID}", controllers.GetProduct(deps.Catalog, logg))
			r.Put("/{productID}", controllers.UpdateProduct(deps.Catalog, logg))
			r.Patch("/{productID}/stock", controllers.AdjustProductStock(deps.Catalog, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", controllers.PlaceOrder(deps.OrderService, logg))
			r.Get("/", controllers.ListOrders(deps.OrderService, logg))
			r.Get("/{orderID}", controllers.GetOrder(deps.OrderService, logg))
			r.Put("/{orderID}/status", controllers.UpdateOrderStatus(deps.OrderService, logg))
			r.Post("/{orderID}/cancel", controllers.CancelOrder(deps.OrderService, logg))
		})

		r.Get("/analytics/sales", controllers.SalesAnalytics(deps.AnalyticsService, logg))
	})

	return r
}

// readyPinger hides a typed-nil redis client from the readiness check.
func readyPinger(client *redis.Client) redis.Pinger {
	if client == nil {
		return nil
	}
	return client
}

func authRateLimit(policy middleware.AuthRateLimitPolicy, client *redis.Client, logg *logger.Logger) func(http.Handler) http.Handler {
	if client == nil {
		return middleware.AuthRateLimit(policy, nil, logg)
	}
	return middleware.AuthRateLimit(policy, client, logg)
}
