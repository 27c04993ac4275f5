package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/smartaisle/smartcart-backend/api/controllers"
	"github.com/smartaisle/smartcart-backend/api/middleware"
	"github.com/smartaisle/smartcart-backend/internal/analytics"
	"github.com/smartaisle/smartcart-backend/internal/cart"
	"github.com/smartaisle/smartcart-backend/internal/catalog"
	"github.com/smartaisle/smartcart-backend/internal/position"
	"github.com/smartaisle/smartcart-backend/internal/promotions"
	"github.com/smartaisle/smartcart-backend/internal/realtime"
	"github.com/smartaisle/smartcart-backend/internal/storelayout"
	"github.com/smartaisle/smartcart-backend/pkg/config"
	"github.com/smartaisle/smartcart-backend/pkg/logger"
	"github.com/smartaisle/smartcart-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisP redis.Pinger,
	registry *prometheus.Registry,
	cartStore cart.Store,
	positionStore position.Store,
	hub *realtime.Hub,
	catalogService catalog.Service,
	promotionsService promotions.Service,
	layoutService storelayout.Service,
	analyticsService analytics.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Get("/ws", controllers.WebSocket(hub, logg))

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", controllers.ListProducts(catalogService, logg))
		r.Get("/search", controllers.SearchProducts(catalogService, logg))
		r.Get("/category/{category}", controllers.ProductsByCategory(catalogService, logg))
		r.Get("/barcode/{barcode}", controllers.ProductByBarcode(catalogService, logg))
		r.Get("/{id}", controllers.ProductByID(catalogService, logg))
	})

	r.Route("/api/cart", func(r chi.Router) {
		r.Post("/", controllers.AddCartItem(cartStore, logg))
		r.Get("/{sessionId}", controllers.GetCart(cartStore, logg))
		r.Put("/{id}", controllers.UpdateCartItem(cartStore, logg))
		r.Delete("/session/{sessionId}", controllers.ClearCart(cartStore, logg))
		r.Delete("/{id}", controllers.RemoveCartItem(cartStore, logg))
	})

	r.Route("/api/position", func(r chi.Router) {
		r.Post("/", controllers.ReportPosition(positionStore, logg))
		r.Get("/{sessionId}", controllers.GetPosition(positionStore, logg))
	})

	r.Route("/api/promotions", func(r chi.Router) {
		r.Get("/", controllers.ListPromotions(promotionsService, logg))
		r.Post("/applicable", controllers.ApplicablePromotions(promotionsService, logg))
	})

	r.Get("/api/store/{id}/layout", controllers.StoreLayout(layoutService, logg))
	r.Get("/api/analytics/cart-usage", controllers.CartUsage(analyticsService, logg))

	return r
}
