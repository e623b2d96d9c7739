package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mohit-1289/martx-backend/api/controllers"
	"github.com/mohit-1289/martx-backend/api/middleware"
	"github.com/mohit-1289/martx-backend/internal/catalog"
	"github.com/mohit-1289/martx-backend/internal/storefront"
	"github.com/mohit-1289/martx-backend/pkg/config"
	"github.com/mohit-1289/martx-backend/pkg/db"
	"github.com/mohit-1289/martx-backend/pkg/logger"
	redisclient "github.com/mohit-1289/martx-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	archive db.Pinger,
	kv redisclient.Pinger,
	registry *prometheus.Registry,
	catalogService catalog.Service,
	hub *storefront.Hub,
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
		r.Get("/ready", controllers.HealthReady(cfg, logg, archive, kv))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(logg))

		r.Route("/storefront", func(r chi.Router) {
			r.Get("/", controllers.StorefrontSnapshot(hub, logg))
			r.Post("/navigate", controllers.StorefrontNavigate(hub, logg))
			r.Post("/search", controllers.StorefrontSearch(hub, logg))
			r.Post("/category", controllers.StorefrontCategory(hub, logg))
			r.Post("/quantity", controllers.StorefrontQuantity(hub, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductsList(catalogService, logg))
			r.Get("/categories", controllers.ProductsCategories(catalogService, logg))
			r.Get("/{id}", controllers.ProductView(hub, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Post("/items", controllers.CartAddItem(hub, logg))
			r.Patch("/items/{id}", controllers.CartSetQuantity(hub, logg))
			r.Delete("/items/{id}", controllers.CartRemoveItem(hub, logg))
		})

		r.Post("/checkout", controllers.CheckoutSubmit(hub, logg))
		r.Post("/theme/toggle", controllers.ThemeToggle(hub, logg))
	})

	return r
}
