package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nextlayer-studio/storefront-backend/api/controllers"
	"github.com/nextlayer-studio/storefront-backend/api/middleware"
	"github.com/nextlayer-studio/storefront-backend/internal/admin"
	"github.com/nextlayer-studio/storefront-backend/internal/cart"
	"github.com/nextlayer-studio/storefront-backend/internal/catalog"
	"github.com/nextlayer-studio/storefront-backend/internal/chat"
	checkoutsvc "github.com/nextlayer-studio/storefront-backend/internal/checkout"
	"github.com/nextlayer-studio/storefront-backend/pkg/config"
	"github.com/nextlayer-studio/storefront-backend/pkg/logger"
)

// Pinger is satisfied by the db and redis clients.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       Pinger
	Redis    Pinger
	Catalog  catalog.Service
	Cart     cart.Service
	Checkout checkoutsvc.Service
	Chat     chat.Service
	Admin    admin.Service
	Registry *prometheus.Registry
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(deps.Logger),
		middleware.RequestID(deps.Logger),
		middleware.Logging(deps.Logger),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(deps.Config))
		r.Get("/ready", controllers.HealthReady(deps.Config, deps.Logger, deps.DB, deps.Redis))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", controllers.ListProducts(deps.Catalog, deps.Logger))
		r.Get("/products/{productID}", controllers.GetProduct(deps.Catalog, deps.Logger))

		r.Group(func(r chi.Router) {
			r.Use(middleware.CartSession(deps.Logger))
			r.Get("/cart", controllers.GetCart(deps.Cart, deps.Logger))
			r.Post("/cart/items", controllers.AddCartItem(deps.Cart, deps.Logger))
			r.Patch("/cart/items/{productID}", controllers.UpdateCartItem(deps.Cart, deps.Logger))
			r.Delete("/cart/items/{productID}", controllers.RemoveCartItem(deps.Cart, deps.Logger))
			r.Post("/checkout", controllers.Checkout(deps.Checkout, deps.Logger))
		})

		r.Post("/chat", controllers.Chat(deps.Chat, deps.Logger))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Post("/login", controllers.AdminLogin(deps.Admin, deps.Logger))

		r.Group(func(r chi.Router) {
			r.Use(middleware.EditorAuth(deps.Config.JWT, deps.Logger))
			r.Get("/products", controllers.AdminListProducts(deps.Admin, deps.Logger))
			r.Post("/products", controllers.AdminCreateProduct(deps.Admin, deps.Logger))
			r.Put("/products/{productID}", controllers.AdminUpdateProduct(deps.Admin, deps.Logger))
			r.Delete("/products/{productID}", controllers.AdminDeleteProduct(deps.Admin, deps.Logger))
			r.Post("/snapshot", controllers.AdminSnapshot(deps.Admin, deps.Logger))
		})
	})

	return r
}
