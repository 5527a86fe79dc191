package httpserver

import (
	"context"
	"errors"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tienda-storefront/internal/domain"
	"tienda-storefront/internal/repository/cartblob"
	cartsvc "tienda-storefront/internal/service/cart"
	"tienda-storefront/internal/service/catalog"
	"tienda-storefront/internal/service/checkout"
)

// CatalogService lists and fetches products from the backend catalog.
type CatalogService interface {
	List(ctx context.Context, q catalog.Query) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
}

// CheckoutService places an order from the cart and clears it on success.
type CheckoutService interface {
	Submit(ctx context.Context, store *cartsvc.Store, in checkout.CustomerInput) (*domain.Order, error)
}

// AuthService validates the admin password and tracks session tokens.
type AuthService interface {
	Login(password string) (string, error)
	Valid(token string) bool
	Logout(token string)
	TTLSeconds() int
}

// AdminBackend covers the backend operations reserved for the admin console.
type AdminBackend interface {
	CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, in domain.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	Orders(ctx context.Context) ([]domain.Order, error)
	Order(ctx context.Context, id int64) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) (*domain.Order, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

// OrderReader is the public order-tracking lookup.
type OrderReader interface {
	Order(ctx context.Context, id int64) (*domain.Order, error)
}

// Deps carries the handler dependencies.
type Deps struct {
	Carts    *cartsvc.Manager
	Catalog  CatalogService
	Checkout CheckoutService
	Auth     AuthService
	Admin    AdminBackend
	Orders   OrderReader
}

// buildRouter wires the storefront and admin routes.
func buildRouter(logger *log.Logger, storage cartblob.Storage, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	if deps.Carts == nil || deps.Catalog == nil || deps.Checkout == nil || deps.Auth == nil || deps.Admin == nil || deps.Orders == nil {
		return nil, errors.New("httpserver: missing dependencies")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(corsOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(storage))

	api := router.Group("/api")
	{
		api.GET("/products", listProductsHandler(deps.Catalog, logger))
		api.GET("/products/:id", getProductHandler(deps.Catalog, logger))

		api.GET("/cart", getCartHandler(deps.Carts))
		api.POST("/cart/items", addCartItemHandler(deps.Carts, deps.Catalog, logger))
		api.PATCH("/cart/items/:productId", updateCartItemHandler(deps.Carts))
		api.DELETE("/cart/items/:productId", removeCartItemHandler(deps.Carts))
		api.DELETE("/cart", clearCartHandler(deps.Carts))

		api.POST("/checkout", checkoutHandler(deps.Carts, deps.Checkout, logger))
		api.GET("/orders/:id", getOrderHandler(deps.Orders, logger))
	}

	admin := router.Group("/admin")
	admin.POST("/login", loginHandler(deps.Auth))
	{
		guarded := admin.Group("")
		guarded.Use(adminAuthMiddleware(deps.Auth))
		guarded.POST("/logout", logoutHandler(deps.Auth))
		guarded.GET("/products", adminListProductsHandler(deps.Catalog, logger))
		guarded.POST("/products", createProductHandler(deps.Admin, logger))
		guarded.PATCH("/products/:id", updateProductHandler(deps.Admin, logger))
		guarded.DELETE("/products/:id", deleteProductHandler(deps.Admin, logger))
		guarded.GET("/orders", listOrdersHandler(deps.Admin, logger))
		guarded.GET("/orders/:id", adminGetOrderHandler(deps.Admin, logger))
		guarded.PATCH("/orders/:id/status", updateOrderStatusHandler(deps.Admin, logger))
		guarded.GET("/stats", statsHandler(deps.Admin, logger))
	}

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
