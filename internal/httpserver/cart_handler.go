package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tienda-storefront/internal/domain"
	cartsvc "tienda-storefront/internal/service/cart"
)

type cartView struct {
	Items []domain.CartLine `json:"items"`
	Total int64             `json:"total"`
}

func renderCart(c *gin.Context, store *cartsvc.Store, status int) {
	ctx := c.Request.Context()
	c.JSON(status, cartView{Items: store.Items(ctx), Total: store.Total(ctx)})
}

func getCartHandler(carts *cartsvc.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderCart(c, carts.Store(cartSessionID(c)), http.StatusOK)
	}
}

type addCartItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity"`
}

// addCartItemHandler snapshots the product into the cart. The cart store
// enforces no upper bound; the known stock is checked here and the backend
// revalidates at checkout.
func addCartItemHandler(carts *cartsvc.Manager, catalog CatalogService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "productId required")
			return
		}
		if req.Quantity < 1 {
			req.Quantity = 1
		}

		product, err := catalog.Get(c.Request.Context(), req.ProductID)
		if err != nil {
			respondBackendError(c, logger, err, "product not found")
			return
		}
		if product.Active != nil && !*product.Active {
			respondError(c, http.StatusNotFound, "product not found")
			return
		}

		store := carts.Store(cartSessionID(c))

		inCart := 0
		for _, line := range store.Items(c.Request.Context()) {
			if line.ProductID == product.ID {
				inCart = line.Quantity
				break
			}
		}
		if inCart+req.Quantity > product.Stock {
			respondError(c, http.StatusConflict, "insufficient stock")
			return
		}

		store.Add(c.Request.Context(), cartsvc.Item{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			ImageURL:  product.ImageURL,
		}, req.Quantity)

		renderCart(c, store, http.StatusCreated)
	}
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func updateCartItemHandler(carts *cartsvc.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := idParam(c, "productId")
		if !ok {
			return
		}
		var req updateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "quantity required")
			return
		}

		store := carts.Store(cartSessionID(c))
		store.UpdateQuantity(c.Request.Context(), productID, req.Quantity)
		renderCart(c, store, http.StatusOK)
	}
}

func removeCartItemHandler(carts *cartsvc.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := idParam(c, "productId")
		if !ok {
			return
		}
		store := carts.Store(cartSessionID(c))
		store.Remove(c.Request.Context(), productID)
		renderCart(c, store, http.StatusOK)
	}
}

func clearCartHandler(carts *cartsvc.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := carts.Store(cartSessionID(c))
		store.Clear(c.Request.Context())
		renderCart(c, store, http.StatusOK)
	}
}
