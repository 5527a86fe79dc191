package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	cartsvc "tienda-storefront/internal/service/cart"
	"tienda-storefront/internal/service/checkout"
)

func checkoutHandler(carts *cartsvc.Manager, svc CheckoutService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in checkout.CustomerInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid checkout payload")
			return
		}

		store := carts.Store(cartSessionID(c))
		order, err := svc.Submit(c.Request.Context(), store, in)
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrEmptyCart), errors.Is(err, checkout.ErrNameRequired):
				respondError(c, http.StatusUnprocessableEntity, err.Error())
			default:
				respondBackendError(c, logger, err, "order not found")
			}
			return
		}

		c.JSON(http.StatusCreated, order)
	}
}

func getOrderHandler(orders OrderReader, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		order, err := orders.Order(c.Request.Context(), id)
		if err != nil {
			respondBackendError(c, logger, err, "order not found")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
