package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tienda-storefront/internal/domain"
	"tienda-storefront/internal/service/adminauth"
)

// adminAuthMiddleware requires a live bearer token issued by the login
// handler. There is a single admin identity; no roles.
func adminAuthMiddleware(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" || !auth.Valid(token) {
			respondError(c, http.StatusUnauthorized, "admin session required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

func loginHandler(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "password required")
			return
		}
		token, err := auth.Login(req.Password)
		if err != nil {
			if errors.Is(err, adminauth.ErrBadPassword) {
				respondError(c, http.StatusUnauthorized, "invalid password")
				return
			}
			respondError(c, http.StatusInternalServerError, "login failed")
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "expiresIn": auth.TTLSeconds()})
	}
}

func logoutHandler(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.Logout(bearerToken(c.GetHeader("Authorization")))
		c.Status(http.StatusNoContent)
	}
}

// Admin product listing reuses the storefront listing without refinements,
// so inactive and out-of-stock products stay visible in the console.
func adminListProductsHandler(svc CatalogService, logger *log.Logger) gin.HandlerFunc {
	return listProductsHandler(svc, logger)
}

func createProductHandler(admin AdminBackend, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in domain.ProductInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid product payload")
			return
		}
		product, err := admin.CreateProduct(c.Request.Context(), in)
		if err != nil {
			respondBackendError(c, logger, err, "product not found")
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

func updateProductHandler(admin AdminBackend, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		var in domain.ProductInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid product payload")
			return
		}
		product, err := admin.UpdateProduct(c.Request.Context(), id, in)
		if err != nil {
			respondBackendError(c, logger, err, "product not found")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func deleteProductHandler(admin AdminBackend, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		if err := admin.DeleteProduct(c.Request.Context(), id); err != nil {
			respondBackendError(c, logger, err, "product not found")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func listOrdersHandler(admin AdminBackend, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := admin.Orders(c.Request.Context())
		if err != nil {
			respondBackendError(c, logger, err, "orders not found")
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func adminGetOrderHandler(admin AdminBackend, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		order, err := admin.Order(c.Request.Context(), id)
		if err != nil {
			respondBackendError(c, logger, err, "order not found")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// updateOrderStatusHandler validates the transition against the order's
// current state before forwarding. The backend still has the final word.
func updateOrderStatusHandler(admin AdminBackend, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "status required")
			return
		}
		if !domain.ValidOrderStatus(req.Status) {
			respondError(c, http.StatusUnprocessableEntity, "unknown status")
			return
		}

		current, err := admin.Order(c.Request.Context(), id)
		if err != nil {
			respondBackendError(c, logger, err, "order not found")
			return
		}
		if !domain.CanTransitionOrder(current.Status, req.Status) {
			respondError(c, http.StatusUnprocessableEntity,
				"cannot change status from "+current.Status+" to "+req.Status)
			return
		}

		order, err := admin.UpdateOrderStatus(c.Request.Context(), id, req.Status)
		if err != nil {
			respondBackendError(c, logger, err, "order not found")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func statsHandler(admin AdminBackend, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := admin.Stats(c.Request.Context())
		if err != nil {
			respondBackendError(c, logger, err, "stats not found")
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
