package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tienda-storefront/internal/backend"
	"tienda-storefront/internal/domain"
)

// respondError writes the uniform error envelope the UI expects.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// respondBackendError translates a backend client failure. Validation
// responses pass through with the backend's own message so forms can show
// it verbatim; transport failures collapse to 502.
func respondBackendError(c *gin.Context, logger *log.Logger, err error, notFoundMsg string) {
	if errors.Is(err, domain.ErrNotFound) {
		respondError(c, http.StatusNotFound, notFoundMsg)
		return
	}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		respondError(c, apiErr.StatusCode, apiErr.Message)
		return
	}
	logger.Printf("backend request failed: %v", err)
	respondError(c, http.StatusBadGateway, "backend unavailable")
}
