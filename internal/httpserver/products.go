package httpserver

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tienda-storefront/internal/service/catalog"
)

func listProductsHandler(svc CatalogService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := catalog.Query{
			Search:   c.Query("search"),
			Category: c.Query("category"),
			Sort:     c.Query("sort"),
			InStock:  boolQuery(c, "inStock"),
		}
		q.MinPrice, _ = strconv.ParseInt(c.Query("minPrice"), 10, 64)
		q.MaxPrice, _ = strconv.ParseInt(c.Query("maxPrice"), 10, 64)

		products, err := svc.List(c.Request.Context(), q)
		if err != nil {
			respondBackendError(c, logger, err, "products not found")
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func getProductHandler(svc CatalogService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		product, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondBackendError(c, logger, err, "product not found")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func boolQuery(c *gin.Context, key string) bool {
	v := c.Query(key)
	return v == "true" || v == "1"
}

// idParam parses a numeric path parameter, answering 400 on garbage.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
