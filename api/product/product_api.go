package product

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	productService "product.GO/service/product"
)

// ProductGetter is the query side of the product service.
type ProductGetter interface {
	GetProduct(ctx context.Context, requestedID string) productService.Response
}

func RegisterProductRoutes(g *echo.Group, products ProductGetter) {
	// GET /product/:id: the id is accepted but the bundled product is always served
	g.GET("/product/:id", func(c echo.Context) error {
		resp := products.GetProduct(c.Request().Context(), c.Param("id"))
		return c.JSON(http.StatusOK, resp)
	})
}
