package api

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	graphqlApi "product.GO/api/graphql"
	healthApi "product.GO/api/health"
	productApi "product.GO/api/product"
	"product.GO/core/ready"
	productService "product.GO/service/product"
)

// ProductGetter is the query side of the product service.
type ProductGetter interface {
	GetProduct(ctx context.Context, requestedID string) productService.Response
}

// NewServer wires middleware and every route. Product and GraphQL routes sit
// behind the readiness gate; health routes do not.
func NewServer(products ProductGetter, gate *ready.Gate) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
			}
			if v.Error != nil {
				slog.ErrorContext(c.Request().Context(), "request_failed", append(attrs, "error", v.Error)...)
				return nil
			}
			slog.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))
	e.Use(middleware.Gzip())
	e.Use(requestDuration)

	healthApi.RegisterHealthRoutes(e, gate)

	g := e.Group("", gate.Middleware())
	productApi.RegisterProductRoutes(g, products)
	if err := graphqlApi.RegisterGraphQLRoutes(g, products); err != nil {
		return nil, err
	}
	return e, nil
}

func requestDuration(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		c.Response().Before(func() {
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		})
		return next(c)
	}
}
