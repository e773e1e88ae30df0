// Package ready holds the readiness gate that keeps product routes closed
// until the price store has been seeded.
package ready

import (
	"net/http"
	"sync/atomic"

	"github.com/labstack/echo/v4"
)

type Gate struct {
	ready atomic.Bool
}

func NewGate() *Gate {
	return &Gate{}
}

// MarkReady opens the gate. It is safe to call more than once.
func (g *Gate) MarkReady() {
	g.ready.Store(true)
}

func (g *Gate) Ready() bool {
	return g.ready.Load()
}

// Middleware rejects requests with 503 while the gate is closed.
func (g *Gate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !g.Ready() {
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "service not ready"})
			}
			return next(c)
		}
	}
}
