package health

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ReadinessChecker reports whether the service may take product traffic.
type ReadinessChecker interface {
	Ready() bool
}

// RegisterHealthRoutes mounts /healthz (liveness) and /readyz (seed finished).
func RegisterHealthRoutes(e *echo.Echo, gate ReadinessChecker) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	e.GET("/readyz", func(c echo.Context) error {
		if !gate.Ready() {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "starting"})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ready"})
	})
}
