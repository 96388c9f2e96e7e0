package mockapi

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ovenworks/bakeryadmin/internal/logging"
)

func requestLogger(base *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			l := base.With(
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
			)
			if rid := c.Response().Header().Get(echo.HeaderXRequestID); rid != "" {
				l = l.With("request_id", rid)
			}

			req := c.Request().WithContext(logging.IntoContext(c.Request().Context(), l))
			c.SetRequest(req)

			start := time.Now()
			err := next(c)
			status := c.Response().Status

			switch {
			case err != nil || status >= 500:
				l.Error("request completed", "status", status, "duration_ms", time.Since(start).Milliseconds(), "error", err)
			case status >= 400:
				l.Warn("request completed", "status", status, "duration_ms", time.Since(start).Milliseconds())
			default:
				l.Info("request completed", "status", status, "duration_ms", time.Since(start).Milliseconds())
			}
			return err
		}
	}
}
