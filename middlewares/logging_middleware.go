package middlewares

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/Pranay-Bhilare/op-atlas/monitoring"
	"github.com/labstack/echo/v4"
)

// custom echo middleware used for request logging
func logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			now := time.Now()

			err := next(ctx)

			if err == nil && ctx.Request().URL.String() != "/api/v1/health/" {
				slog.Info("handled request", "method", ctx.Request().Method, "url", ctx.Request().URL, "status", ctx.Response().Status, "duration", time.Since(now))
			}
			return err
		}
	}
}

func metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			now := time.Now()

			err := next(ctx)

			status := ctx.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			monitoring.RequestsTotal.WithLabelValues(ctx.Request().Method, strconv.Itoa(status)).Inc()
			monitoring.RequestDuration.Observe(time.Since(now).Seconds())
			return err
		}
	}
}

func recovermiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					monitoring.RecoverAndAlert("recovered from panic", fmt.Errorf("%v", r))
					_ = ctx.JSON(500, echo.Map{"message": "internal server error"})
				}
			}()
			return next(ctx)
		}
	}
}
