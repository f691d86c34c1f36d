package db

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

// HealthHandler reports service liveness plus a database ping. The body
// stays a flat JSON object so probes can match on status == "ok".
func HealthHandler(pool *pgxpool.Pool, version string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		if err := pool.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"status":   "unavailable",
				"version":  version,
				"database": "down",
			})
		}

		stat := pool.Stat()
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":   "ok",
			"version":  version,
			"database": "up",
			"pool": map[string]int32{
				"total_conns": stat.TotalConns(),
				"idle_conns":  stat.IdleConns(),
				"max_conns":   stat.MaxConns(),
			},
		})
	}
}
