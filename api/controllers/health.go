package controllers

import (
	"net/http"
	"time"

	"github.com/mohit-1289/martx-backend/api/responses"
	"github.com/mohit-1289/martx-backend/pkg/config"
	"github.com/mohit-1289/martx-backend/pkg/db"
	"github.com/mohit-1289/martx-backend/pkg/logger"
	redisclient "github.com/mohit-1289/martx-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Martx-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports per-dependency readiness. The catalog is deliberately
// absent: the demo fallback keeps the storefront serviceable without it.
func HealthReady(cfg *config.Config, logg *logger.Logger, archive db.Pinger, kv redisclient.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := newTimeoutContext(r, 2*time.Second)
		defer cancel()

		checks := map[string]string{}
		healthy := true

		if archive != nil {
			if err := archive.Ping(ctx); err != nil {
				checks["archive"] = err.Error()
				healthy = false
			} else {
				checks["archive"] = "ok"
			}
		}

		if kv != nil {
			if err := kv.Ping(ctx); err != nil {
				checks["kv"] = err.Error()
				healthy = false
			} else {
				checks["kv"] = "ok"
			}
		}

		w.Header().Set("X-Martx-Env", cfg.App.Env)
		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
			if logg != nil {
				logg.Warn(logg.WithField(ctx, "checks", checks), "readiness degraded")
			}
		}
		responses.WriteSuccessStatus(w, status, map[string]any{
			"status": statusLabel(healthy),
			"checks": checks,
		})
	}
}

func statusLabel(healthy bool) string {
	if healthy {
		return "ready"
	}
	return "degraded"
}
