package controllers

import (
	"net/http"

	"github.com/buyyourkawa/kawa-backend/api/responses"
	"github.com/buyyourkawa/kawa-backend/pkg/config"
	pkgerrors "github.com/buyyourkawa/kawa-backend/pkg/errors"
	"github.com/buyyourkawa/kawa-backend/pkg/logger"
	"github.com/buyyourkawa/kawa-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Kawa-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness. When Redis is configured it must answer a
// ping; without Redis the in-memory stores are always ready.
func HealthReady(cfg *config.Config, cache redis.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Kawa-Env", cfg.App.Env)
		if cache != nil {
			if err := cache.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
