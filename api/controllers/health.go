package controllers

import (
	"net/http"

	"github.com/smartaisle/smartcart-backend/api/responses"
	"github.com/smartaisle/smartcart-backend/pkg/config"
	pkgerrors "github.com/smartaisle/smartcart-backend/pkg/errors"
	"github.com/smartaisle/smartcart-backend/pkg/logger"
	"github.com/smartaisle/smartcart-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-SmartCart-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady checks the store backend. A nil redis pinger means the
// in-memory backend is active and readiness equals liveness.
func HealthReady(cfg *config.Config, logg *logger.Logger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-SmartCart-Env", cfg.App.Env)

		if redisP != nil {
			if err := redisP.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
