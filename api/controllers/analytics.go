package controllers

import (
	"net/http"

	"github.com/smartaisle/smartcart-backend/api/responses"
	"github.com/smartaisle/smartcart-backend/internal/analytics"
	"github.com/smartaisle/smartcart-backend/pkg/logger"
)

func CartUsage(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.CartUsage(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}
