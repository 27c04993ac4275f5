package controllers

import (
	"net/http"

	"github.com/smartaisle/smartcart-backend/api/responses"
	"github.com/smartaisle/smartcart-backend/api/validators"
	"github.com/smartaisle/smartcart-backend/internal/promotions"
	"github.com/smartaisle/smartcart-backend/pkg/logger"
)

type applicablePromotionsRequest struct {
	Categories []string `json:"categories"`
	ProductIDs []int64  `json:"productIds"`
}

func ListPromotions(svc promotions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		active := svc.Active(r.Context())
		if active == nil {
			active = []promotions.Promotion{}
		}
		responses.WriteSuccess(w, active)
	}
}

func ApplicablePromotions(svc promotions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload applicablePromotionsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		matched := svc.Applicable(r.Context(), payload.Categories, payload.ProductIDs)
		if matched == nil {
			matched = []promotions.Promotion{}
		}
		responses.WriteSuccess(w, matched)
	}
}
