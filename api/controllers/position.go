package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/smartaisle/smartcart-backend/api/responses"
	"github.com/smartaisle/smartcart-backend/api/validators"
	"github.com/smartaisle/smartcart-backend/internal/position"
	pkgerrors "github.com/smartaisle/smartcart-backend/pkg/errors"
	"github.com/smartaisle/smartcart-backend/pkg/logger"
)

type reportPositionRequest struct {
	SessionID string          `json:"sessionId" validate:"required"`
	Section   string          `json:"section" validate:"required"`
	X         decimal.Decimal `json:"x"`
	Y         decimal.Decimal `json:"y"`
}

func ReportPosition(store position.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload reportPositionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		pos, err := store.Report(r.Context(), position.ReportInput{
			SessionID: payload.SessionID,
			Section:   payload.Section,
			X:         payload.X,
			Y:         payload.Y,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, pos)
	}
}

func GetPosition(store position.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "sessionId")
		pos, ok, err := store.Get(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "no position reported for session"))
			return
		}
		responses.WriteSuccess(w, pos)
	}
}
