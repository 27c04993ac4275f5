package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/smartaisle/smartcart-backend/api/responses"
	"github.com/smartaisle/smartcart-backend/api/validators"
	"github.com/smartaisle/smartcart-backend/internal/cart"
	"github.com/smartaisle/smartcart-backend/pkg/logger"
)

type addCartItemRequest struct {
	SessionID string           `json:"sessionId" validate:"required"`
	ProductID int64            `json:"productId" validate:"required"`
	Quantity  decimal.Decimal  `json:"quantity"`
	Weight    *decimal.Decimal `json:"weight,omitempty"`
	UnitPrice decimal.Decimal  `json:"unitPrice"`
}

type updateCartItemRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

type updateCartItemResponse struct {
	Item    cart.Line `json:"item"`
	Removed bool      `json:"removed"`
}

type removeCartItemResponse struct {
	Removed bool `json:"removed"`
}

func GetCart(store cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "sessionId")
		summary, err := store.GetSummary(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

func AddCartItem(store cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		line, err := store.AddLine(r.Context(), cart.AddLineInput{
			SessionID: payload.SessionID,
			ProductID: payload.ProductID,
			Quantity:  payload.Quantity,
			Weight:    payload.Weight,
			UnitPrice: payload.UnitPrice,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, line)
	}
}

func UpdateCartItem(store cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lineID := chi.URLParam(r, "id")

		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		line, removed, err := store.UpdateQuantity(r.Context(), lineID, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updateCartItemResponse{Item: line, Removed: removed})
	}
}

// RemoveCartItem deletes a line. Missing lines answer removed=false
// with a 200, not a 404; removal is idempotent.
func RemoveCartItem(store cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lineID := chi.URLParam(r, "id")
		removed, err := store.RemoveLine(r.Context(), lineID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, removeCartItemResponse{Removed: removed})
	}
}

func ClearCart(store cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "sessionId")
		if err := store.ClearSession(r.Context(), sessionID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"message": "cart cleared"})
	}
}
