package controllers

import (
	"net/http"

	"github.com/nextlayer-studio/storefront-backend/api/middleware"
	"github.com/nextlayer-studio/storefront-backend/api/responses"
	"github.com/nextlayer-studio/storefront-backend/api/validators"
	"github.com/nextlayer-studio/storefront-backend/internal/checkout"
	pkgerrors "github.com/nextlayer-studio/storefront-backend/pkg/errors"
	"github.com/nextlayer-studio/storefront-backend/pkg/logger"
)

type checkoutRequest struct {
	CustomerName string `json:"customer_name" validate:"required"`
}

// Checkout renders the WhatsApp order for the session's cart. The cart stays
// untouched; the client decides when to clear it.
func Checkout(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Checkout(r.Context(), middleware.CartSessionFromContext(r.Context()), payload.CustomerName)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}
