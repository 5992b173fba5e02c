package controllers

import (
	"net/http"

	"github.com/nextlayer-studio/storefront-backend/api/responses"
	"github.com/nextlayer-studio/storefront-backend/api/validators"
	"github.com/nextlayer-studio/storefront-backend/internal/chat"
	pkgerrors "github.com/nextlayer-studio/storefront-backend/pkg/errors"
	"github.com/nextlayer-studio/storefront-backend/pkg/logger"
)

type chatRequest struct {
	Message string `json:"message" validate:"required"`
}

func Chat(svc chat.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "chat service unavailable"))
			return
		}

		var payload chatRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.SendMessage(r.Context(), payload.Message)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}
