package cart_clean_delete

import (
	"errors"
	"net/http"

	"takeout/internal/pkg/middlewares/auth"
	"takeout/internal/service/cart"
	"takeout/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	err := h.service.Clear(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidOwnerID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("user", userID),
			).Error("clear shopping cart")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
