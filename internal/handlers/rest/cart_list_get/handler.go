package cart_list_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"takeout/internal/dto"
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

	lines, err := h.service.List(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidOwnerID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.CartLinesFromDomain(lines))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
