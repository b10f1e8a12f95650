package cart_add_post

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

	var itemDTO dto.ShoppingCartItem
	err := json.NewDecoder(r.Body).Decode(&itemDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	line, err := h.service.Add(r.Context(), userID, itemDTO.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidItemRequest),
			errors.Is(err, cart.ErrInvalidOwnerID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, cart.ErrItemNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("user", userID),
			).Error("add to shopping cart")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.CartLineFromDomain(*line))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
