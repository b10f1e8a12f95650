package cart_sub_post

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

// ServeHTTP уменьшает количество товара на единицу. Товара нет в корзине - тоже 204.
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

	err = h.service.Remove(r.Context(), userID, itemDTO.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidItemRequest),
			errors.Is(err, cart.ErrInvalidOwnerID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("user", userID),
			).Error("remove from shopping cart")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
