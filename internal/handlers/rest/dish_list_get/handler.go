package dish_list_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"takeout/internal/dto"
	"takeout/internal/service/dish"
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

// ServeHTTP отдает блюда категории в продаже (?categoryId=). Общий для /user и /admin.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(r.URL.Query().Get("categoryId"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	dishes, err := h.service.List(r.Context(), categoryID)
	if err != nil {
		switch {
		case errors.Is(err, dish.ErrInvalidCategory):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.DishesFromDomain(dishes))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
