package dish_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"takeout/internal/dto"
	"takeout/internal/pkg/middlewares/auth"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := auth.EmployeeID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var dishDTO dto.Dish
	err := json.NewDecoder(r.Body).Decode(&dishDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), employeeID, dishDTO.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, dish.ErrInvalidDishID),
			errors.Is(err, dish.ErrInvalidDish),
			errors.Is(err, dish.ErrInvalidCategory),
			errors.Is(err, dish.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dish.ErrDishNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dish.ErrDishNameTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("dish", dishDTO.ID),
			).Error("update dish")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.DishFromDomain(*updated))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
