package dish_status_post

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"takeout/internal/entities"
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

// ServeHTTP включает или снимает блюдо с продажи: /admin/dish/status/{status}?id=
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := auth.EmployeeID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	status, err := strconv.Atoi(mux.Vars(r)["status"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	dishID, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.SetStatus(r.Context(), employeeID, dishID, entities.DishStatus(status))
	if err != nil {
		switch {
		case errors.Is(err, dish.ErrInvalidDishID),
			errors.Is(err, dish.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dish.ErrDishNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("dish", dishID),
			).Error("set dish status")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
