package dish_delete

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

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

// ServeHTTP удаляет блюда по списку ?ids=1,2,3.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIDs(r.URL.Query().Get("ids"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.Delete(r.Context(), ids)
	if err != nil {
		switch {
		case errors.Is(err, dish.ErrInvalidDishID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dish.ErrDishOnSale),
			errors.Is(err, dish.ErrDishInSetmeal):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("dishes", ids),
			).Error("delete dishes")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseIDs(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, dish.ErrInvalidDishID
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
