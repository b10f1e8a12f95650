package dish_page_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"takeout/internal/dto"
	"takeout/internal/entities"
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

// ServeHTTP отдает страницу блюд: ?page=&pageSize=&name=&categoryId=&status=
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query, err := parseQuery(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	page, err := h.service.Page(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, dish.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.DishPageFromDomain(*page))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseQuery(values url.Values) (entities.DishPageQuery, error) {
	var query entities.DishPageQuery

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return query, err
		}
		query.Page = page
	}

	if raw := values.Get("pageSize"); raw != "" {
		pageSize, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return query, err
		}
		query.PageSize = pageSize
	}

	if raw := values.Get("name"); raw != "" {
		query.Name = &raw
	}

	if raw := values.Get("categoryId"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return query, err
		}
		query.CategoryID = &categoryID
	}

	if raw := values.Get("status"); raw != "" {
		status, err := strconv.Atoi(raw)
		if err != nil {
			return query, err
		}
		dishStatus := entities.DishStatus(status)
		query.Status = &dishStatus
	}

	return query, nil
}
