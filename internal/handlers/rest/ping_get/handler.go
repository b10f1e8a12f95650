package ping_get

import (
	"encoding/json"
	"net/http"
	"time"

	"takeout/internal/dto"
	"takeout/pkg/logger"
)

type Handler struct {
	log handlerLogger
	now func() time.Time
}

// New принимает источник времени для поля serverTime.
func New(log handlerLogger, now func() time.Time) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
		now: now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res := dto.PingResponse{
		Message:    "pong",
		ServerTime: h.now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
