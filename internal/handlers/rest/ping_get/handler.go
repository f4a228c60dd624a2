package ping_get

import (
	"net/http"

	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/response"
	"logistics/pkg/logger"
)

const pong = "pong"

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(logger.NewField("handler", "ping_get")),
	}
}

// ServeHTTP не трогает зависимости, для проверки БД есть HEAD /healthcheck.
func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	message := pong

	err := response.WriteJSON(w, http.StatusOK, dto.PingResponse{Message: &message})
	if err != nil {
		h.log.With(logger.NewField("error", err)).Error("encode JSON response")
	}
}
