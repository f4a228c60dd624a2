package deliverymen_get

import (
	"net/http"

	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/response"
	"logistics/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	deliverymen, err := h.service.GetDeliverymen(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("get deliverymen")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	deliverymenDTO := make([]dto.Deliveryman, 0, len(deliverymen))
	for _, deliverymanEntity := range deliverymen {
		deliverymenDTO = append(deliverymenDTO, response.DeliverymanToDTO(deliverymanEntity))
	}

	err = response.WriteJSON(w, http.StatusOK, deliverymenDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
