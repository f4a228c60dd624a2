package deliveryman_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/entities"
	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/service/deliveryman"
	"logistics/pkg/logger"
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
	var deliverymanUpdateDTO dto.DeliverymanUpdate
	err := json.NewDecoder(r.Body).Decode(&deliverymanUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliverymanModifyEntity := entities.DeliverymanModify{
		ID:       &deliverymanUpdateDTO.ID,
		Name:     deliverymanUpdateDTO.Name,
		Email:    deliverymanUpdateDTO.Email,
		AvatarID: deliverymanUpdateDTO.AvatarID,
	}

	updated, err := h.service.UpdateDeliveryman(r.Context(), deliverymanModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, deliveryman.ErrDeliverymanNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, deliveryman.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, deliveryman.ErrMissingRequiredFields),
			errors.Is(err, deliveryman.ErrInvalidDeliverymanID),
			errors.Is(err, deliveryman.ErrInvalidName),
			errors.Is(err, deliveryman.ErrInvalidEmail),
			errors.Is(err, deliveryman.ErrInvalidAvatarID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("deliveryman_id", deliverymanUpdateDTO.ID),
			).Error("update deliveryman")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	err = response.WriteJSON(w, http.StatusOK, response.DeliverymanToDTO(*updated))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
