package deliveryman_post

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
	var deliverymanCreateDTO dto.DeliverymanCreate
	err := json.NewDecoder(r.Body).Decode(&deliverymanCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliverymanModifyEntity := entities.DeliverymanModify{
		Name:     &deliverymanCreateDTO.Name,
		Email:    &deliverymanCreateDTO.Email,
		AvatarID: deliverymanCreateDTO.AvatarID,
	}

	id, err := h.service.CreateDeliveryman(r.Context(), deliverymanModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, deliveryman.ErrMissingRequiredFields),
			errors.Is(err, deliveryman.ErrInvalidName),
			errors.Is(err, deliveryman.ErrInvalidEmail),
			errors.Is(err, deliveryman.ErrInvalidAvatarID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, deliveryman.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create deliveryman")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	err = response.WriteJSON(w, http.StatusCreated, dto.DeliverymanCreateResponse{ID: id})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
