package delivery_finish_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"logistics/internal/entities"
	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/service/pickup"
	"logistics/pkg/logger"
)

var errInvalidBody = errors.New("invalid request body")

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
	vars := mux.Vars(r)
	deliverymanID, err := strconv.ParseInt(vars["deliveryman_id"], 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, pickup.ErrInvalidDeliverymanID)
		return
	}
	orderID, err := strconv.ParseInt(vars["order_id"], 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, pickup.ErrInvalidOrderID)
		return
	}

	var finishDTO dto.DeliveryFinishRequest
	err = json.NewDecoder(r.Body).Decode(&finishDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	order, err := h.service.FinishDelivery(r.Context(), entities.DeliveryFinish{
		DeliverymanID: deliverymanID,
		OrderID:       orderID,
		SignatureID:   finishDTO.SignatureID,
	})
	if err != nil {
		switch {
		case errors.Is(err, pickup.ErrDeliverymanNotFound),
			errors.Is(err, pickup.ErrOrderNotFound):
			h.writeError(w, http.StatusNotFound, err)
		case errors.Is(err, pickup.ErrOrderAlreadyDelivered):
			h.writeError(w, http.StatusConflict, err)
		case errors.Is(err, pickup.ErrInvalidDeliverymanID),
			errors.Is(err, pickup.ErrInvalidOrderID),
			errors.Is(err, pickup.ErrInvalidSignatureID),
			errors.Is(err, pickup.ErrOrderNotAssigned),
			errors.Is(err, pickup.ErrOrderCanceled),
			errors.Is(err, pickup.ErrOrderNotPickedUp):
			h.writeError(w, http.StatusBadRequest, err)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("deliveryman_id", deliverymanID),
				logger.NewField("order_id", orderID),
			).Error("finish delivery")
			h.writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	err = response.WriteJSON(w, http.StatusOK, response.OrderToDTO(*order))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	if writeErr := response.WriteError(w, status, err); writeErr != nil {
		h.log.With(
			logger.NewField("error", writeErr),
		).Error("encode JSON response")
	}
}
