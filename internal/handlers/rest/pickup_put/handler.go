package pickup_put

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
		h.reject(w, http.StatusBadRequest, reasonInvalidData, pickup.ErrInvalidDeliverymanID)
		return
	}
	orderID, err := strconv.ParseInt(vars["order_id"], 10, 64)
	if err != nil {
		h.reject(w, http.StatusBadRequest, reasonInvalidData, pickup.ErrInvalidOrderID)
		return
	}

	var scheduleDTO dto.PickupScheduleRequest
	err = json.NewDecoder(r.Body).Decode(&scheduleDTO)
	if err != nil {
		h.reject(w, http.StatusBadRequest, reasonInvalidData, errInvalidBody)
		return
	}

	order, err := h.service.SchedulePickup(r.Context(), entities.PickupSchedule{
		DeliverymanID: deliverymanID,
		OrderID:       orderID,
		StartDate:     scheduleDTO.StartDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, pickup.ErrDeliverymanNotFound),
			errors.Is(err, pickup.ErrOrderNotFound):
			h.reject(w, http.StatusNotFound, reasonNotFound, err)
		case errors.Is(err, pickup.ErrDailyLimitExceeded):
			h.reject(w, http.StatusBadRequest, reasonDailyLimit, err)
		case errors.Is(err, pickup.ErrOutsideWorkWindow):
			h.reject(w, http.StatusBadRequest, reasonWorkWindow, err)
		case errors.Is(err, pickup.ErrInvalidDeliverymanID),
			errors.Is(err, pickup.ErrInvalidOrderID),
			errors.Is(err, pickup.ErrInvalidStartDate):
			h.reject(w, http.StatusBadRequest, reasonInvalidData, err)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("deliveryman_id", deliverymanID),
				logger.NewField("order_id", orderID),
			).Error("schedule pickup")
			h.writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	PickupsScheduledTotal.Inc()

	err = response.WriteJSON(w, http.StatusOK, response.OrderToDTO(*order))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) reject(w http.ResponseWriter, status int, reason string, err error) {
	PickupsRejectedTotal.WithLabelValues(reason).Inc()
	h.writeError(w, status, err)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	if writeErr := response.WriteError(w, status, err); writeErr != nil {
		h.log.With(
			logger.NewField("error", writeErr),
		).Error("encode JSON response")
	}
}
