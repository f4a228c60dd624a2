package pickups_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"logistics/internal/entities"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/service/pickup"
	"logistics/pkg/logger"
)

const totalCountHeader = "X-Total-Count"

var errInvalidPageParam = errors.New("page must be a positive integer")

// Handler отдает страницу активных или завершенных заказов курьера, state задается при регистрации роута.
type Handler struct {
	log     handlerLogger
	service Service
	state   entities.PickupState
}

func New(log handlerLogger, service Service, state entities.PickupState) *Handler {
	handlerLog := log.With(logger.NewField("pickup_state", state.String()))

	return &Handler{
		log:     handlerLog,
		service: service,
		state:   state,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	deliverymanID, err := strconv.ParseInt(mux.Vars(r)["deliveryman_id"], 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, pickup.ErrInvalidDeliverymanID)
		return
	}

	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err = strconv.Atoi(pageStr)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, errInvalidPageParam)
			return
		}
	}

	var pickupPage *entities.PickupPage
	if h.state == entities.PickupCompleted {
		pickupPage, err = h.service.ListCompletedPickups(r.Context(), deliverymanID, page)
	} else {
		pickupPage, err = h.service.ListActivePickups(r.Context(), deliverymanID, page)
	}
	if err != nil {
		switch {
		case errors.Is(err, pickup.ErrDeliverymanNotFound):
			h.writeError(w, http.StatusNotFound, err)
		case errors.Is(err, pickup.ErrInvalidDeliverymanID),
			errors.Is(err, pickup.ErrInvalidPage):
			h.writeError(w, http.StatusBadRequest, err)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("deliveryman_id", deliverymanID),
			).Error("list pickups")
			h.writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	w.Header().Set(totalCountHeader, strconv.FormatInt(pickupPage.Total, 10))
	err = response.WriteJSON(w, http.StatusOK, response.OrdersToDTO(pickupPage.Orders))
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
