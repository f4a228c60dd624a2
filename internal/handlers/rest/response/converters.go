package response

import (
	"logistics/internal/entities"
	"logistics/internal/generated/dto"
)

func DeliverymanToDTO(deliveryman entities.Deliveryman) dto.Deliveryman {
	return dto.Deliveryman{
		ID:       deliveryman.ID,
		Name:     deliveryman.Name,
		Email:    deliveryman.Email,
		AvatarID: deliveryman.AvatarID,
	}
}

func OrderToDTO(order entities.Order) dto.Order {
	orderDTO := dto.Order{
		ID:            order.ID,
		Product:       order.Product,
		DeliverymanID: order.DeliverymanID,
		RecipientID:   order.RecipientID,
		SignatureID:   order.SignatureID,
		StartDate:     order.StartDate,
		EndDate:       order.EndDate,
		CanceledAt:    order.CanceledAt,
		CreatedAt:     order.CreatedAt,
	}

	if order.Recipient != nil {
		orderDTO.Recipient = &dto.Recipient{
			ID:         order.Recipient.ID,
			Name:       order.Recipient.Name,
			Street:     order.Recipient.Street,
			Number:     order.Recipient.Number,
			Complement: order.Recipient.Complement,
			State:      order.Recipient.State,
			City:       order.Recipient.City,
			Cep:        order.Recipient.Cep,
		}
	}

	return orderDTO
}

func OrdersToDTO(orders []entities.Order) []dto.Order {
	result := make([]dto.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToDTO(order))
	}

	return result
}
