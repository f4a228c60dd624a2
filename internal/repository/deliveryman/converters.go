package deliveryman

import (
	"logistics/internal/entities"
)

func ToDomain(d *DeliverymanDB) *entities.Deliveryman {
	if d == nil {
		return nil
	}

	return &entities.Deliveryman{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		AvatarID:  d.AvatarID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func FromDomainModify(deliverymanModify *entities.DeliverymanModify) *DeliverymanModifyDB {
	if deliverymanModify == nil {
		return nil
	}

	return &DeliverymanModifyDB{
		ID:       deliverymanModify.ID,
		Name:     deliverymanModify.Name,
		Email:    deliverymanModify.Email,
		AvatarID: deliverymanModify.AvatarID,
	}
}

func ToDomainList(deliverymenDB []DeliverymanDB) []entities.Deliveryman {
	if len(deliverymenDB) == 0 {
		return []entities.Deliveryman{}
	}

	result := make([]entities.Deliveryman, len(deliverymenDB))
	for i := range deliverymenDB {
		result[i] = *ToDomain(&deliverymenDB[i])
	}
	return result
}
