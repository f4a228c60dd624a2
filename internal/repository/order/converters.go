package order

import (
	"logistics/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:            o.ID,
		Product:       o.Product,
		DeliverymanID: o.DeliverymanID,
		RecipientID:   o.RecipientID,
		SignatureID:   o.SignatureID,
		StartDate:     o.StartDate,
		EndDate:       o.EndDate,
		CanceledAt:    o.CanceledAt,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		Recipient:     RecipientToDomain(&o.Recipient),
	}
}

func RecipientToDomain(r *RecipientDB) *entities.Recipient {
	if r == nil {
		return nil
	}

	return &entities.Recipient{
		ID:         r.ID,
		Name:       r.Name,
		Street:     r.Street,
		Number:     r.Number,
		Complement: r.Complement,
		State:      r.State,
		City:       r.City,
		Cep:        r.Cep,
		CreatedAt:  r.CreatedAt,
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i := range ordersDB {
		result[i] = *ToDomain(&ordersDB[i])
	}
	return result
}
