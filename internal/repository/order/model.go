package order

import "time"

type OrderDB struct {
	ID            int64
	Product       string
	DeliverymanID int64
	RecipientID   int64
	SignatureID   *int64
	StartDate     *time.Time
	EndDate       *time.Time
	CanceledAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Recipient RecipientDB
}

type RecipientDB struct {
	ID         int64
	Name       string
	Street     string
	Number     string
	Complement string
	State      string
	City       string
	Cep        string
	CreatedAt  time.Time
}
