package entities

import "time"

type Recipient struct {
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
