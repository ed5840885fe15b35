package customer

import (
	"errors"
	"time"
)

var (
	ErrEmptyName  = errors.New("customer name cannot be empty")
	ErrEmptyPhone = errors.New("customer phone cannot be empty")
	ErrNotFound   = errors.New("customer not found")
)

// Customer represents a shop customer. Bills and payments reference the
// customer by id; the outstanding balance is always derived from them and
// never stored on the entity.
type Customer struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address,omitempty"`
	Email      string    `json:"email,omitempty"`
	IDDocument string    `json:"id_document,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewCustomer creates a new customer
func NewCustomer(name, phone, address, email, idDocument string) (*Customer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if phone == "" {
		return nil, ErrEmptyPhone
	}

	return &Customer{
		Name:       name,
		Phone:      phone,
		Address:    address,
		Email:      email,
		IDDocument: idDocument,
		CreatedAt:  time.Now(),
	}, nil
}
