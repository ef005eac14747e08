package entities

import (
	"fmt"
	"time"
)

// Order represents a placed order. Orders are a session artifact only: they
// are never persisted and never decrement the catalog.
type Order struct {
	Reference string
	ItemName  string
	Quantity  Quantity
	PlacedAt  time.Time
}

// NewOrder creates a validated Order
func NewOrder(reference, itemName string, quantity Quantity, placedAt time.Time) (*Order, error) {
	if reference == "" {
		return nil, fmt.Errorf("order reference cannot be empty")
	}
	if itemName == "" {
		return nil, fmt.Errorf("item name cannot be empty")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	return &Order{
		Reference: reference,
		ItemName:  itemName,
		Quantity:  quantity,
		PlacedAt:  placedAt,
	}, nil
}
