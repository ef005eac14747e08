package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vkarsten/warehouse-management-system/pkg/domain/entities"
)

// ErrInvalidQuantity rejects zero or negative order amounts
var ErrInvalidQuantity = errors.New("order quantity must be positive")

// InsufficientStockError rejects an order above the available amount. It
// carries the maximum orderable quantity so the caller can offer the capped
// amount instead.
type InsufficientStockError struct {
	Requested entities.Quantity
	Available entities.Quantity
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("requested %d units but only %d available", e.Requested, e.Available)
}

// OrderService validates and places simulated orders. Placed orders are never
// stored and never decrement the catalog; the confirmation is the whole
// effect.
type OrderService struct {
	queries      *QueryService
	newReference func() string
	now          func() time.Time
}

// NewOrderService creates an order service backed by the given query service
func NewOrderService(queries *QueryService) *OrderService {
	return &OrderService{
		queries:      queries,
		newReference: uuid.NewString,
		now:          time.Now,
	}
}

// Availability returns the total orderable amount for an item name
func (s *OrderService) Availability(itemName string) entities.Quantity {
	return s.queries.TotalAvailability(s.queries.MatchByName(itemName))
}

// PlaceOrder validates the requested quantity against current availability
// and returns the confirmed order. An over-ask fails with
// *InsufficientStockError carrying the maximum orderable amount.
func (s *OrderService) PlaceOrder(itemName string, quantity entities.Quantity) (*entities.Order, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	available := s.Availability(itemName)
	if quantity > available {
		return nil, &InsufficientStockError{Requested: quantity, Available: available}
	}

	return entities.NewOrder(s.newReference(), itemName, quantity, s.now())
}
