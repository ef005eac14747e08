package entities

import (
	"fmt"
	"strings"
	"time"
)

// WarehouseID identifies a physical warehouse location
type WarehouseID int

// Quantity represents an integer count of stock units
type Quantity int

// DateOfStockLayout is the timestamp format used by catalog documents
const DateOfStockLayout = "2006-01-02 15:04:05"

// StockRecord represents one physical unit of inventory. Records carry no
// identity of their own; two records with identical fields are two distinct
// units on the shelf.
type StockRecord struct {
	State       string
	Category    string
	Warehouse   WarehouseID
	DateOfStock time.Time
}

// NewStockRecord creates a validated StockRecord
func NewStockRecord(state, category string, warehouse WarehouseID, dateOfStock time.Time) (*StockRecord, error) {
	if strings.TrimSpace(state) == "" {
		return nil, fmt.Errorf("state cannot be empty")
	}
	if strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("category cannot be empty")
	}
	if warehouse <= 0 {
		return nil, fmt.Errorf("warehouse must be positive, got %d", warehouse)
	}
	if dateOfStock.IsZero() {
		return nil, fmt.Errorf("date of stock cannot be zero")
	}

	return &StockRecord{
		State:       state,
		Category:    category,
		Warehouse:   warehouse,
		DateOfStock: dateOfStock,
	}, nil
}

// ProductLabel returns the normalized display name of the unit, composed as
// lowercase state followed by lowercase category ("new laptop"). Name searches
// compare against this label.
func (r StockRecord) ProductLabel() string {
	return strings.ToLower(r.State) + " " + strings.ToLower(r.Category)
}

// String returns the human-readable name of the unit ("New Laptop")
func (r StockRecord) String() string {
	return r.State + " " + r.Category
}

// MatchMap maps every known warehouse to the records matching a name query in
// that warehouse. Warehouses with no matches are present with an empty slice,
// so callers can tell "out of stock everywhere" apart from "never queried".
type MatchMap map[WarehouseID][]StockRecord
