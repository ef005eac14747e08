package dto

import "github.com/vkarsten/warehouse-management-system/pkg/domain/entities"

// StockedUnit pairs a stock record with how long it has been on the shelf
type StockedUnit struct {
	Record      entities.StockRecord
	DaysInStock int
}

// WarehouseAvailability is the per-warehouse slice of an availability report
type WarehouseAvailability struct {
	Warehouse entities.WarehouseID
	Units     []StockedUnit
}

// AvailabilityReport answers a name search across all warehouses
type AvailabilityReport struct {
	ItemName     string
	Total        entities.Quantity
	PerWarehouse []WarehouseAvailability

	// MaxWarehouse is meaningful only when HasMax is true, which requires
	// stock in more than one warehouse.
	MaxWarehouse entities.WarehouseID
	MaxCount     entities.Quantity
	HasMax       bool
}

// WarehouseListing is the full item listing of one warehouse
type WarehouseListing struct {
	Warehouse entities.WarehouseID
	Items     []entities.StockRecord
	Total     entities.Quantity
}

// CategoryChoice is one line of the numbered category menu
type CategoryChoice struct {
	Index int
	Name  string
	Count entities.Quantity
}
