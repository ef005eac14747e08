package repositories

import "github.com/vkarsten/warehouse-management-system/pkg/domain/entities"

// CatalogRepository provides read access to the stock catalog. The catalog is
// loaded exactly once at startup and never mutated afterwards; every query on
// an unloaded repository returns empty results rather than an error.
type CatalogRepository interface {
	// LoadRecords populates the catalog. It may be called at most once.
	LoadRecords(records []*entities.StockRecord) error

	// Warehouses returns the distinct warehouse IDs in ascending order.
	Warehouses() []entities.WarehouseID

	// Categories returns the distinct category names in lexicographic order.
	Categories() []string

	// ItemsByWarehouse returns all records in the given warehouse, in load order.
	ItemsByWarehouse(warehouse entities.WarehouseID) []entities.StockRecord

	// ItemsByCategory returns all records whose category matches exactly
	// (case-sensitive), in load order.
	ItemsByCategory(category string) []entities.StockRecord

	// AllRecords returns every record in load order.
	AllRecords() []entities.StockRecord
}
