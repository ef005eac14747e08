package memory

import (
	"fmt"
	"sort"

	"github.com/vkarsten/warehouse-management-system/pkg/domain/entities"
	"github.com/vkarsten/warehouse-management-system/pkg/domain/repositories"
)

// CatalogRepository provides in-memory stock catalog storage
type CatalogRepository struct {
	records []entities.StockRecord
	loaded  bool
}

// NewCatalogRepository creates a new in-memory catalog repository
func NewCatalogRepository(expectedRecords int) *CatalogRepository {
	return &CatalogRepository{
		records: make([]entities.StockRecord, 0, expectedRecords),
	}
}

// Verify interface compliance
var _ repositories.CatalogRepository = (*CatalogRepository)(nil)

// LoadRecords loads stock records into the repository. The catalog is
// load-once: a second call is an error, so callers cannot mutate the catalog
// mid-session.
func (r *CatalogRepository) LoadRecords(records []*entities.StockRecord) error {
	if r.loaded {
		return fmt.Errorf("catalog already loaded with %d records", len(r.records))
	}
	for _, record := range records {
		r.records = append(r.records, *record)
	}
	r.loaded = true
	return nil
}

// Warehouses returns the distinct warehouse IDs in ascending order
func (r *CatalogRepository) Warehouses() []entities.WarehouseID {
	seen := make(map[entities.WarehouseID]bool)
	warehouses := []entities.WarehouseID{}

	for _, record := range r.records {
		if !seen[record.Warehouse] {
			seen[record.Warehouse] = true
			warehouses = append(warehouses, record.Warehouse)
		}
	}
	sort.Slice(warehouses, func(i, j int) bool {
		return warehouses[i] < warehouses[j]
	})

	return warehouses
}

// Categories returns the distinct category names in lexicographic order
func (r *CatalogRepository) Categories() []string {
	seen := make(map[string]bool)
	categories := []string{}

	for _, record := range r.records {
		if !seen[record.Category] {
			seen[record.Category] = true
			categories = append(categories, record.Category)
		}
	}
	sort.Strings(categories)

	return categories
}

// ItemsByWarehouse returns all records in the given warehouse, in load order
func (r *CatalogRepository) ItemsByWarehouse(warehouse entities.WarehouseID) []entities.StockRecord {
	items := []entities.StockRecord{}
	for _, record := range r.records {
		if record.Warehouse == warehouse {
			items = append(items, record)
		}
	}
	return items
}

// ItemsByCategory returns all records with an exact category match, in load order
func (r *CatalogRepository) ItemsByCategory(category string) []entities.StockRecord {
	items := []entities.StockRecord{}
	for _, record := range r.records {
		if record.Category == category {
			items = append(items, record)
		}
	}
	return items
}

// AllRecords returns every record in load order
func (r *CatalogRepository) AllRecords() []entities.StockRecord {
	items := make([]entities.StockRecord, len(r.records))
	copy(items, r.records)
	return items
}
