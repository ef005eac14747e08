package services

import (
	"strings"
	"time"

	"github.com/vkarsten/warehouse-management-system/pkg/application/dto"
	"github.com/vkarsten/warehouse-management-system/pkg/domain/entities"
	"github.com/vkarsten/warehouse-management-system/pkg/domain/repositories"
)

// QueryService answers compound inventory questions by composing catalog
// queries. All methods are pure reads over the immutable catalog.
type QueryService struct {
	catalog repositories.CatalogRepository
}

// NewQueryService creates a query service over the given catalog
func NewQueryService(catalog repositories.CatalogRepository) *QueryService {
	return &QueryService{catalog: catalog}
}

// MatchByName collects, per warehouse, the records whose product label equals
// the given name. The comparison is case-insensitive but exact (no substring
// matching). Every known warehouse appears in the result, possibly mapped to
// an empty list.
func (s *QueryService) MatchByName(name string) entities.MatchMap {
	normalized := strings.ToLower(strings.TrimSpace(name))

	matches := make(entities.MatchMap)
	for _, warehouse := range s.catalog.Warehouses() {
		matched := []entities.StockRecord{}
		for _, record := range s.catalog.ItemsByWarehouse(warehouse) {
			if record.ProductLabel() == normalized {
				matched = append(matched, record)
			}
		}
		matches[warehouse] = matched
	}
	return matches
}

// TotalAvailability sums the match counts across all warehouses. Zero means
// out of stock everywhere.
func (s *QueryService) TotalAvailability(matches entities.MatchMap) entities.Quantity {
	var total entities.Quantity
	for _, records := range matches {
		total += entities.Quantity(len(records))
	}
	return total
}

// MaxAvailabilityWarehouse returns the warehouse holding the most matching
// units. Ties are broken towards the lowest warehouse ID so the answer is
// deterministic. Returns false when no warehouse has stock.
func (s *QueryService) MaxAvailabilityWarehouse(matches entities.MatchMap) (entities.WarehouseID, bool) {
	var best entities.WarehouseID
	var bestCount int

	for warehouse, records := range matches {
		if len(records) > bestCount || (len(records) == bestCount && bestCount > 0 && warehouse < best) {
			best = warehouse
			bestCount = len(records)
		}
	}

	return best, bestCount > 0
}

// DaysInStock returns the whole days elapsed between the record's stock date
// and the reference instant, truncated. A future-dated record (a data error)
// clamps to zero.
func DaysInStock(record entities.StockRecord, reference time.Time) int {
	days := int(reference.Sub(record.DateOfStock).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// CategoryItemCount returns the number of records in the given category. The
// match is exact and case-sensitive, unlike name search.
func (s *QueryService) CategoryItemCount(category string) entities.Quantity {
	return entities.Quantity(len(s.catalog.ItemsByCategory(category)))
}

// ItemsByCategory returns the full listing for a category, in load order
func (s *QueryService) ItemsByCategory(category string) []entities.StockRecord {
	return s.catalog.ItemsByCategory(category)
}

// CategoryMenu assigns each category a 1-based display index. Categories are
// lexicographically sorted so the numbering is stable across renders.
func (s *QueryService) CategoryMenu() []dto.CategoryChoice {
	categories := s.catalog.Categories()

	menu := make([]dto.CategoryChoice, 0, len(categories))
	for i, category := range categories {
		menu = append(menu, dto.CategoryChoice{
			Index: i + 1,
			Name:  category,
			Count: s.CategoryItemCount(category),
		})
	}
	return menu
}

// WarehouseListings returns the full item listing and total per warehouse, in
// ascending warehouse order.
func (s *QueryService) WarehouseListings() []dto.WarehouseListing {
	warehouses := s.catalog.Warehouses()

	listings := make([]dto.WarehouseListing, 0, len(warehouses))
	for _, warehouse := range warehouses {
		items := s.catalog.ItemsByWarehouse(warehouse)
		listings = append(listings, dto.WarehouseListing{
			Warehouse: warehouse,
			Items:     items,
			Total:     entities.Quantity(len(items)),
		})
	}
	return listings
}

// AvailabilityReport builds the complete answer to a name search: the total,
// the per-warehouse breakdown with days-in-stock per unit, and the
// maximum-availability warehouse when more than one warehouse has stock.
func (s *QueryService) AvailabilityReport(name string, reference time.Time) *dto.AvailabilityReport {
	matches := s.MatchByName(name)

	report := &dto.AvailabilityReport{
		ItemName: strings.ToLower(strings.TrimSpace(name)),
		Total:    s.TotalAvailability(matches),
	}

	stockedWarehouses := 0
	for _, warehouse := range s.catalog.Warehouses() {
		records := matches[warehouse]
		if len(records) > 0 {
			stockedWarehouses++
		}

		units := make([]dto.StockedUnit, 0, len(records))
		for _, record := range records {
			units = append(units, dto.StockedUnit{
				Record:      record,
				DaysInStock: DaysInStock(record, reference),
			})
		}
		report.PerWarehouse = append(report.PerWarehouse, dto.WarehouseAvailability{
			Warehouse: warehouse,
			Units:     units,
		})
	}

	if max, ok := s.MaxAvailabilityWarehouse(matches); ok && stockedWarehouses > 1 {
		report.MaxWarehouse = max
		report.MaxCount = entities.Quantity(len(matches[max]))
		report.HasMax = true
	}

	return report
}
