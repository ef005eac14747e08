package output

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vkarsten/warehouse-management-system/pkg/application/dto"
	"github.com/vkarsten/warehouse-management-system/pkg/domain/entities"
)

func TestWarehouseListings(t *testing.T) {
	stocked := time.Date(2021, 5, 10, 8, 0, 0, 0, time.UTC)
	rendered := WarehouseListings([]dto.WarehouseListing{
		{
			Warehouse: 1,
			Items: []entities.StockRecord{
				{State: "New", Category: "Laptop", Warehouse: 1, DateOfStock: stocked},
			},
			Total: 1,
		},
		{Warehouse: 2, Items: nil, Total: 0},
	})

	assert.Contains(t, rendered, "Items in Warehouse 1")
	assert.Contains(t, rendered, "- New Laptop")
	assert.Contains(t, rendered, "Total items in warehouse 1: 1")
	assert.Contains(t, rendered, "Total items in warehouse 2: 0")
}

func TestCategoryMenu(t *testing.T) {
	rendered := CategoryMenu([]dto.CategoryChoice{
		{Index: 1, Name: "Laptop", Count: 3},
		{Index: 2, Name: "Tablet", Count: 1},
	})

	assert.Contains(t, rendered, "1. Laptop")
	assert.Contains(t, rendered, "(3 items)")
	assert.Contains(t, rendered, "2. Tablet")
}

func TestAvailability_OutOfStock(t *testing.T) {
	rendered := Availability(&dto.AvailabilityReport{ItemName: "exotic mouse", Total: 0})

	assert.Contains(t, rendered, "Amount available: 0")
	assert.Contains(t, rendered, "Not in stock")
}

func TestAvailability_SingleWarehouse(t *testing.T) {
	report := &dto.AvailabilityReport{
		ItemName: "new laptop",
		Total:    2,
		PerWarehouse: []dto.WarehouseAvailability{
			{Warehouse: 1, Units: []dto.StockedUnit{
				{Record: entities.StockRecord{State: "New", Category: "Laptop"}, DaysInStock: 12},
				{Record: entities.StockRecord{State: "New", Category: "Laptop"}, DaysInStock: 4},
			}},
			{Warehouse: 2},
		},
	}

	rendered := Availability(report)

	assert.Contains(t, rendered, "Amount available: 2")
	assert.Contains(t, rendered, "Warehouse 1: 2")
	assert.Contains(t, rendered, "(in stock for 12 days)")
	assert.NotContains(t, rendered, "Warehouse 2:")
	assert.NotContains(t, rendered, "Maximum availability")
}

func TestAvailability_MaxLine(t *testing.T) {
	report := &dto.AvailabilityReport{
		ItemName: "new laptop",
		Total:    3,
		PerWarehouse: []dto.WarehouseAvailability{
			{Warehouse: 1, Units: []dto.StockedUnit{{Record: entities.StockRecord{State: "New", Category: "Laptop"}}}},
			{Warehouse: 2, Units: []dto.StockedUnit{
				{Record: entities.StockRecord{State: "New", Category: "Laptop"}},
				{Record: entities.StockRecord{State: "New", Category: "Laptop"}},
			}},
		},
		MaxWarehouse: 2,
		MaxCount:     2,
		HasMax:       true,
	}

	rendered := Availability(report)
	assert.Contains(t, rendered, "Maximum availability: 2 in Warehouse 2")
}

func TestOrderConfirmation(t *testing.T) {
	rendered := OrderConfirmation("7f9c35a1-0000-4000-8000-d9b1c2a3e4f5", "new laptop", 2)

	assert.Contains(t, rendered, "Your order of 2 new laptop is confirmed.")
	assert.True(t, strings.Contains(rendered, "7f9c35a1"))
}
