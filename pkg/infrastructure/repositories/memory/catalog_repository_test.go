package memory

import (
	"testing"
	"time"

	"github.com/vkarsten/warehouse-management-system/pkg/domain/entities"
)

func testRecords() []*entities.StockRecord {
	stocked := time.Date(2021, 5, 10, 8, 0, 0, 0, time.UTC)
	return []*entities.StockRecord{
		{State: "New", Category: "Laptop", Warehouse: 2, DateOfStock: stocked},
		{State: "Used", Category: "Smartphone", Warehouse: 1, DateOfStock: stocked},
		{State: "New", Category: "Laptop", Warehouse: 1, DateOfStock: stocked},
		{State: "Refurbished", Category: "Tablet", Warehouse: 2, DateOfStock: stocked},
		{State: "New", Category: "Laptop", Warehouse: 2, DateOfStock: stocked},
	}
}

func TestCatalogRepository_LoadOnce(t *testing.T) {
	repo := NewCatalogRepository(10)

	if err := repo.LoadRecords(testRecords()); err != nil {
		t.Fatalf("Failed to load records: %v", err)
	}

	err := repo.LoadRecords(testRecords())
	if err == nil {
		t.Fatal("Expected second load to fail")
	}
}

func TestCatalogRepository_Warehouses_Sorted(t *testing.T) {
	repo := NewCatalogRepository(10)
	if err := repo.LoadRecords(testRecords()); err != nil {
		t.Fatalf("Failed to load records: %v", err)
	}

	warehouses := repo.Warehouses()
	if len(warehouses) != 2 {
		t.Fatalf("Expected 2 warehouses, got %d", len(warehouses))
	}
	if warehouses[0] != 1 || warehouses[1] != 2 {
		t.Errorf("Expected warehouses [1 2], got %v", warehouses)
	}
}

func TestCatalogRepository_Categories_Sorted(t *testing.T) {
	repo := NewCatalogRepository(10)
	if err := repo.LoadRecords(testRecords()); err != nil {
		t.Fatalf("Failed to load records: %v", err)
	}

	categories := repo.Categories()
	expected := []string{"Laptop", "Smartphone", "Tablet"}
	if len(categories) != len(expected) {
		t.Fatalf("Expected %d categories, got %d", len(expected), len(categories))
	}
	for i, category := range expected {
		if categories[i] != category {
			t.Errorf("Expected category %q at index %d, got %q", category, i, categories[i])
		}
	}
}

func TestCatalogRepository_ItemsByWarehouse(t *testing.T) {
	repo := NewCatalogRepository(10)
	if err := repo.LoadRecords(testRecords()); err != nil {
		t.Fatalf("Failed to load records: %v", err)
	}

	for _, warehouse := range repo.Warehouses() {
		items := repo.ItemsByWarehouse(warehouse)
		for _, item := range items {
			if item.Warehouse != warehouse {
				t.Errorf("Warehouse %d listing contains record from warehouse %d", warehouse, item.Warehouse)
			}
		}
	}

	if got := len(repo.ItemsByWarehouse(1)); got != 2 {
		t.Errorf("Expected 2 items in warehouse 1, got %d", got)
	}
	if got := len(repo.ItemsByWarehouse(2)); got != 3 {
		t.Errorf("Expected 3 items in warehouse 2, got %d", got)
	}
	if got := len(repo.ItemsByWarehouse(99)); got != 0 {
		t.Errorf("Expected empty result for unknown warehouse, got %d items", got)
	}
}

func TestCatalogRepository_ItemsByCategory_CaseSensitive(t *testing.T) {
	repo := NewCatalogRepository(10)
	if err := repo.LoadRecords(testRecords()); err != nil {
		t.Fatalf("Failed to load records: %v", err)
	}

	if got := len(repo.ItemsByCategory("Laptop")); got != 3 {
		t.Errorf("Expected 3 Laptop records, got %d", got)
	}
	if got := len(repo.ItemsByCategory("laptop")); got != 0 {
		t.Errorf("Expected 0 records for lowercase category, got %d", got)
	}
}

func TestCatalogRepository_EmptyBeforeLoad(t *testing.T) {
	repo := NewCatalogRepository(0)

	if got := repo.Warehouses(); len(got) != 0 {
		t.Errorf("Expected no warehouses before load, got %v", got)
	}
	if got := repo.Categories(); len(got) != 0 {
		t.Errorf("Expected no categories before load, got %v", got)
	}
	if got := repo.ItemsByWarehouse(1); len(got) != 0 {
		t.Errorf("Expected no items before load, got %d", len(got))
	}
	if got := repo.ItemsByCategory("Laptop"); len(got) != 0 {
		t.Errorf("Expected no items before load, got %d", len(got))
	}
	if got := repo.AllRecords(); len(got) != 0 {
		t.Errorf("Expected no records before load, got %d", len(got))
	}
}
