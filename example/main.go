// Demonstrates driving the catalog and query layers as a library, without the
// interactive terminal surface.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/vkarsten/warehouse-management-system/pkg/application/services"
	"github.com/vkarsten/warehouse-management-system/pkg/infrastructure/repositories/jsonfile"
	"github.com/vkarsten/warehouse-management-system/pkg/infrastructure/repositories/memory"
)

func main() {
	loader := jsonfile.NewLoader()
	records, err := loader.LoadDefault()
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}

	catalog := memory.NewCatalogRepository(len(records))
	if err := catalog.LoadRecords(records); err != nil {
		log.Fatalf("failed to populate catalog: %v", err)
	}

	queries := services.NewQueryService(catalog)

	fmt.Printf("Catalog: %d records across %d warehouses\n",
		len(catalog.AllRecords()), len(catalog.Warehouses()))

	for _, choice := range queries.CategoryMenu() {
		fmt.Printf("%d. %s (%d items)\n", choice.Index, choice.Name, choice.Count)
	}

	report := queries.AvailabilityReport("new laptop", time.Now())
	fmt.Printf("\n%q available: %d\n", report.ItemName, report.Total)
	for _, wa := range report.PerWarehouse {
		fmt.Printf("  warehouse %d: %d\n", wa.Warehouse, len(wa.Units))
	}
	if report.HasMax {
		fmt.Printf("  maximum availability: %d in warehouse %d\n", report.MaxCount, report.MaxWarehouse)
	}
}
