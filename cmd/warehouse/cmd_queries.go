package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vkarsten/warehouse-management-system/pkg/interfaces/cli/output"
)

// runList prints every warehouse with its items and total count
func runList(cmd *cobra.Command, args []string) error {
	fmt.Print(output.WarehouseListings(queries.WarehouseListings()))
	return nil
}

// runCategories prints the numbered category menu
func runCategories(cmd *cobra.Command, args []string) error {
	fmt.Print(output.CategoryMenu(queries.CategoryMenu()))
	return nil
}

// runSearch prints the availability report for a composed item name, e.g.
// "warehouse search new laptop".
func runSearch(cmd *cobra.Command, args []string) error {
	itemName := strings.Join(args, " ")
	fmt.Print(output.Availability(queries.AvailabilityReport(itemName, time.Now())))
	return nil
}
