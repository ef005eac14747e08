// Package output renders inventory reports for the terminal.
package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vkarsten/warehouse-management-system/pkg/application/dto"
	"github.com/vkarsten/warehouse-management-system/pkg/domain/entities"
)

var (
	colorAmber  = lipgloss.Color("#F4A259")
	colorGreen  = lipgloss.Color("#5FA777")
	colorRed    = lipgloss.Color("#E74C3C")
	colorSlate  = lipgloss.Color("#6E7B8B")
	colorBright = lipgloss.Color("#F2E8CF")
)

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	Title     lipgloss.Style
	Heading   lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style
}{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(colorAmber),
	Heading:   lipgloss.NewStyle().Bold(true).Foreground(colorBright),
	Muted:     lipgloss.NewStyle().Foreground(colorSlate),
	Success:   lipgloss.NewStyle().Foreground(colorGreen),
	Warning:   lipgloss.NewStyle().Foreground(colorAmber),
	Error:     lipgloss.NewStyle().Foreground(colorRed),
	Highlight: lipgloss.NewStyle().Bold(true).Foreground(colorGreen),
}

// WarehouseListings renders every warehouse with its items and total
func WarehouseListings(listings []dto.WarehouseListing) string {
	var b strings.Builder

	for _, listing := range listings {
		b.WriteString(Styles.Heading.Render(fmt.Sprintf("Items in Warehouse %d", listing.Warehouse)))
		b.WriteString("\n")
		for _, item := range listing.Items {
			fmt.Fprintf(&b, "- %s\n", item)
		}
		b.WriteString(Styles.Muted.Render(fmt.Sprintf("Total items in warehouse %d: %d", listing.Warehouse, listing.Total)))
		b.WriteString("\n\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// CategoryMenu renders the numbered category menu with item counts
func CategoryMenu(menu []dto.CategoryChoice) string {
	var b strings.Builder

	b.WriteString(Styles.Heading.Render("Available categories"))
	b.WriteString("\n")
	for _, choice := range menu {
		fmt.Fprintf(&b, "%d. %s %s\n", choice.Index, choice.Name,
			Styles.Muted.Render(fmt.Sprintf("(%d items)", choice.Count)))
	}

	return b.String()
}

// CategoryListing renders the item listing of one category
func CategoryListing(category string, items []entities.StockRecord) string {
	var b strings.Builder

	b.WriteString(Styles.Heading.Render(fmt.Sprintf("Items in category %q", category)))
	b.WriteString("\n")
	for _, item := range items {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	b.WriteString(Styles.Muted.Render(fmt.Sprintf("Total: %d", len(items))))
	b.WriteString("\n")

	return b.String()
}

// Availability renders a full availability report for a name search
func Availability(report *dto.AvailabilityReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Amount available: %s\n", Styles.Highlight.Render(fmt.Sprintf("%d", report.Total)))

	if report.Total == 0 {
		b.WriteString(Styles.Error.Render("Location: Not in stock"))
		b.WriteString("\n")
		return b.String()
	}

	for _, wa := range report.PerWarehouse {
		if len(wa.Units) == 0 {
			continue
		}
		b.WriteString(Styles.Heading.Render(fmt.Sprintf("Warehouse %d: %d", wa.Warehouse, len(wa.Units))))
		b.WriteString("\n")
		for _, unit := range wa.Units {
			fmt.Fprintf(&b, "- %s %s\n", unit.Record,
				Styles.Muted.Render(fmt.Sprintf("(in stock for %d days)", unit.DaysInStock)))
		}
	}

	if report.HasMax {
		b.WriteString(Styles.Success.Render(
			fmt.Sprintf("Maximum availability: %d in Warehouse %d", report.MaxCount, report.MaxWarehouse)))
		b.WriteString("\n")
	}

	return b.String()
}

// OrderConfirmation renders the confirmation line for a placed order
func OrderConfirmation(reference, itemName string, quantity int) string {
	return Styles.Success.Render(
		fmt.Sprintf("Your order of %d %s is confirmed.", quantity, itemName)) +
		"\n" + Styles.Muted.Render(fmt.Sprintf("Order reference: %s", reference)) + "\n"
}
