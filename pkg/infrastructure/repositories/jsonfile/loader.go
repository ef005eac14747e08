package jsonfile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/vkarsten/warehouse-management-system/pkg/domain/entities"
)

// defaultCatalog is the catalog document bundled with the binary, used when no
// catalog path is configured.
//
//go:embed data.json
var defaultCatalog []byte

// Loader handles loading stock records from JSON catalog documents. Loading is
// all-or-nothing: one malformed entry fails the whole catalog.
type Loader struct{}

// NewLoader creates a new JSON catalog loader
func NewLoader() *Loader {
	return &Loader{}
}

// catalogEntry mirrors one entry of the catalog document. Warehouse is kept
// raw because historical catalogs carry it as either a number or a numeric
// string.
type catalogEntry struct {
	State       *string         `json:"state"`
	Category    *string         `json:"category"`
	Warehouse   json.RawMessage `json:"warehouse"`
	DateOfStock *string         `json:"date_of_stock"`
}

// LoadDefault loads the embedded catalog document
func (l *Loader) LoadDefault() ([]*entities.StockRecord, error) {
	records, err := l.LoadBytes(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return records, nil
}

// LoadFile loads stock records from a JSON catalog file
func (l *Loader) LoadFile(filename string) ([]*entities.StockRecord, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", filename, err)
	}

	records, err := l.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", filename, err)
	}
	return records, nil
}

// LoadBytes parses a JSON array of catalog entries into stock records
func (l *Loader) LoadBytes(data []byte) ([]*entities.StockRecord, error) {
	var rawEntries []catalogEntry
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&rawEntries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	if len(rawEntries) == 0 {
		return nil, fmt.Errorf("catalog must contain at least one entry")
	}

	var records []*entities.StockRecord
	for i, raw := range rawEntries {
		record, err := parseEntry(raw)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		records = append(records, record)
	}

	return records, nil
}

// parseEntry converts one catalog entry to a validated StockRecord
func parseEntry(raw catalogEntry) (*entities.StockRecord, error) {
	if raw.State == nil {
		return nil, fmt.Errorf("missing required field %q", "state")
	}
	if raw.Category == nil {
		return nil, fmt.Errorf("missing required field %q", "category")
	}
	if len(raw.Warehouse) == 0 {
		return nil, fmt.Errorf("missing required field %q", "warehouse")
	}
	if raw.DateOfStock == nil {
		return nil, fmt.Errorf("missing required field %q", "date_of_stock")
	}

	warehouse, err := coerceWarehouse(raw.Warehouse)
	if err != nil {
		return nil, err
	}

	dateOfStock, err := time.Parse(entities.DateOfStockLayout, *raw.DateOfStock)
	if err != nil {
		return nil, fmt.Errorf("invalid date_of_stock %q: %w", *raw.DateOfStock, err)
	}

	return entities.NewStockRecord(*raw.State, *raw.Category, warehouse, dateOfStock)
}

// coerceWarehouse accepts the warehouse field as a JSON number or a numeric
// string and returns the integer warehouse ID.
func coerceWarehouse(raw json.RawMessage) (entities.WarehouseID, error) {
	text := string(raw)
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = unquoted
	}

	id, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("invalid warehouse %s: %w", string(raw), err)
	}
	return entities.WarehouseID(id), nil
}
