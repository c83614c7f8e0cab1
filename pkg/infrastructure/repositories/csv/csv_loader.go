package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmorelli/restock/pkg/domain/entities"
)

// Loader handles loading session data from CSV scenario files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadGroups loads capture groups and their line items from two CSV
// files. Rows in the items file reference groups by group_id; items for
// unknown groups are rejected.
func (l *Loader) LoadGroups(groupsFile, itemsFile string) ([]entities.ExtractionGroupView, error) {
	records, err := readCSV(groupsFile, []string{"group_id", "employee_label", "extraction_status", "activity_count", "item_count", "cost"})
	if err != nil {
		return nil, fmt.Errorf("groups CSV: %w", err)
	}

	var groups []entities.ExtractionGroupView
	index := make(map[string]int)
	for i, record := range records {
		group, err := parseGroup(record)
		if err != nil {
			return nil, fmt.Errorf("groups CSV row %d: %w", i+2, err)
		}
		if _, exists := index[group.ID]; exists {
			return nil, fmt.Errorf("groups CSV row %d: duplicate group_id %q", i+2, group.ID)
		}
		index[group.ID] = len(groups)
		groups = append(groups, group)
	}

	itemRecords, err := readCSV(itemsFile, []string{"group_id", "product_code", "quantity", "activity_code", "description"})
	if err != nil {
		return nil, fmt.Errorf("items CSV: %w", err)
	}

	for i, record := range itemRecords {
		groupID := record[0]
		idx, ok := index[groupID]
		if !ok {
			return nil, fmt.Errorf("items CSV row %d: unknown group_id %q", i+2, groupID)
		}
		item, err := parseLineItem(record)
		if err != nil {
			return nil, fmt.Errorf("items CSV row %d: %w", i+2, err)
		}
		groups[idx].Items = append(groups[idx].Items, item)
	}

	return groups, nil
}

// LoadStations loads station captures from a CSV file
func (l *Loader) LoadStations(filename string) ([]entities.StationView, error) {
	records, err := readCSV(filename, []string{"station_id", "product_code", "status", "sign_blob_url", "stock_blob_url", "on_hand_qty", "min_qty", "max_qty", "created_at"})
	if err != nil {
		return nil, fmt.Errorf("stations CSV: %w", err)
	}

	var stations []entities.StationView
	for i, record := range records {
		station, err := parseStation(record)
		if err != nil {
			return nil, fmt.Errorf("stations CSV row %d: %w", i+2, err)
		}
		stations = append(stations, station)
	}

	return stations, nil
}

// readCSV reads a CSV file, validates its header, and returns the data
// rows. An empty cell means "unknown"; parsers map it to nil.
func readCSV(filename string, expectedHeader []string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("%s must have a header row", filename)
	}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}
	}
	return records[1:], nil
}

func validateHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.TrimSpace(header[i]) != col {
			return false
		}
	}
	return true
}

func parseGroup(record []string) (entities.ExtractionGroupView, error) {
	group := entities.ExtractionGroupView{
		ID:            record[0],
		EmployeeLabel: optionalString(record[1]),
		Status:        entities.ExtractionStatus(record[2]),
	}
	if group.ID == "" {
		return group, fmt.Errorf("group_id cannot be empty")
	}

	var err error
	if group.ActivityCount, err = parseCount(record[3], "activity_count"); err != nil {
		return group, err
	}
	if group.ItemCount, err = parseCount(record[4], "item_count"); err != nil {
		return group, err
	}

	if record[5] != "" {
		cost, err := decimal.NewFromString(record[5])
		if err != nil {
			return group, fmt.Errorf("invalid cost %q: %w", record[5], err)
		}
		group.Cost = &cost
	}
	return group, nil
}

func parseLineItem(record []string) (entities.LineItem, error) {
	quantity, err := strconv.ParseInt(record[2], 10, 64)
	if err != nil {
		return entities.LineItem{}, fmt.Errorf("invalid quantity %q: %w", record[2], err)
	}
	return entities.LineItem{
		ProductCode:  entities.ProductCode(record[1]),
		Quantity:     entities.Quantity(quantity),
		ActivityCode: record[3],
		Description:  optionalString(record[4]),
	}, nil
}

func parseStation(record []string) (entities.StationView, error) {
	station := entities.StationView{
		ID:           record[0],
		Status:       entities.StationStatus(record[2]),
		SignBlobURL:  optionalString(record[3]),
		StockBlobURL: optionalString(record[4]),
	}
	if station.ID == "" {
		return station, fmt.Errorf("station_id cannot be empty")
	}
	if record[1] != "" {
		code := entities.ProductCode(record[1])
		station.ProductCode = &code
	}

	var err error
	if station.OnHandQty, err = optionalQuantity(record[5], "on_hand_qty"); err != nil {
		return station, err
	}
	if station.MinQty, err = optionalQuantity(record[6], "min_qty"); err != nil {
		return station, err
	}
	if station.MaxQty, err = optionalQuantity(record[7], "max_qty"); err != nil {
		return station, err
	}

	if record[8] != "" {
		createdAt, err := time.Parse(time.RFC3339, record[8])
		if err != nil {
			return station, fmt.Errorf("invalid created_at %q: %w", record[8], err)
		}
		station.CreatedAt = createdAt
	}
	return station, nil
}

func parseCount(value, field string) (int, error) {
	if value == "" {
		return 0, nil
	}
	count, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	return count, nil
}

func optionalQuantity(value, field string) (*entities.Quantity, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	quantity := entities.Quantity(parsed)
	return &quantity, nil
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
