package entities

import "github.com/shopspring/decimal"

// ExtractionStats rolls up per-group extraction metadata into
// session-level totals. TotalCost is money and therefore decimal; a
// group with no recorded cost contributes zero.
type ExtractionStats struct {
	TotalGroups     int             `json:"total_groups"`
	ExtractedGroups int             `json:"extracted_groups"`
	ErrorGroups     int             `json:"error_groups"`
	WarningGroups   int             `json:"warning_groups"`
	TotalActivities int             `json:"total_activities"`
	TotalItems      int             `json:"total_items"`
	TotalCost       decimal.Decimal `json:"total_cost"`
}
