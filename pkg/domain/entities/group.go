package entities

import "github.com/shopspring/decimal"

// ProductCode is a unique product identifier as printed on loading lists and station signs
type ProductCode string

// Quantity represents an integer quantity value for discrete warehouse units
type Quantity int64

// ExtractionStatus represents the outcome of AI extraction for a capture group
type ExtractionStatus string

const (
	ExtractionAbsent  ExtractionStatus = "absent"
	ExtractionSuccess ExtractionStatus = "success"
	ExtractionWarning ExtractionStatus = "warning"
	ExtractionError   ExtractionStatus = "error"
)

// LineItem represents a single extracted line from a loading-list screen
type LineItem struct {
	ProductCode  ProductCode
	Quantity     Quantity
	ActivityCode string
	Description  *string
}

// Countable reports whether the line item contributes demand.
// Non-positive quantities and empty product codes are extraction noise
// and are excluded rather than treated as errors.
func (li LineItem) Countable() bool {
	return li.Quantity >= 1 && li.ProductCode != ""
}

// ExtractionGroupView is a read-only projection of one employee's capture
// group: its extraction result metadata plus the extracted line items.
type ExtractionGroupView struct {
	ID            string
	EmployeeLabel *string
	Status        ExtractionStatus
	ActivityCount int
	ItemCount     int
	Cost          *decimal.Decimal
	Items         []LineItem
}

// ContributesDemand reports whether the group's line items are included
// in demand aggregation. Groups that failed extraction or were never
// extracted contribute nothing.
func (g ExtractionGroupView) ContributesDemand() bool {
	return g.Status != ExtractionError && g.Status != ExtractionAbsent
}

// Extracted reports whether the group has a usable extraction result.
// Warning counts as a success variant.
func (g ExtractionGroupView) Extracted() bool {
	return g.Status == ExtractionSuccess || g.Status == ExtractionWarning
}
