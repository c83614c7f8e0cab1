package entities

import "time"

// StationStatus represents the capture status of an inventory station
type StationStatus string

const (
	StationPending        StationStatus = "pending"
	StationValid          StationStatus = "valid"
	StationNeedsAttention StationStatus = "needs_attention"
	StationFailed         StationStatus = "failed"
)

// StationView represents one physical inventory station: a sign photo
// carrying the product code and min/max quantities plus a stock photo
// of the counted units.
type StationView struct {
	ID           string
	ProductCode  *ProductCode
	Status       StationStatus
	SignBlobURL  *string
	StockBlobURL *string
	OnHandQty    *Quantity
	MinQty       *Quantity
	MaxQty       *Quantity
	CreatedAt    time.Time
}

// Matches reports whether the station is a valid record for the given
// product: a matching code, status valid, and known on-hand and max
// quantities.
func (s StationView) Matches(code ProductCode) bool {
	return s.ProductCode != nil && *s.ProductCode == code &&
		s.Status == StationValid &&
		s.OnHandQty != nil && s.MaxQty != nil
}

// FullyImaged reports whether both the sign and stock photos were
// actually uploaded, not just the extracted metadata.
func (s StationView) FullyImaged() bool {
	return s.SignBlobURL != nil && *s.SignBlobURL != "" &&
		s.StockBlobURL != nil && *s.StockBlobURL != ""
}
