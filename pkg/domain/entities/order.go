package entities

// OrderItem is the recommended purchase line for one demanded product
type OrderItem struct {
	ProductCode         ProductCode `json:"product_code"`
	ProductDescription  *string     `json:"product_description,omitempty"`
	DemandQty           Quantity    `json:"demand_qty"`
	OnHandQty           Quantity    `json:"on_hand_qty"`
	MinQty              Quantity    `json:"min_qty"`
	MaxQty              Quantity    `json:"max_qty"`
	RecommendedOrderQty Quantity    `json:"recommended_order_qty"`
	ExceedsMax          bool        `json:"exceeds_max"`
	IsCaptured          bool        `json:"is_captured"`
}

// SkippedOrderItem records a product no order could be computed for.
// Unreachable under the pessimistic-default policy; the type is kept for
// interface stability with catalog-validation modes.
type SkippedOrderItem struct {
	ProductCode ProductCode `json:"product_code"`
	Reason      string      `json:"reason"`
}

// OrderResult contains the complete output of order computation
type OrderResult struct {
	Items   []OrderItem        `json:"items"`
	Skipped []SkippedOrderItem `json:"skipped"`
}
