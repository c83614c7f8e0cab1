package entities

// CoverageItem classifies one demanded product against the station
// captures. For products without a verified capture the quantities carry
// the pessimistic defaults: zero on hand, zero minimum, maximum equal to
// the full demand.
type CoverageItem struct {
	ProductCode        ProductCode `json:"product_code"`
	ProductDescription *string     `json:"product_description,omitempty"`
	DemandQty          Quantity    `json:"demand_qty"`
	IsCaptured         bool        `json:"is_captured"`
	StationID          string      `json:"station_id,omitempty"`
	OnHandQty          Quantity    `json:"on_hand_qty"`
	MinQty             Quantity    `json:"min_qty"`
	MaxQty             Quantity    `json:"max_qty"`
}

// CoverageSummary summarizes how much of the demand has a verified
// station capture. Coverage is informational: CanProceed never gates
// the flow.
type CoverageSummary struct {
	CanProceed   bool `json:"can_proceed"`
	CoveredCount int  `json:"covered_count"`
	TotalCount   int  `json:"total_count"`
	Percentage   int  `json:"percentage"`
}

// CoverageResult contains the complete output of coverage evaluation
type CoverageResult struct {
	Items   []CoverageItem  `json:"items"`
	Summary CoverageSummary `json:"summary"`
}
