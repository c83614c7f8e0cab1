package entities

// DemandSource records which line item contributed units to a demand
// total: one entry per counted line item, never deduplicated by activity.
type DemandSource struct {
	GroupID       string  `json:"group_id"`
	EmployeeLabel *string `json:"employee_label,omitempty"`
	ActivityCode  string  `json:"activity_code"`
}

// DemandItem is the consolidated demand for one product across all
// capture groups in a session.
type DemandItem struct {
	ProductCode ProductCode    `json:"product_code"`
	DemandQty   Quantity       `json:"demand_qty"`
	Description *string        `json:"description,omitempty"`
	Sources     []DemandSource `json:"sources"`
}
