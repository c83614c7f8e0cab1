package events

import "time"

// Event records something that happened during a capture session
type Event struct {
	Type      string
	SessionID string
	Data      any
	Time      time.Time
	Version   int
}

// Event types emitted by the session flow
const (
	SessionPlannedEvent   = "session.planned"
	GroupsImportedEvent   = "session.groups_imported"
	StationsImportedEvent = "session.stations_imported"
)

// SessionPlanned summarizes one planning run over a session
type SessionPlanned struct {
	Products        int   `json:"products"`
	TotalDemand     int64 `json:"total_demand"`
	CoveredProducts int   `json:"covered_products"`
	OrderLines      int   `json:"order_lines"`
	FlaggedLines    int   `json:"flagged_lines"`
	ExtractedGroups int   `json:"extracted_groups"`
}

// GroupsImported records a bulk import of capture groups
type GroupsImported struct {
	Count int `json:"count"`
}

// StationsImported records a bulk import of station captures
type StationsImported struct {
	Count int `json:"count"`
}
