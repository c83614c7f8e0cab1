package memory

import (
	"context"
	"sort"

	"github.com/jmorelli/restock/pkg/domain/entities"
	"github.com/jmorelli/restock/pkg/domain/repositories"
)

// StationRepository provides in-memory station storage
type StationRepository struct {
	stations []entities.StationView
}

// NewStationRepository creates a new in-memory station repository
func NewStationRepository() *StationRepository {
	return &StationRepository{
		stations: []entities.StationView{},
	}
}

// Verify interface compliance
var _ repositories.StationRepository = (*StationRepository)(nil)

// AddStation adds a station to the repository
func (r *StationRepository) AddStation(station entities.StationView) {
	r.stations = append(r.stations, station)
}

// LoadStations loads stations into the repository
func (r *StationRepository) LoadStations(stations []entities.StationView) error {
	for _, station := range stations {
		r.AddStation(station)
	}
	return nil
}

// GetStations returns all stations newest first. The stable sort keeps
// insertion order among stations with equal capture times, so a product
// captured twice resolves deterministically to its most recent station.
func (r *StationRepository) GetStations(_ context.Context) ([]entities.StationView, error) {
	out := make([]entities.StationView, len(r.stations))
	copy(out, r.stations)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
