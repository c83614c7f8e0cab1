package repositories

import (
	"context"

	"github.com/jmorelli/restock/pkg/domain/entities"
)

// StationRepository provides access to inventory station captures.
// Implementations return stations newest first so that first-match
// station selection resolves to the most recent capture of a product.
type StationRepository interface {
	GetStations(ctx context.Context) ([]entities.StationView, error)
}
