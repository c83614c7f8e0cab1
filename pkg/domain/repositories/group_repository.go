package repositories

import (
	"context"

	"github.com/jmorelli/restock/pkg/domain/entities"
)

// GroupRepository provides access to capture groups and their extraction results
type GroupRepository interface {
	// GetGroups returns all capture groups for the session in a stable
	// order. Group order decides which item description is recorded
	// first during demand aggregation.
	GetGroups(ctx context.Context) ([]entities.ExtractionGroupView, error)
}
