package memory

import (
	"context"

	"github.com/jmorelli/restock/pkg/domain/entities"
	"github.com/jmorelli/restock/pkg/domain/repositories"
)

// GroupRepository provides in-memory capture group storage
type GroupRepository struct {
	groups []entities.ExtractionGroupView
}

// NewGroupRepository creates a new in-memory group repository
func NewGroupRepository() *GroupRepository {
	return &GroupRepository{
		groups: []entities.ExtractionGroupView{},
	}
}

// Verify interface compliance
var _ repositories.GroupRepository = (*GroupRepository)(nil)

// AddGroup adds a capture group to the repository
func (r *GroupRepository) AddGroup(group entities.ExtractionGroupView) {
	r.groups = append(r.groups, group)
}

// LoadGroups loads capture groups into the repository
func (r *GroupRepository) LoadGroups(groups []entities.ExtractionGroupView) error {
	for _, group := range groups {
		r.AddGroup(group)
	}
	return nil
}

// GetGroups returns all capture groups. Callers get a fresh slice in
// insertion order; newest-first is the loader's responsibility here.
func (r *GroupRepository) GetGroups(_ context.Context) ([]entities.ExtractionGroupView, error) {
	out := make([]entities.ExtractionGroupView, len(r.groups))
	copy(out, r.groups)
	return out, nil
}
