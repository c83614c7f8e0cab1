package orchestration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jmorelli/restock/pkg/domain/entities"
	"github.com/jmorelli/restock/pkg/infrastructure/events"
	"github.com/jmorelli/restock/pkg/infrastructure/repositories/memory"
)

func strPtr(s string) *string { return &s }

func qtyPtr(q entities.Quantity) *entities.Quantity { return &q }

func codePtr(c entities.ProductCode) *entities.ProductCode { return &c }

// TestPlanSession_FullWorkflow exercises the complete session flow:
// seeded capture groups and stations through demand aggregation,
// extraction stats, coverage, and order computation.
func TestPlanSession_FullWorkflow(t *testing.T) {
	cost := decimal.RequireFromString("0.021")

	groupRepo := memory.NewGroupRepository()
	require.NoError(t, groupRepo.LoadGroups([]entities.ExtractionGroupView{
		{
			ID:            "g1",
			EmployeeLabel: strPtr("Dana"),
			Status:        entities.ExtractionSuccess,
			ActivityCount: 2,
			ItemCount:     2,
			Cost:          &cost,
			Items: []entities.LineItem{
				{ProductCode: "BOLT-M8", Quantity: 6, ActivityCode: "A1", Description: strPtr("Hex bolt M8")},
				{ProductCode: "NUT-M8", Quantity: 6, ActivityCode: "A1"},
			},
		},
		{
			ID:            "g2",
			EmployeeLabel: strPtr("Rafi"),
			Status:        entities.ExtractionWarning,
			ActivityCount: 1,
			ItemCount:     1,
			Items: []entities.LineItem{
				{ProductCode: "BOLT-M8", Quantity: 4, ActivityCode: "A2"},
			},
		},
		{
			ID:     "g3",
			Status: entities.ExtractionError,
			Items: []entities.LineItem{
				{ProductCode: "BOLT-M8", Quantity: 99, ActivityCode: "A3"},
			},
		},
	}))

	stationRepo := memory.NewStationRepository()
	require.NoError(t, stationRepo.LoadStations([]entities.StationView{
		{
			ID:           "st1",
			ProductCode:  codePtr("BOLT-M8"),
			Status:       entities.StationValid,
			SignBlobURL:  strPtr("blob://sign/st1"),
			StockBlobURL: strPtr("blob://stock/st1"),
			OnHandQty:    qtyPtr(3),
			MinQty:       qtyPtr(2),
			MaxQty:       qtyPtr(8),
			CreatedAt:    time.Date(2026, 3, 12, 8, 0, 0, 0, time.UTC),
		},
	}))

	orchestrator := NewSessionOrchestrator(groupRepo, stationRepo)
	plan, err := orchestrator.PlanSession(context.Background())
	require.NoError(t, err)

	// Demand: error group excluded, 6+4 bolts, 6 nuts, sorted by code
	require.Len(t, plan.Demand, 2)
	require.Equal(t, entities.ProductCode("BOLT-M8"), plan.Demand[0].ProductCode)
	require.Equal(t, entities.Quantity(10), plan.Demand[0].DemandQty)
	require.Len(t, plan.Demand[0].Sources, 2)
	require.Equal(t, entities.ProductCode("NUT-M8"), plan.Demand[1].ProductCode)

	// Stats: warning counts as extracted
	require.Equal(t, 3, plan.Stats.TotalGroups)
	require.Equal(t, 2, plan.Stats.ExtractedGroups)
	require.Equal(t, 1, plan.Stats.WarningGroups)
	require.Equal(t, 1, plan.Stats.ErrorGroups)
	require.Equal(t, 3, plan.Stats.TotalActivities)
	require.True(t, plan.Stats.TotalCost.Equal(cost))

	// Coverage: bolts captured, nuts fall back to the pessimistic defaults
	require.Equal(t, 1, plan.Coverage.Summary.CoveredCount)
	require.Equal(t, 2, plan.Coverage.Summary.TotalCount)
	require.Equal(t, 50, plan.Coverage.Summary.Percentage)
	require.True(t, plan.Coverage.Summary.CanProceed)

	bolts := plan.Order.Items[0]
	require.Equal(t, entities.ProductCode("BOLT-M8"), bolts.ProductCode)
	require.Equal(t, entities.Quantity(7), bolts.RecommendedOrderQty)
	require.True(t, bolts.ExceedsMax, "3 on hand + 7 ordered is above max 8")

	nuts := plan.Order.Items[1]
	require.False(t, nuts.IsCaptured)
	require.Equal(t, entities.Quantity(6), nuts.RecommendedOrderQty)
	require.False(t, nuts.ExceedsMax)

	require.Empty(t, plan.Order.Skipped)
	require.False(t, plan.PlannedAt.IsZero())

	// Coverage and order views of the same session must agree per product
	for i := range plan.Coverage.Items {
		require.Equal(t, plan.Coverage.Items[i].IsCaptured, plan.Order.Items[i].IsCaptured)
		require.Equal(t, plan.Coverage.Items[i].OnHandQty, plan.Order.Items[i].OnHandQty)
		require.Equal(t, plan.Coverage.Items[i].MaxQty, plan.Order.Items[i].MaxQty)
	}
}

type failingGroupRepo struct{ err error }

func (f failingGroupRepo) GetGroups(context.Context) ([]entities.ExtractionGroupView, error) {
	return nil, f.err
}

type failingStationRepo struct{ err error }

func (f failingStationRepo) GetStations(context.Context) ([]entities.StationView, error) {
	return nil, f.err
}

func TestPlanSession_PropagatesRepositoryErrors(t *testing.T) {
	groupErr := errors.New("group storage offline")
	orchestrator := NewSessionOrchestrator(failingGroupRepo{err: groupErr}, memory.NewStationRepository())

	_, err := orchestrator.PlanSession(context.Background())
	require.ErrorIs(t, err, groupErr)

	stationErr := errors.New("station storage offline")
	orchestrator = NewSessionOrchestrator(memory.NewGroupRepository(), failingStationRepo{err: stationErr})

	_, err = orchestrator.PlanSession(context.Background())
	require.ErrorIs(t, err, stationErr)
}

func TestPlanSession_RecordsPlannedEvent(t *testing.T) {
	groupRepo := memory.NewGroupRepository()
	require.NoError(t, groupRepo.LoadGroups([]entities.ExtractionGroupView{
		{
			ID:     "g1",
			Status: entities.ExtractionSuccess,
			Items: []entities.LineItem{
				{ProductCode: "BOLT-M8", Quantity: 5, ActivityCode: "A1"},
				{ProductCode: "NUT-M8", Quantity: 3, ActivityCode: "A1"},
			},
		},
	}))

	log := events.NewStore()
	orchestrator := NewSessionOrchestrator(groupRepo, memory.NewStationRepository()).
		WithEventLog(log, "session-1")

	_, err := orchestrator.PlanSession(context.Background())
	require.NoError(t, err)
	_, err = orchestrator.PlanSession(context.Background())
	require.NoError(t, err)

	stream := log.Read("session-1")
	require.Len(t, stream, 2)
	require.Equal(t, events.SessionPlannedEvent, stream[0].Type)
	require.Equal(t, 1, stream[0].Version)
	require.Equal(t, 2, stream[1].Version)

	summary, ok := stream[0].Data.(events.SessionPlanned)
	require.True(t, ok)
	require.Equal(t, 2, summary.Products)
	require.Equal(t, int64(8), summary.TotalDemand)
	require.Equal(t, 0, summary.CoveredProducts)
	require.Equal(t, 2, summary.OrderLines)
	require.Equal(t, 0, summary.FlaggedLines)
	require.Equal(t, 1, summary.ExtractedGroups)
}

func TestPlanSession_EmptySession(t *testing.T) {
	orchestrator := NewSessionOrchestrator(memory.NewGroupRepository(), memory.NewStationRepository())

	plan, err := orchestrator.PlanSession(context.Background())
	require.NoError(t, err)

	require.Empty(t, plan.Demand)
	require.Equal(t, 100, plan.Coverage.Summary.Percentage)
	require.Zero(t, plan.Stats.TotalGroups)
	require.Empty(t, plan.Order.Items)
}
