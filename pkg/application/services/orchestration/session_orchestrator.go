package orchestration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jmorelli/restock/pkg/application/services/planning"
	"github.com/jmorelli/restock/pkg/domain/entities"
	"github.com/jmorelli/restock/pkg/domain/repositories"
	"github.com/jmorelli/restock/pkg/infrastructure/events"
)

// SessionOrchestrator coordinates loading session data and running the
// planning functions over it. The planning functions themselves are
// pure; all I/O happens here.
type SessionOrchestrator struct {
	groupRepo   repositories.GroupRepository
	stationRepo repositories.StationRepository
	eventLog    *events.Store // optional
	sessionID   string
}

// NewSessionOrchestrator creates a new session orchestrator
func NewSessionOrchestrator(
	groupRepo repositories.GroupRepository,
	stationRepo repositories.StationRepository,
) *SessionOrchestrator {
	return &SessionOrchestrator{
		groupRepo:   groupRepo,
		stationRepo: stationRepo,
	}
}

// WithEventLog records a planning event per run under the given
// session ID.
func (o *SessionOrchestrator) WithEventLog(log *events.Store, sessionID string) *SessionOrchestrator {
	o.eventLog = log
	o.sessionID = sessionID
	return o
}

// SessionPlan contains the combined planning outputs for one capture session
type SessionPlan struct {
	Demand    []entities.DemandItem    `json:"demand"`
	Stats     entities.ExtractionStats `json:"stats"`
	Coverage  entities.CoverageResult  `json:"coverage"`
	Order     entities.OrderResult     `json:"order"`
	PlannedAt time.Time                `json:"planned_at"`
}

// PlanSession loads capture groups and stations concurrently, then runs
// demand aggregation, extraction statistics, coverage evaluation, and
// order computation over the loaded data.
func (o *SessionOrchestrator) PlanSession(ctx context.Context) (*SessionPlan, error) {
	var (
		wg         sync.WaitGroup
		groups     []entities.ExtractionGroupView
		stations   []entities.StationView
		groupErr   error
		stationErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		groups, groupErr = o.groupRepo.GetGroups(ctx)
	}()
	go func() {
		defer wg.Done()
		stations, stationErr = o.stationRepo.GetStations(ctx)
	}()
	wg.Wait()

	if groupErr != nil {
		return nil, fmt.Errorf("failed to load capture groups: %w", groupErr)
	}
	if stationErr != nil {
		return nil, fmt.Errorf("failed to load stations: %w", stationErr)
	}

	demand := planning.AggregateDemand(groups)

	plan := &SessionPlan{
		Demand:    demand,
		Stats:     planning.SummarizeExtraction(groups),
		Coverage:  planning.EvaluateCoverage(demand, stations),
		Order:     planning.ComputeOrder(demand, stations),
		PlannedAt: time.Now(),
	}

	if o.eventLog != nil {
		o.eventLog.Append(o.sessionID, events.SessionPlannedEvent, planSummary(plan))
	}

	return plan, nil
}

func planSummary(plan *SessionPlan) events.SessionPlanned {
	var totalDemand int64
	for _, d := range plan.Demand {
		totalDemand += int64(d.DemandQty)
	}
	flagged := 0
	for _, item := range plan.Order.Items {
		if item.ExceedsMax {
			flagged++
		}
	}
	return events.SessionPlanned{
		Products:        len(plan.Demand),
		TotalDemand:     totalDemand,
		CoveredProducts: plan.Coverage.Summary.CoveredCount,
		OrderLines:      len(plan.Order.Items),
		FlaggedLines:    flagged,
		ExtractedGroups: plan.Stats.ExtractedGroups,
	}
}
