package planning

import (
	"math"

	"github.com/jmorelli/restock/pkg/domain/entities"
)

// EvaluateCoverage cross-references demand against station captures and
// classifies each demanded product as captured or not. Items keep the
// order of the demand list, which AggregateDemand already sorts by
// product code.
func EvaluateCoverage(demand []entities.DemandItem, stations []entities.StationView) entities.CoverageResult {
	items := make([]entities.CoverageItem, 0, len(demand))
	covered := 0

	for _, d := range demand {
		figures := resolveStation(d, stations)
		if figures.captured {
			covered++
		}

		items = append(items, entities.CoverageItem{
			ProductCode:        d.ProductCode,
			ProductDescription: d.Description,
			DemandQty:          d.DemandQty,
			IsCaptured:         figures.captured,
			StationID:          figures.stationID,
			OnHandQty:          figures.onHand,
			MinQty:             figures.min,
			MaxQty:             figures.max,
		})
	}

	return entities.CoverageResult{
		Items:   items,
		Summary: summarizeCoverage(covered, len(demand)),
	}
}

// summarizeCoverage builds the informational summary. CanProceed is
// always true: coverage never gates the flow. An empty demand list
// counts as fully covered.
func summarizeCoverage(covered, total int) entities.CoverageSummary {
	percentage := 100
	if total > 0 {
		percentage = int(math.Round(float64(covered) / float64(total) * 100))
	}

	return entities.CoverageSummary{
		CanProceed:   true,
		CoveredCount: covered,
		TotalCount:   total,
		Percentage:   percentage,
	}
}
