package planning

import (
	"github.com/jmorelli/restock/pkg/domain/entities"
)

// SummarizeExtraction rolls up per-group extraction metadata into
// session-level statistics.
//
// A group that was never extracted counts only toward TotalGroups. An
// error group increments ErrorGroups only. Warning groups count as
// extracted and additionally increment WarningGroups. Activity, item,
// and cost totals accumulate over extracted groups only; a missing cost
// contributes zero so the aggregate cost is never unknown.
func SummarizeExtraction(groups []entities.ExtractionGroupView) entities.ExtractionStats {
	stats := entities.ExtractionStats{TotalGroups: len(groups)}

	for _, group := range groups {
		switch group.Status {
		case entities.ExtractionAbsent:
			continue
		case entities.ExtractionError:
			stats.ErrorGroups++
			continue
		case entities.ExtractionWarning:
			stats.WarningGroups++
		}

		stats.ExtractedGroups++
		stats.TotalActivities += group.ActivityCount
		stats.TotalItems += group.ItemCount
		if group.Cost != nil {
			stats.TotalCost = stats.TotalCost.Add(*group.Cost)
		}
	}

	return stats
}
