package planning

import (
	"sort"

	"github.com/jmorelli/restock/pkg/domain/entities"
)

// AggregateDemand reduces all counted line items across capture groups
// into per-product demand totals, preserving provenance.
//
// Groups that failed extraction or were never extracted are skipped
// entirely. Line items with a non-positive quantity or an empty product
// code are excluded silently; partially-wrong AI output degrades to
// "not counted", never to an error. Product codes are compared exactly,
// with no normalization at this layer.
//
// Group order decides which description is recorded first and the order
// of Sources; the totals themselves are order-independent. The result
// is sorted ascending by product code for reproducible output.
func AggregateDemand(groups []entities.ExtractionGroupView) []entities.DemandItem {
	byCode := make(map[entities.ProductCode]*entities.DemandItem)

	for _, group := range groups {
		if !group.ContributesDemand() {
			continue
		}
		for _, item := range group.Items {
			if !item.Countable() {
				continue
			}

			demand, seen := byCode[item.ProductCode]
			if !seen {
				demand = &entities.DemandItem{
					ProductCode: item.ProductCode,
					Description: item.Description,
				}
				byCode[item.ProductCode] = demand
			} else if demand.Description == nil {
				demand.Description = item.Description
			}

			demand.DemandQty += item.Quantity
			demand.Sources = append(demand.Sources, entities.DemandSource{
				GroupID:       group.ID,
				EmployeeLabel: group.EmployeeLabel,
				ActivityCode:  item.ActivityCode,
			})
		}
	}

	items := make([]entities.DemandItem, 0, len(byCode))
	for _, demand := range byCode {
		items = append(items, *demand)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ProductCode < items[j].ProductCode
	})

	return items
}
