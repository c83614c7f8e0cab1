package planning

import (
	"sort"

	"github.com/jmorelli/restock/pkg/domain/entities"
)

// ComputeOrder combines demand with station data to produce a
// recommended order quantity per product, flagging quantities that
// would overfill the station.
//
// For a captured product the recommendation is the demand not covered
// by stock on hand, floored at zero, and ExceedsMax reports whether
// on-hand plus the recommendation would exceed the station maximum.
// Uncaptured products fall back to the pessimistic defaults, which
// force the recommendation to the full demand with ExceedsMax false.
//
// Skipped is reserved for products no policy can resolve, e.g. a
// missing catalog entry in catalog-validation modes; under the
// pessimistic-default policy every product is computable and the list
// stays empty. Output is sorted ascending by product code.
func ComputeOrder(demand []entities.DemandItem, stations []entities.StationView) entities.OrderResult {
	items := make([]entities.OrderItem, 0, len(demand))

	for _, d := range demand {
		figures := resolveStation(d, stations)

		recommended := d.DemandQty - figures.onHand
		if recommended < 0 {
			recommended = 0
		}

		items = append(items, entities.OrderItem{
			ProductCode:         d.ProductCode,
			ProductDescription:  d.Description,
			DemandQty:           d.DemandQty,
			OnHandQty:           figures.onHand,
			MinQty:              figures.min,
			MaxQty:              figures.max,
			RecommendedOrderQty: recommended,
			ExceedsMax:          figures.onHand+recommended > figures.max,
			IsCaptured:          figures.captured,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].ProductCode < items[j].ProductCode
	})

	return entities.OrderResult{
		Items:   items,
		Skipped: []entities.SkippedOrderItem{},
	}
}
