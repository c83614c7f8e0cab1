package planning

import (
	"github.com/jmorelli/restock/pkg/domain/entities"
)

// stationFigures holds the inventory figures a demand item resolves to.
// Coverage evaluation and order computation both go through
// resolveStation so they always apply identical capture criteria.
type stationFigures struct {
	stationID string
	captured  bool
	onHand    entities.Quantity
	min       entities.Quantity
	max       entities.Quantity
}

// resolveStation finds the first station that is a valid record for the
// demand item's product. The product counts as captured only if that
// station also has both images uploaded. Without a captured station the
// pessimistic defaults apply: zero on hand, zero minimum, and a maximum
// equal to the full demand, so unknown inventory is never assumed
// sufficient.
//
// Stations are searched in the order given; repositories return them
// newest first, so a re-captured product resolves to its most recent
// station.
func resolveStation(demand entities.DemandItem, stations []entities.StationView) stationFigures {
	for _, station := range stations {
		if !station.Matches(demand.ProductCode) {
			continue
		}
		if !station.FullyImaged() {
			// Station metadata exists but the images were never
			// uploaded: the first match decides, so stop looking.
			break
		}

		figures := stationFigures{
			stationID: station.ID,
			captured:  true,
			max:       *station.MaxQty,
		}
		if station.OnHandQty != nil {
			figures.onHand = *station.OnHandQty
		}
		if station.MinQty != nil {
			figures.min = *station.MinQty
		}
		return figures
	}

	return stationFigures{max: demand.DemandQty}
}
