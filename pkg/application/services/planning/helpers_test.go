package planning

import (
	"github.com/jmorelli/restock/pkg/domain/entities"
)

func strPtr(s string) *string { return &s }

func qtyPtr(q entities.Quantity) *entities.Quantity { return &q }

func codePtr(c entities.ProductCode) *entities.ProductCode { return &c }

// successGroup builds a successfully extracted group with the given items
func successGroup(id string, items ...entities.LineItem) entities.ExtractionGroupView {
	return entities.ExtractionGroupView{
		ID:     id,
		Status: entities.ExtractionSuccess,
		Items:  items,
	}
}

// capturedStation builds a fully imaged, valid station for a product
func capturedStation(id string, code entities.ProductCode, onHand, min, max entities.Quantity) entities.StationView {
	return entities.StationView{
		ID:           id,
		ProductCode:  codePtr(code),
		Status:       entities.StationValid,
		SignBlobURL:  strPtr("blob://sign/" + id),
		StockBlobURL: strPtr("blob://stock/" + id),
		OnHandQty:    qtyPtr(onHand),
		MinQty:       qtyPtr(min),
		MaxQty:       qtyPtr(max),
	}
}
