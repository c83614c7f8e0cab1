package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmorelli/restock/pkg/domain/entities"
)

func strPtr(s string) *string { return &s }

func qtyPtr(q entities.Quantity) *entities.Quantity { return &q }

func codePtr(c entities.ProductCode) *entities.ProductCode { return &c }

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Init(filepath.Join(t.TempDir(), "restock.db"))
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGroupRepository_SaveAndGet(t *testing.T) {
	db := testDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	cost := decimal.RequireFromString("0.034")
	id, err := repo.SaveGroup(ctx, entities.ExtractionGroupView{
		EmployeeLabel: strPtr("Mina"),
		Status:        entities.ExtractionSuccess,
		ActivityCount: 2,
		ItemCount:     2,
		Cost:          &cost,
		Items: []entities.LineItem{
			{ProductCode: "A100", Quantity: 3, ActivityCode: "ACT-1", Description: strPtr("Washers")},
			{ProductCode: "B200", Quantity: 5, ActivityCode: "ACT-2"},
		},
	})
	if err != nil {
		t.Fatalf("SaveGroup failed: %v", err)
	}
	if id == "" {
		t.Fatal("Expected a minted group ID")
	}

	groups, err := repo.GetGroups(ctx)
	if err != nil {
		t.Fatalf("GetGroups failed: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("len(groups) = %d, want 1", len(groups))
	}

	group := groups[0]
	if group.ID != id {
		t.Errorf("ID = %q, want %q", group.ID, id)
	}
	if group.EmployeeLabel == nil || *group.EmployeeLabel != "Mina" {
		t.Errorf("EmployeeLabel = %v, want Mina", group.EmployeeLabel)
	}
	if group.Status != entities.ExtractionSuccess {
		t.Errorf("Status = %q, want success", group.Status)
	}
	if group.Cost == nil || !group.Cost.Equal(cost) {
		t.Errorf("Cost = %v, want %s", group.Cost, cost)
	}
	if len(group.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(group.Items))
	}
	if group.Items[0].ProductCode != "A100" || group.Items[0].Quantity != 3 {
		t.Errorf("Items[0] = %+v, want A100 qty 3 first (capture order)", group.Items[0])
	}
	if group.Items[0].Description == nil || *group.Items[0].Description != "Washers" {
		t.Errorf("Items[0].Description = %v, want Washers", group.Items[0].Description)
	}
	if group.Items[1].Description != nil {
		t.Errorf("Items[1].Description = %v, want nil", group.Items[1].Description)
	}
}

func TestGroupRepository_NullableFields(t *testing.T) {
	db := testDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	id, err := repo.SaveGroup(ctx, entities.ExtractionGroupView{Status: entities.ExtractionAbsent})
	if err != nil {
		t.Fatalf("SaveGroup failed: %v", err)
	}

	groups, err := repo.GetGroups(ctx)
	if err != nil {
		t.Fatalf("GetGroups failed: %v", err)
	}
	group := groups[0]
	if group.ID != id {
		t.Errorf("ID = %q, want %q", group.ID, id)
	}
	if group.EmployeeLabel != nil || group.Cost != nil {
		t.Errorf("Expected nil EmployeeLabel and Cost, got %+v", group)
	}
	if len(group.Items) != 0 {
		t.Errorf("len(Items) = %d, want 0", len(group.Items))
	}
}

func TestStationRepository_SaveAndGet(t *testing.T) {
	db := testDB(t)
	repo := NewStationRepository(db)
	ctx := context.Background()

	id, err := repo.SaveStation(ctx, entities.StationView{
		ProductCode:  codePtr("A100"),
		Status:       entities.StationValid,
		SignBlobURL:  strPtr("blob://sign/1"),
		StockBlobURL: strPtr("blob://stock/1"),
		OnHandQty:    qtyPtr(4),
		MinQty:       qtyPtr(1),
		MaxQty:       qtyPtr(12),
	})
	if err != nil {
		t.Fatalf("SaveStation failed: %v", err)
	}

	stations, err := repo.GetStations(ctx)
	if err != nil {
		t.Fatalf("GetStations failed: %v", err)
	}
	if len(stations) != 1 {
		t.Fatalf("len(stations) = %d, want 1", len(stations))
	}

	station := stations[0]
	if station.ID != id {
		t.Errorf("ID = %q, want %q", station.ID, id)
	}
	if station.ProductCode == nil || *station.ProductCode != "A100" {
		t.Errorf("ProductCode = %v, want A100", station.ProductCode)
	}
	if station.OnHandQty == nil || *station.OnHandQty != 4 {
		t.Errorf("OnHandQty = %v, want 4", station.OnHandQty)
	}
	if station.MaxQty == nil || *station.MaxQty != 12 {
		t.Errorf("MaxQty = %v, want 12", station.MaxQty)
	}
	if !station.FullyImaged() {
		t.Error("Expected FullyImaged after round trip")
	}
	if station.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set on save")
	}
}

func TestStationRepository_PendingStationNullables(t *testing.T) {
	db := testDB(t)
	repo := NewStationRepository(db)
	ctx := context.Background()

	if _, err := repo.SaveStation(ctx, entities.StationView{Status: entities.StationPending}); err != nil {
		t.Fatalf("SaveStation failed: %v", err)
	}

	stations, err := repo.GetStations(ctx)
	if err != nil {
		t.Fatalf("GetStations failed: %v", err)
	}
	station := stations[0]
	if station.ProductCode != nil || station.OnHandQty != nil || station.MinQty != nil || station.MaxQty != nil {
		t.Errorf("Expected nil metadata for pending station, got %+v", station)
	}
	if station.SignBlobURL != nil || station.StockBlobURL != nil {
		t.Errorf("Expected nil blob URLs, got %+v", station)
	}
}

func TestStationRepository_NewestFirst(t *testing.T) {
	db := testDB(t)
	repo := NewStationRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"older", "newer"} {
		_, err := repo.SaveStation(ctx, entities.StationView{
			ID:          id,
			ProductCode: codePtr("A100"),
			Status:      entities.StationValid,
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("SaveStation failed: %v", err)
		}
	}

	stations, err := repo.GetStations(ctx)
	if err != nil {
		t.Fatalf("GetStations failed: %v", err)
	}
	if stations[0].ID != "newer" || stations[1].ID != "older" {
		t.Errorf("Expected newest first, got %q, %q", stations[0].ID, stations[1].ID)
	}
}

func TestInit_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restock.db")
	db, err := Init(path)
	if err != nil {
		t.Fatalf("First Init failed: %v", err)
	}
	db.Close()

	db, err = Init(path)
	if err != nil {
		t.Fatalf("Second Init failed: %v", err)
	}
	defer db.Close()

	version, err := getUserVersion(db)
	if err != nil {
		t.Fatalf("getUserVersion failed: %v", err)
	}
	if version != CurrentSchemaVersion {
		t.Errorf("user_version = %d, want %d", version, CurrentSchemaVersion)
	}
}
