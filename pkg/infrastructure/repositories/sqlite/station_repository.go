package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmorelli/restock/pkg/domain/entities"
	"github.com/jmorelli/restock/pkg/domain/repositories"
)

// StationRepository provides SQLite-backed station storage
type StationRepository struct {
	db *sql.DB
}

// NewStationRepository creates a new SQLite station repository
func NewStationRepository(db *sql.DB) *StationRepository {
	return &StationRepository{db: db}
}

// Verify interface compliance
var _ repositories.StationRepository = (*StationRepository)(nil)

// SaveStation persists a station capture. A missing ID is minted and a
// zero CreatedAt defaults to now; the assigned ID is returned.
func (r *StationRepository) SaveStation(ctx context.Context, station entities.StationView) (string, error) {
	id := station.ID
	if id == "" {
		var err error
		if id, err = newID(); err != nil {
			return "", fmt.Errorf("failed to generate station id: %w", err)
		}
	}

	createdAt := station.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	var code any
	if station.ProductCode != nil {
		code = string(*station.ProductCode)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO stations (id, product_code, status, sign_blob_url, stock_blob_url, on_hand_qty, min_qty, max_qty, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, code, string(station.Status), station.SignBlobURL, station.StockBlobURL,
		qtyArg(station.OnHandQty), qtyArg(station.MinQty), qtyArg(station.MaxQty),
		createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert station: %w", err)
	}
	return id, nil
}

// GetStations returns all stations newest first, so first-match station
// selection resolves to the most recent capture of a product.
func (r *StationRepository) GetStations(ctx context.Context) ([]entities.StationView, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_code, status, sign_blob_url, stock_blob_url, on_hand_qty, min_qty, max_qty, created_at
		FROM stations
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	defer rows.Close()

	var stations []entities.StationView
	for rows.Next() {
		var (
			station   entities.StationView
			code      sql.NullString
			status    string
			signURL   sql.NullString
			stockURL  sql.NullString
			onHand    sql.NullInt64
			min       sql.NullInt64
			max       sql.NullInt64
			createdAt string
		)
		if err := rows.Scan(&station.ID, &code, &status, &signURL, &stockURL, &onHand, &min, &max, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}

		if code.Valid {
			pc := entities.ProductCode(code.String)
			station.ProductCode = &pc
		}
		station.Status = entities.StationStatus(status)
		if signURL.Valid {
			station.SignBlobURL = &signURL.String
		}
		if stockURL.Valid {
			station.StockBlobURL = &stockURL.String
		}
		station.OnHandQty = qtyFromNull(onHand)
		station.MinQty = qtyFromNull(min)
		station.MaxQty = qtyFromNull(max)

		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for station %s: %w", station.ID, err)
		}
		station.CreatedAt = parsed

		stations = append(stations, station)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stations: %w", err)
	}
	return stations, nil
}

func qtyArg(q *entities.Quantity) any {
	if q == nil {
		return nil
	}
	return int64(*q)
}

func qtyFromNull(n sql.NullInt64) *entities.Quantity {
	if !n.Valid {
		return nil
	}
	q := entities.Quantity(n.Int64)
	return &q
}
