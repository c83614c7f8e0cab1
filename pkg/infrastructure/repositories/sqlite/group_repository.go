package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmorelli/restock/pkg/domain/entities"
	"github.com/jmorelli/restock/pkg/domain/repositories"
)

// GroupRepository provides SQLite-backed capture group storage
type GroupRepository struct {
	db *sql.DB
}

// NewGroupRepository creates a new SQLite group repository
func NewGroupRepository(db *sql.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// Verify interface compliance
var _ repositories.GroupRepository = (*GroupRepository)(nil)

// SaveGroup persists a capture group and its line items in one
// transaction. A missing ID is minted; the assigned ID is returned.
func (r *GroupRepository) SaveGroup(ctx context.Context, group entities.ExtractionGroupView) (string, error) {
	id := group.ID
	if id == "" {
		var err error
		if id, err = newID(); err != nil {
			return "", fmt.Errorf("failed to generate group id: %w", err)
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var cost any
	if group.Cost != nil {
		cost = group.Cost.String()
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO capture_groups (id, employee_label, extraction_status, activity_count, item_count, cost, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, group.EmployeeLabel, string(group.Status), group.ActivityCount, group.ItemCount, cost,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert capture group: %w", err)
	}

	for position, item := range group.Items {
		itemID, err := newID()
		if err != nil {
			return "", fmt.Errorf("failed to generate line item id: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO line_items (id, group_id, product_code, quantity, activity_code, description, position)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			itemID, id, string(item.ProductCode), int64(item.Quantity), item.ActivityCode, item.Description, position,
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert line item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit capture group: %w", err)
	}
	return id, nil
}

// GetGroups returns all capture groups newest first, each with its line
// items in capture order.
func (r *GroupRepository) GetGroups(ctx context.Context) ([]entities.ExtractionGroupView, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, employee_label, extraction_status, activity_count, item_count, cost
		FROM capture_groups
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query capture groups: %w", err)
	}
	defer rows.Close()

	var groups []entities.ExtractionGroupView
	index := make(map[string]int)

	for rows.Next() {
		var (
			group         entities.ExtractionGroupView
			employeeLabel sql.NullString
			status        string
			cost          sql.NullString
		)
		if err := rows.Scan(&group.ID, &employeeLabel, &status, &group.ActivityCount, &group.ItemCount, &cost); err != nil {
			return nil, fmt.Errorf("failed to scan capture group: %w", err)
		}
		if employeeLabel.Valid {
			group.EmployeeLabel = &employeeLabel.String
		}
		group.Status = entities.ExtractionStatus(status)
		if cost.Valid {
			parsed, err := decimal.NewFromString(cost.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse cost for group %s: %w", group.ID, err)
			}
			group.Cost = &parsed
		}

		index[group.ID] = len(groups)
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate capture groups: %w", err)
	}

	if err := r.attachLineItems(ctx, groups, index); err != nil {
		return nil, err
	}
	return groups, nil
}

// attachLineItems loads all line items and stitches them onto their groups.
func (r *GroupRepository) attachLineItems(ctx context.Context, groups []entities.ExtractionGroupView, index map[string]int) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT group_id, product_code, quantity, activity_code, description
		FROM line_items
		ORDER BY group_id, position`)
	if err != nil {
		return fmt.Errorf("failed to query line items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			groupID     string
			code        string
			quantity    int64
			activity    string
			description sql.NullString
		)
		if err := rows.Scan(&groupID, &code, &quantity, &activity, &description); err != nil {
			return fmt.Errorf("failed to scan line item: %w", err)
		}

		i, ok := index[groupID]
		if !ok {
			continue
		}
		item := entities.LineItem{
			ProductCode:  entities.ProductCode(code),
			Quantity:     entities.Quantity(quantity),
			ActivityCode: activity,
		}
		if description.Valid {
			item.Description = &description.String
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate line items: %w", err)
	}
	return nil
}
