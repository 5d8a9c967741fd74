// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read tables directly and return read models shaped for the HTTP layer.
package queries

import (
	"context"
	"database/sql"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItemResponse is one priced line of an order as it was placed.
type OrderItemResponse struct {
	MenuItemID kernel.UUID
	Name       string
	Quantity   int
	UnitPrice  decimal.Decimal
}

// OrderResponse is the read model shared by GetOrder and ListOrders.
type OrderResponse struct {
	ID              kernel.UUID
	Number          string
	UserID          kernel.UUID
	Items           []OrderItemResponse
	TotalAmount     decimal.Decimal
	DeliveryAddress string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

const selectOrders = `
	SELECT
		id,
		number,
		user_id,
		total_amount,
		delivery_address,
		status,
		created_at,
		updated_at
	FROM orders
`

// fetchOrders runs selectOrders with the given tail (WHERE / ORDER BY) and
// attaches the items of every returned order with one extra query.
func fetchOrders(ctx context.Context, db *gorm.DB, tail string, args ...any) ([]OrderResponse, error) {
	rows, err := db.WithContext(ctx).Raw(selectOrders+tail, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	positions := make(map[uuid.UUID]int)
	ids := make([]uuid.UUID, 0)

	for rows.Next() {
		var (
			o         OrderResponse
			id        uuid.UUID
			userID    uuid.UUID
			status    int
			updatedAt sql.NullTime
		)

		err = rows.Scan(
			&id,
			&o.Number,
			&userID,
			&o.TotalAmount,
			&o.DeliveryAddress,
			&status,
			&o.CreatedAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}

		if o.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if o.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		o.Status = order.Status(status).String()
		if updatedAt.Valid {
			o.UpdatedAt = &updatedAt.Time
		}
		o.Items = make([]OrderItemResponse, 0)

		positions[id] = len(orders)
		ids = append(ids, id)
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return orders, nil
	}

	if err = attachItems(ctx, db, orders, positions, ids); err != nil {
		return nil, err
	}

	return orders, nil
}

func attachItems(
	ctx context.Context,
	db *gorm.DB,
	orders []OrderResponse,
	positions map[uuid.UUID]int,
	ids []uuid.UUID,
) error {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_item_id,
			name,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item       OrderItemResponse
			orderID    uuid.UUID
			menuItemID uuid.UUID
		)

		if err = rows.Scan(&orderID, &menuItemID, &item.Name, &item.Quantity, &item.UnitPrice); err != nil {
			return err
		}

		if item.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return err
		}

		pos, ok := positions[orderID]
		if !ok {
			continue
		}
		orders[pos].Items = append(orders[pos].Items, item)
	}

	return rows.Err()
}
