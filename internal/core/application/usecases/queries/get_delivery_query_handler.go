package queries

import (
	"context"
	"database/sql"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryQueryHandler reads one delivery record for the admin view.
//
// Example:
//
//	handler := NewGetDeliveryQueryHandler(db)
//	query, err := NewGetDeliveryQuery(deliveryID)
//	if err != nil {
//	    return err
//	}
//
//	d, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such delivery
//	}
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler reading from db.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle loads the delivery named by the query.
//
// Returns:
//   - the delivery with its status rendered as a name, e.g. "DELIVERED"
//   - an ObjectNotFoundError when no delivery has that id
func (h GetDeliveryQueryHandler) Handle(ctx context.Context, query GetDeliveryQuery) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			delivery_person_id,
			assigned_by,
			status,
			created_at,
			updated_at
		FROM deliveries
		WHERE id = ?
	`, query.DeliveryID().Bytes()).Rows()
	if err != nil {
		return DeliveryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DeliveryResponse{}, err
		}
		return DeliveryResponse{}, errs.NewObjectNotFoundError("delivery", query.DeliveryID().String())
	}

	var (
		response                                  DeliveryResponse
		id, orderID, deliveryPersonID, assignedBy uuid.UUID
		status                                    int
		updatedAt                                 sql.NullTime
	)

	err = rows.Scan(&id, &orderID, &deliveryPersonID, &assignedBy, &status, &response.CreatedAt, &updatedAt)
	if err != nil {
		return DeliveryResponse{}, err
	}

	for _, pair := range []struct {
		dst *kernel.UUID
		src uuid.UUID
	}{
		{&response.ID, id},
		{&response.OrderID, orderID},
		{&response.DeliveryPersonID, deliveryPersonID},
		{&response.AssignedBy, assignedBy},
	} {
		if *pair.dst, err = kernel.UUIDFromBytes(pair.src[:]); err != nil {
			return DeliveryResponse{}, err
		}
	}

	response.Status = order.Status(status).String()
	if updatedAt.Valid {
		response.UpdatedAt = &updatedAt.Time
	}

	return response, nil
}
