// Package deliveryrepo persists delivery aggregates with gorm.
package deliveryrepo

import (
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// DeliveryDTO is the deliveries row. The unique index on order_id is what
// stops two concurrent assignments for the same order.
type DeliveryDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_deliveries_order_id"`
	DeliveryPersonID uuid.UUID  `gorm:"type:uuid;not null;index"`
	AssignedBy       uuid.UUID  `gorm:"type:uuid;not null"`
	Status           int        `gorm:"not null;index"`
	CreatedAt        time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt        *time.Time `gorm:"autoUpdateTime:false"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:               aggregate.ID().Bytes(),
		OrderID:          aggregate.OrderID().Bytes(),
		DeliveryPersonID: aggregate.DeliveryPersonID().Bytes(),
		AssignedBy:       aggregate.AssignedBy().Bytes(),
		Status:           int(aggregate.Status()),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.OrderID, dto.DeliveryPersonID, dto.AssignedBy} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return delivery.RestoreDelivery(
		ids[0],
		ids[1],
		ids[2],
		ids[3],
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
