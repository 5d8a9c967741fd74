// Package orderrepo persists order aggregates with gorm. Orders live in the
// orders table and their lines in order_items.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Status is stored as its integer value.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number          string          `gorm:"size:32;not null"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	DeliveryAddress string          `gorm:"size:255;not null"`
	Status          int             `gorm:"not null;index"`
	CreatedAt       time.Time       `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt       *time.Time      `gorm:"autoUpdateTime:false"`
	Items           []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order line. Name and unit price are the values copied
// from the menu at placement.
type OrderItemDTO struct {
	OrderID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;primaryKey;index"`
	Position   int             `gorm:"not null"`
	Name       string          `gorm:"size:255;not null"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: item.MenuItemID().Bytes(),
			Position:   i,
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Amount(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Number:          aggregate.Number(),
		UserID:          aggregate.UserID().Bytes(),
		TotalAmount:     aggregate.TotalAmount().Amount(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Status:          int(aggregate.Status()),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		Items:           items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		userID,
		items,
		total,
		dto.DeliveryAddress,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.Item{}, err
	}

	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(menuItemID, dto.Name, dto.Quantity, price)
}
