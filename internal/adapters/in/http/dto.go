package http

import (
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

type PlaceOrderRequest struct {
	Items           []PlaceOrderItem `json:"items"`
	DeliveryAddress string           `json:"deliveryAddress"`
}

type PlaceOrderItem struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type AssignDeliveryRequest struct {
	OrderID          string `json:"orderId"`
	DeliveryPersonID string `json:"deliveryPersonId"`
}

type UpdateDeliveryStatusRequest struct {
	Status string `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type OrderItemJSON struct {
	ItemID   kernel.UUID `json:"itemId"`
	Name     string      `json:"name"`
	Quantity int         `json:"quantity"`
	Price    string      `json:"price"`
}

type OrderJSON struct {
	ID              kernel.UUID     `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	UserID          kernel.UUID     `json:"userId"`
	Items           []OrderItemJSON `json:"items"`
	TotalAmount     string          `json:"totalAmount"`
	DeliveryAddress string          `json:"deliveryAddress"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       *time.Time      `json:"updatedAt"`
}

type DeliveryJSON struct {
	ID               kernel.UUID `json:"id"`
	OrderID          kernel.UUID `json:"orderId"`
	DeliveryPersonID kernel.UUID `json:"deliveryPersonId"`
	AssignedBy       kernel.UUID `json:"assignedBy"`
	Status           string      `json:"status"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        *time.Time  `json:"updatedAt"`
}

type RevenueJSON struct {
	TotalRevenue string `json:"totalRevenue"`
}

type MostOrderedItemJSON struct {
	Name         string `json:"name"`
	TotalOrdered int64  `json:"totalOrdered"`
}

type RestaurantMostOrderedJSON struct {
	RestaurantID     string                `json:"restaurantId"`
	RestaurantName   string                `json:"restaurantName"`
	MostOrderedItems []MostOrderedItemJSON `json:"mostOrderedItems"`
}

type MonthlyRevenueJSON struct {
	Month        string `json:"month"`
	TotalRevenue string `json:"totalRevenue"`
}

func formatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

func orderFromDomain(o *order.Order) OrderJSON {
	items := make([]OrderItemJSON, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemJSON{
			ItemID:   item.MenuItemID(),
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    formatAmount(item.UnitPrice().Amount()),
		})
	}

	return OrderJSON{
		ID:              o.ID(),
		OrderNumber:     o.Number(),
		UserID:          o.UserID(),
		Items:           items,
		TotalAmount:     formatAmount(o.TotalAmount().Amount()),
		DeliveryAddress: o.DeliveryAddress(),
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func orderFromReadModel(o queries.OrderResponse) OrderJSON {
	items := make([]OrderItemJSON, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemJSON{
			ItemID:   item.MenuItemID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    formatAmount(item.UnitPrice),
		})
	}

	return OrderJSON{
		ID:              o.ID,
		OrderNumber:     o.Number,
		UserID:          o.UserID,
		Items:           items,
		TotalAmount:     formatAmount(o.TotalAmount),
		DeliveryAddress: o.DeliveryAddress,
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func deliveryFromDomain(d *delivery.Delivery) DeliveryJSON {
	return DeliveryJSON{
		ID:               d.ID(),
		OrderID:          d.OrderID(),
		DeliveryPersonID: d.DeliveryPersonID(),
		AssignedBy:       d.AssignedBy(),
		Status:           d.Status().String(),
		CreatedAt:        d.CreatedAt(),
		UpdatedAt:        d.UpdatedAt(),
	}
}

func deliveryFromReadModel(d queries.DeliveryResponse) DeliveryJSON {
	return DeliveryJSON{
		ID:               d.ID,
		OrderID:          d.OrderID,
		DeliveryPersonID: d.DeliveryPersonID,
		AssignedBy:       d.AssignedBy,
		Status:           d.Status,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}
