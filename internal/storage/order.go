package storage

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderAssigned  OrderStatus = "assigned"
	OrderPicked    OrderStatus = "picked"
	OrderDelivered OrderStatus = "delivered"
)

// OrderStatuses lists the statuses in the order the UI offers them.
var OrderStatuses = []OrderStatus{OrderPending, OrderAssigned, OrderPicked, OrderDelivered}

func ValidOrderStatus(s string) bool {
	for _, st := range OrderStatuses {
		if string(st) == s {
			return true
		}
	}
	return false
}

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Order struct {
	ID          string      `json:"_id"`
	OrderNumber string      `json:"orderNumber"`
	Customer    Customer    `json:"customer"`
	Area        string      `json:"area,omitempty"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	TotalAmount float64     `json:"totalAmount"`
}

type OrderStatusUpdate struct {
	Status OrderStatus `json:"status"`
}
