package domain

import "time"

// Order status values as defined by the backend. The set is closed:
// pending -> processing -> shipped -> delivered, with cancelled reachable
// from pending or processing. delivered and cancelled are terminal.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

var orderTransitions = map[string][]string{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
	OrderDelivered:  {},
	OrderCancelled:  {},
}

// ValidOrderStatus reports whether s belongs to the closed status set.
func ValidOrderStatus(s string) bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransitionOrder reports whether an order may move from one status to
// another. Same-status "transitions" are rejected.
func CanTransitionOrder(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID            int64       `json:"id"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail,omitempty"`
	CustomerPhone string      `json:"customerPhone,omitempty"`
	Address       string      `json:"address,omitempty"`
	City          string      `json:"city,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	Status        string      `json:"status"`
	Total         int64       `json:"total"`
	CreatedAt     time.Time   `json:"createdAt"`
	Items         []OrderItem `json:"items"`
}

type OrderItem struct {
	ID        int64    `json:"id,omitempty"`
	ProductID int64    `json:"productId"`
	Product   *Product `json:"product,omitempty"`
	Quantity  int      `json:"quantity"`
	UnitPrice int64    `json:"price,omitempty"`
}

// OrderInput is the order-creation request built from the cart at checkout.
type OrderInput struct {
	CustomerName  string           `json:"customerName"`
	CustomerEmail string           `json:"customerEmail,omitempty"`
	CustomerPhone string           `json:"customerPhone,omitempty"`
	Address       string           `json:"address,omitempty"`
	City          string           `json:"city,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	Items         []OrderItemInput `json:"items"`
}

type OrderItemInput struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}
