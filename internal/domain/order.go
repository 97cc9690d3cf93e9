package domain

import "time"

// StatusPending is the status every order is created with. Later transitions
// are operator-supplied free text and are not validated against a closed set.
const StatusPending = "pending"

// OrderItem is one product reference inside an order. No price is captured;
// the order stores only what the client checked out with.
type OrderItem struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Items     []OrderItem `json:"items"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}
