package entities

import "time"

// OrderStatus is the durable order lifecycle.
//
// Transitions are monotonic: pending may move to paid, expired or canceled;
// paid may only move to refunded. Both the status-polling path and the
// webhook path attempt the same conditional update, so whichever arrives
// first wins and the other is a no-op.

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusPaid     OrderStatus = "paid"
	OrderStatusExpired  OrderStatus = "expired"
	OrderStatusCanceled OrderStatus = "canceled"
	OrderStatusRefunded OrderStatus = "refunded"
)

// AllowedPreviousStatuses lists the states an order must currently be in for
// a transition into s to be legal. The repository turns this into a DynamoDB
// condition expression.
func (s OrderStatus) AllowedPreviousStatuses() []OrderStatus {
	switch s {
	case OrderStatusPaid:
		// A late webhook may still confirm an order the client already
		// treats as expired; the gateway is the source of truth.
		return []OrderStatus{OrderStatusPending, OrderStatusExpired}
	case OrderStatusRefunded:
		return []OrderStatus{OrderStatusPaid}
	case OrderStatusExpired, OrderStatusCanceled:
		return []OrderStatus{OrderStatusPending}
	default:
		return nil
	}
}

type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type OrderCustomer struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// Order is the durable record written at checkout time and updated by the
// polling and webhook paths.
//
// Storage model (DynamoDB):
//   - PK: order_id (the locally generated ORD-<ms>-<rand> correlation id)
//   - GSI1 (payment_id-index): payment_id (gateway-assigned id)
type Order struct {
	OrderID       string        `json:"order_id"`
	PaymentID     string        `json:"payment_id"`
	Amount        float64       `json:"amount"`
	Items         []OrderItem   `json:"items"`
	Customer      OrderCustomer `json:"customer"`
	Status        OrderStatus   `json:"status"`
	TransactionID string        `json:"transaction_id,omitempty"`
	FreeShipping  bool          `json:"free_shipping"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	ExpiresAt     time.Time     `json:"expires_at"`
}
