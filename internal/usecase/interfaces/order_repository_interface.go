package interfaces

import (
	"context"
	"errors"

	"calistar_backend/internal/domain/entities"
)

// ErrOrderTransitionNotAllowed is returned by UpdateStatus when the order
// exists but its current status does not permit the requested transition
// (e.g. a redelivered webhook marking an already-paid order paid). Callers
// treat it as an idempotent no-op, not a failure.
var ErrOrderTransitionNotAllowed = errors.New("order status transition not allowed")

// ErrOrderNotFound is returned by UpdateStatus when no order exists under the
// given id. Reads follow the zero-value convention instead (empty OrderID).
var ErrOrderNotFound = errors.New("order not found")

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Both confirmation paths (status polling and webhook) call UpdateStatus with
// the same target state; the repository guards the monotonic transition rule
// so duplicates and races resolve to no-ops.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, orderID string) (entities.Order, error)
	GetByPaymentID(ctx context.Context, paymentID string) (entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus, transactionID string) (entities.Order, error)
}
