package interfaces

import (
	"context"

	"calistar_backend/internal/infrastructure/payments"
)

// IPixGateway abstracts the external PIX payment gateway (Pagou).
//
// CreatePix must be called at most once per logical checkout attempt: the
// orchestrator never retries an ambiguous failure, because a retry could
// issue a duplicate charge.
type IPixGateway interface {
	CreatePix(ctx context.Context, req payments.CreatePixRequest) (payments.PixPayment, error)
	GetPixStatus(ctx context.Context, id string) (payments.PixStatus, error)
}
