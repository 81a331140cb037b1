package response

import (
	"time"

	"calistar_backend/internal/domain/entities"
	"calistar_backend/internal/usecase"
)

type PixPaymentResponse struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"orderId"`
	Amount       float64   `json:"amount"`
	PixCode      string    `json:"pixCode"`
	QRCodeImage  string    `json:"qrCodeImage"`
	ExpiresAt    time.Time `json:"expiresAt"`
	FreeShipping bool      `json:"freeShipping"`
}

type CheckoutCreateResponse struct {
	Success bool               `json:"success"`
	Payment PixPaymentResponse `json:"payment"`
}

func FromPaymentIntent(p entities.PaymentIntent) CheckoutCreateResponse {
	return CheckoutCreateResponse{
		Success: true,
		Payment: PixPaymentResponse{
			ID:           p.ID,
			OrderID:      p.OrderID,
			Amount:       p.Amount,
			PixCode:      p.PixCode,
			QRCodeImage:  p.QRCodeImage,
			ExpiresAt:    p.ExpiresAt,
			FreeShipping: p.FreeShipping,
		},
	}
}

type PaymentStatusResponse struct {
	ID         string  `json:"id"`
	Status     string  `json:"status"`
	StatusCode int     `json:"statusCode"`
	Amount     float64 `json:"amount"`
	Paid       bool    `json:"paid"`
}

func FromPaymentStatus(info usecase.PaymentStatusInfo) PaymentStatusResponse {
	return PaymentStatusResponse{
		ID:         info.ID,
		Status:     string(info.Status),
		StatusCode: info.StatusCode,
		Amount:     info.Amount,
		Paid:       info.Paid,
	}
}

// WebhookAckResponse is returned for every webhook delivery, valid or not.
type WebhookAckResponse struct {
	Received bool `json:"received"`
}
