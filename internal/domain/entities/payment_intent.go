package entities

import (
	"strings"
	"time"
)

// PaymentStatus is the canonical PIX payment state exposed to the storefront.
//
// The Pagou gateway reports status either as a numeric code (1..5, older API
// version) or as a string enum (newer version). Both are mapped through
// PaymentStatusFromGateway; anything outside the table becomes
// PaymentStatusUnknown rather than an error, because misreporting a paid
// order as failed is worse than showing a neutral state.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusActive    PaymentStatus = "active"
	PaymentStatusCanceled  PaymentStatus = "canceled"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
	PaymentStatusUnknown   PaymentStatus = "unknown"
)

var paymentStatusByCode = map[int]PaymentStatus{
	1: PaymentStatusPending,
	2: PaymentStatusActive,
	3: PaymentStatusCanceled,
	4: PaymentStatusCompleted,
	5: PaymentStatusRefunded,
}

var paymentStatusByName = map[string]PaymentStatus{
	"empty":     PaymentStatusPending,
	"pending":   PaymentStatusPending,
	"active":    PaymentStatusActive,
	"canceled":  PaymentStatusCanceled,
	"cancelled": PaymentStatusCanceled,
	"completed": PaymentStatusCompleted,
	"refunded":  PaymentStatusRefunded,
}

// PaymentStatusFromGateway maps a gateway status (numeric code takes
// precedence when > 0, otherwise the string form) to the canonical status.
func PaymentStatusFromGateway(code int, name string) PaymentStatus {
	if code > 0 {
		if s, ok := paymentStatusByCode[code]; ok {
			return s
		}
		return PaymentStatusUnknown
	}
	if s, ok := paymentStatusByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s
	}
	return PaymentStatusUnknown
}

// Code returns the numeric gateway code for the canonical status (0 for
// unknown), so the status endpoint reports a stable statusCode regardless of
// which gateway API version answered.
func (s PaymentStatus) Code() int {
	switch s {
	case PaymentStatusPending:
		return 1
	case PaymentStatusActive:
		return 2
	case PaymentStatusCanceled:
		return 3
	case PaymentStatusCompleted:
		return 4
	case PaymentStatusRefunded:
		return 5
	default:
		return 0
	}
}

// PaymentIntent is the normalized result of creating a PIX charge. It is not
// persisted as-is; the durable record is the Order keyed by OrderID.
type PaymentIntent struct {
	ID           string        `json:"id"`
	OrderID      string        `json:"orderId"`
	Amount       float64       `json:"amount"`
	PixCode      string        `json:"pixCode"`
	QRCodeImage  string        `json:"qrCodeImage"`
	Status       PaymentStatus `json:"status"`
	ExpiresAt    time.Time     `json:"expiresAt"`
	FreeShipping bool          `json:"freeShipping"`
}

// Webhook event names as documented by the gateway. The legacy API version
// emits "qrcode.*" instead; NormalizeWebhookEventName folds both families.
const (
	WebhookEventPaymentCompleted = "payment.completed"
	WebhookEventPaymentRefunded  = "payment.refunded"
)

func NormalizeWebhookEventName(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "payment.completed", "qrcode.completed":
		return WebhookEventPaymentCompleted
	case "payment.refunded", "qrcode.refunded":
		return WebhookEventPaymentRefunded
	default:
		return strings.ToLower(strings.TrimSpace(name))
	}
}

// WebhookEvent is the decoded gateway push notification. Ephemeral: consumed
// once, idempotency is enforced by the Order status transition rules.
type WebhookEvent struct {
	EventName     string
	PaymentID     string
	ExternalID    string
	TransactionID string
	Amount        float64
	PayerName     string
}
