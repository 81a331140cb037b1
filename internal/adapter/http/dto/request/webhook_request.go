package request

import (
	"calistar_backend/internal/domain/entities"
)

type WebhookPayerRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
}

type WebhookDataRequest struct {
	ID            string              `json:"id"`
	ExternalID    string              `json:"external_id"`
	TransactionID string              `json:"transaction_id"`
	Amount        float64             `json:"amount"`
	Payer         WebhookPayerRequest `json:"payer"`
}

// WebhookEventRequest is the gateway's notification payload. No field is
// required at the binding level: malformed deliveries are still acked with
// 200 and only logged, so redelivery storms never build up.
type WebhookEventRequest struct {
	EventName string             `json:"event_name"`
	Data      WebhookDataRequest `json:"data"`
}

func (r WebhookEventRequest) ToEntity() entities.WebhookEvent {
	return entities.WebhookEvent{
		EventName:     r.EventName,
		PaymentID:     r.Data.ID,
		ExternalID:    r.Data.ExternalID,
		TransactionID: r.Data.TransactionID,
		Amount:        r.Data.Amount,
		PayerName:     r.Data.Payer.Name,
	}
}
