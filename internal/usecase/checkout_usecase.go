package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"calistar_backend/internal/domain/entities"
	"calistar_backend/internal/infrastructure/payments"
	"calistar_backend/internal/usecase/interfaces"
	"calistar_backend/pkg/cpf"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount        = errors.New("amount below minimum or not positive")
	ErrMissingCustomerField = errors.New("customer name, email and document are required")
	ErrInvalidTaxID         = errors.New("invalid cpf")
	ErrInvalidPaymentID     = errors.New("invalid payment id")
)

// CheckoutSettings are the business constants injected from config.
type CheckoutSettings struct {
	MinOrderAmount       float64
	FreeShippingMinimum  float64
	PixExpirationSeconds int
	NotificationURL      string
}

type CustomerInput struct {
	Name     string
	Email    string
	Phone    string
	Document string
}

type OrderItemInput struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice float64
}

type CreatePixCommand struct {
	Amount   float64
	Items    []OrderItemInput
	Customer CustomerInput
}

type PaymentStatusInfo struct {
	ID         string
	Status     entities.PaymentStatus
	StatusCode int
	Amount     float64
	Paid       bool
}

// ICheckoutUseCase is the payment orchestrator: it creates PIX charges
// against the gateway, answers status polls, and consumes webhook events.
// All three paths converge on the durable Order record.

type ICheckoutUseCase interface {
	CreatePixPayment(ctx context.Context, cmd CreatePixCommand) (entities.PaymentIntent, error)
	GetPaymentStatus(ctx context.Context, paymentID string) (PaymentStatusInfo, error)
	ProcessWebhookEvent(ctx context.Context, evt entities.WebhookEvent) error
}

type CheckoutUseCase struct {
	orders   interfaces.IOrderRepository
	gateway  interfaces.IPixGateway
	settings CheckoutSettings
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(orders interfaces.IOrderRepository, gateway interfaces.IPixGateway, settings CheckoutSettings) *CheckoutUseCase {
	return &CheckoutUseCase{orders: orders, gateway: gateway, settings: settings}
}

func (u *CheckoutUseCase) CreatePixPayment(ctx context.Context, cmd CreatePixCommand) (entities.PaymentIntent, error) {
	log.Printf("[checkout][usecase] create start amount=%.3f items=%d customer=%q", cmd.Amount, len(cmd.Items), cmd.Customer.Name)

	if cmd.Amount <= 0 || cmd.Amount < u.settings.MinOrderAmount {
		log.Printf("[checkout][usecase] amount below minimum amount=%.3f min=%.2f", cmd.Amount, u.settings.MinOrderAmount)
		return entities.PaymentIntent{}, ErrInvalidAmount
	}
	if strings.TrimSpace(cmd.Customer.Name) == "" || strings.TrimSpace(cmd.Customer.Email) == "" || strings.TrimSpace(cmd.Customer.Document) == "" {
		return entities.PaymentIntent{}, ErrMissingCustomerField
	}

	document := cpf.Strip(cmd.Customer.Document)
	if !cpf.Valid(document) {
		log.Printf("[checkout][usecase] invalid cpf customer=%q", cmd.Customer.Name)
		return entities.PaymentIntent{}, ErrInvalidTaxID
	}

	// The gateway rejects mismatched cent values, so rounding happens here,
	// once, before anything else sees the amount.
	amount := roundToCents(cmd.Amount)
	orderID := newOrderID()
	now := time.Now().UTC()
	expiresAt := now.Add(time.Duration(u.settings.PixExpirationSeconds) * time.Second)

	req := payments.CreatePixRequest{
		Amount:      amount,
		Description: fmt.Sprintf("Compra Calistar - %d item(s)", max(len(cmd.Items), 1)),
		Expiration:  u.settings.PixExpirationSeconds,
		Payer: payments.PixPayer{
			Name:     strings.TrimSpace(cmd.Customer.Name),
			Document: document,
			Email:    strings.TrimSpace(cmd.Customer.Email),
		},
		Metadata:        []payments.MetadataEntry{{Key: "order_id", Value: orderID}},
		ExternalID:      orderID,
		NotificationURL: u.settings.NotificationURL,
	}

	// Single attempt, no retry: an ambiguous failure here is surfaced to the
	// customer, who decides whether to resubmit.
	payment, err := u.gateway.CreatePix(ctx, req)
	if err != nil {
		log.Printf("[checkout][usecase] gateway create failed order_id=%s err=%v", orderID, err)
		return entities.PaymentIntent{}, err
	}

	chargedAmount := payment.Amount
	if chargedAmount == 0 {
		chargedAmount = amount
	}
	freeShipping := u.settings.FreeShippingMinimum > 0 && chargedAmount >= u.settings.FreeShippingMinimum

	order := entities.Order{
		OrderID:      orderID,
		PaymentID:    payment.ID,
		Amount:       chargedAmount,
		Items:        toOrderItems(cmd.Items),
		Customer:     entities.OrderCustomer{Name: strings.TrimSpace(cmd.Customer.Name), Document: document, Email: strings.TrimSpace(cmd.Customer.Email), Phone: strings.TrimSpace(cmd.Customer.Phone)},
		Status:       entities.OrderStatusPending,
		FreeShipping: freeShipping,
		CreatedAt:    now,
		UpdatedAt:    now,
		ExpiresAt:    expiresAt,
	}
	if _, err := u.orders.Create(ctx, order); err != nil {
		// The charge already exists at the gateway; losing the local row is
		// recoverable via the payment_id index, failing the checkout is not.
		log.Printf("[checkout][usecase] order persist failed order_id=%s payment_id=%s err=%v", orderID, payment.ID, err)
	} else {
		log.Printf("[checkout][usecase] order created order_id=%s payment_id=%s amount=%.2f", orderID, payment.ID, chargedAmount)
	}

	return entities.PaymentIntent{
		ID:           payment.ID,
		OrderID:      orderID,
		Amount:       chargedAmount,
		PixCode:      payment.PixCode,
		QRCodeImage:  payment.QRCodeImage,
		Status:       entities.PaymentStatusPending,
		ExpiresAt:    expiresAt,
		FreeShipping: freeShipping,
	}, nil
}

func (u *CheckoutUseCase) GetPaymentStatus(ctx context.Context, paymentID string) (PaymentStatusInfo, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return PaymentStatusInfo{}, ErrInvalidPaymentID
	}

	st, err := u.gateway.GetPixStatus(ctx, paymentID)
	if err != nil {
		return PaymentStatusInfo{}, err
	}

	status := entities.PaymentStatusFromGateway(st.StatusCode, st.StatusName)
	if status == entities.PaymentStatusCompleted {
		// Write-through confirmation. The webhook may have landed first;
		// either way the conditional update makes this a safe no-op.
		u.markOrderByPaymentID(ctx, paymentID, entities.OrderStatusPaid, "")
	}

	return PaymentStatusInfo{
		ID:         st.ID,
		Status:     status,
		StatusCode: status.Code(),
		Amount:     st.Amount,
		Paid:       status == entities.PaymentStatusCompleted,
	}, nil
}

func (u *CheckoutUseCase) ProcessWebhookEvent(ctx context.Context, evt entities.WebhookEvent) error {
	eventName := entities.NormalizeWebhookEventName(evt.EventName)
	log.Printf("[checkout][webhook] event received name=%s payment_id=%s external_id=%s", eventName, evt.PaymentID, evt.ExternalID)

	var target entities.OrderStatus
	switch eventName {
	case entities.WebhookEventPaymentCompleted:
		target = entities.OrderStatusPaid
	case entities.WebhookEventPaymentRefunded:
		target = entities.OrderStatusRefunded
	default:
		// Unrecognized events are dropped; the handler still acks so the
		// gateway does not redeliver.
		log.Printf("[checkout][webhook] unrecognized event dropped name=%s", eventName)
		return nil
	}

	if strings.TrimSpace(evt.ExternalID) != "" {
		order, err := u.orders.UpdateStatus(ctx, strings.TrimSpace(evt.ExternalID), target, evt.TransactionID)
		switch {
		case err == nil:
			u.logConfirmation(order, target, evt)
			return nil
		case errors.Is(err, interfaces.ErrOrderTransitionNotAllowed):
			log.Printf("[checkout][webhook] duplicate delivery ignored order_id=%s target=%s", evt.ExternalID, target)
			return nil
		case errors.Is(err, interfaces.ErrOrderNotFound):
			// Fall through to the payment-id index.
		default:
			return err
		}
	}

	if strings.TrimSpace(evt.PaymentID) == "" {
		log.Printf("[checkout][webhook] event without correlation ids dropped name=%s", eventName)
		return nil
	}
	u.markOrderByPaymentID(ctx, evt.PaymentID, target, evt.TransactionID)
	return nil
}

func (u *CheckoutUseCase) markOrderByPaymentID(ctx context.Context, paymentID string, target entities.OrderStatus, transactionID string) {
	order, err := u.orders.GetByPaymentID(ctx, paymentID)
	if err != nil {
		log.Printf("[checkout][usecase] order lookup failed payment_id=%s err=%v", paymentID, err)
		return
	}
	if order.OrderID == "" {
		log.Printf("[checkout][usecase] no order for payment_id=%s", paymentID)
		return
	}

	updated, err := u.orders.UpdateStatus(ctx, order.OrderID, target, transactionID)
	switch {
	case err == nil:
		log.Printf("[checkout][usecase] order %s -> %s payment_id=%s", order.OrderID, target, paymentID)
		if target == entities.OrderStatusPaid && order.Status == entities.OrderStatusExpired {
			log.Printf("[checkout][usecase] late confirmation for expired order order_id=%s, flagging for reconciliation", updated.OrderID)
		}
	case errors.Is(err, interfaces.ErrOrderTransitionNotAllowed):
		// Already in the target (or a later) state: polling and webhook
		// raced, the first writer won.
	default:
		log.Printf("[checkout][usecase] order update failed order_id=%s target=%s err=%v", order.OrderID, target, err)
	}
}

func (u *CheckoutUseCase) logConfirmation(order entities.Order, target entities.OrderStatus, evt entities.WebhookEvent) {
	log.Printf("[checkout][webhook] order %s -> %s transaction_id=%s amount=%.2f payer=%q",
		order.OrderID, target, evt.TransactionID, evt.Amount, evt.PayerName)
}

// roundToCents applies round-half-up to 2 decimal places, exactly once per
// checkout attempt.
func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func newOrderID() string {
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func toOrderItems(in []OrderItemInput) []entities.OrderItem {
	items := make([]entities.OrderItem, 0, len(in))
	for _, it := range in {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		items = append(items, entities.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  qty,
			UnitPrice: it.UnitPrice,
		})
	}
	return items
}
