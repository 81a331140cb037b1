package entities

import "testing"

func TestPaymentStatusFromGateway_NumericCodes(t *testing.T) {
	cases := map[int]PaymentStatus{
		1: PaymentStatusPending,
		2: PaymentStatusActive,
		3: PaymentStatusCanceled,
		4: PaymentStatusCompleted,
		5: PaymentStatusRefunded,
	}
	for code, want := range cases {
		if got := PaymentStatusFromGateway(code, ""); got != want {
			t.Fatalf("code %d: got %s, want %s", code, got, want)
		}
	}

	// Codes outside the table are unknown, never an error.
	for _, code := range []int{6, 42, 999} {
		if got := PaymentStatusFromGateway(code, ""); got != PaymentStatusUnknown {
			t.Fatalf("code %d: got %s, want unknown", code, got)
		}
	}
}

func TestPaymentStatusFromGateway_StringNames(t *testing.T) {
	cases := map[string]PaymentStatus{
		"empty":     PaymentStatusPending,
		"pending":   PaymentStatusPending,
		"ACTIVE":    PaymentStatusActive,
		"Completed": PaymentStatusCompleted,
		"cancelled": PaymentStatusCanceled,
		"refunded":  PaymentStatusRefunded,
		"weird":     PaymentStatusUnknown,
		"":          PaymentStatusUnknown,
	}
	for name, want := range cases {
		if got := PaymentStatusFromGateway(0, name); got != want {
			t.Fatalf("name %q: got %s, want %s", name, got, want)
		}
	}
}

func TestPaymentStatusCodeRoundTrip(t *testing.T) {
	for code := 1; code <= 5; code++ {
		if got := PaymentStatusFromGateway(code, "").Code(); got != code {
			t.Fatalf("code %d round-tripped to %d", code, got)
		}
	}
	if PaymentStatusUnknown.Code() != 0 {
		t.Fatalf("unknown should map to code 0")
	}
}

func TestNormalizeWebhookEventName(t *testing.T) {
	cases := map[string]string{
		"payment.completed": WebhookEventPaymentCompleted,
		"qrcode.completed":  WebhookEventPaymentCompleted,
		"payment.refunded":  WebhookEventPaymentRefunded,
		"qrcode.refunded":   WebhookEventPaymentRefunded,
		"QRCODE.COMPLETED":  WebhookEventPaymentCompleted,
		"qrcode.created":    "qrcode.created",
	}
	for in, want := range cases {
		if got := NormalizeWebhookEventName(in); got != want {
			t.Fatalf("%q: got %q, want %q", in, got, want)
		}
	}
}

func TestSlotForCategory(t *testing.T) {
	cases := map[string]GarmentSlot{
		"tops":      SlotUpper,
		"calcinhas": SlotLower,
		"Calcinhas": SlotLower,
		"biquinis":  SlotFullSet,
		"maios":     SlotFullSet,
		"":          SlotFullSet,
	}
	for category, want := range cases {
		if got := SlotForCategory(category); got != want {
			t.Fatalf("category %q: got %s, want %s", category, got, want)
		}
	}
}

func TestOrderStatusAllowedPrevious(t *testing.T) {
	contains := func(list []OrderStatus, s OrderStatus) bool {
		for _, v := range list {
			if v == s {
				return true
			}
		}
		return false
	}

	paid := OrderStatusPaid.AllowedPreviousStatuses()
	if !contains(paid, OrderStatusPending) || !contains(paid, OrderStatusExpired) {
		t.Fatalf("paid must be reachable from pending and expired: %v", paid)
	}
	if contains(paid, OrderStatusPaid) {
		t.Fatalf("paid must not be re-enterable from paid")
	}

	refunded := OrderStatusRefunded.AllowedPreviousStatuses()
	if len(refunded) != 1 || refunded[0] != OrderStatusPaid {
		t.Fatalf("refunded only from paid: %v", refunded)
	}

	if got := OrderStatusPending.AllowedPreviousStatuses(); got != nil {
		t.Fatalf("pending is initial, no transitions into it: %v", got)
	}
}
