package request

import (
	"strings"

	"calistar_backend/internal/usecase"
)

type CheckoutItemRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type CheckoutCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone"`
	// Document is the canonical field; TaxID is kept for storefront builds
	// that still send the old key.
	Document string `json:"document"`
	TaxID    string `json:"taxId"`
}

func (c CheckoutCustomerRequest) ResolveDocument() string {
	if v := strings.TrimSpace(c.Document); v != "" {
		return v
	}
	return strings.TrimSpace(c.TaxID)
}

// CheckoutCreateRequest is the storefront payload for opening a PIX charge.
type CheckoutCreateRequest struct {
	Amount   float64                 `json:"amount" binding:"required"`
	Items    []CheckoutItemRequest   `json:"items"`
	Customer CheckoutCustomerRequest `json:"customer" binding:"required"`
}

func (r CheckoutCreateRequest) ToCommand() usecase.CreatePixCommand {
	items := make([]usecase.OrderItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return usecase.CreatePixCommand{
		Amount: r.Amount,
		Items:  items,
		Customer: usecase.CustomerInput{
			Name:     r.Customer.Name,
			Email:    r.Customer.Email,
			Phone:    r.Customer.Phone,
			Document: r.Customer.ResolveDocument(),
		},
	}
}
