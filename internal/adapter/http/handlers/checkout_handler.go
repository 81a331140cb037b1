package handlers

import (
	"errors"
	"log"
	"net/http"

	request "calistar_backend/internal/adapter/http/dto/request"
	response "calistar_backend/internal/adapter/http/dto/response"
	"calistar_backend/internal/infrastructure/payments"
	"calistar_backend/internal/usecase"
	"calistar_backend/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)

// CheckoutHandler handles the PIX checkout endpoints: charge creation, status
// polling and the gateway webhook.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreatePixPayment godoc
// @Summary      Create a PIX charge
// @Description  Opens a PIX charge at the payment gateway and persists the order
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        payload body request.CheckoutCreateRequest true "Checkout payload"
// @Success      201 {object} response.CheckoutCreateResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Failure      502 {object} pkg.HTTPError
// @Router       /v1/checkout/pix [post]
func (h *CheckoutHandler) CreatePixPayment(c *gin.Context) {
	var payload request.CheckoutCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	intent, err := h.usecase.CreatePixPayment(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPaymentIntent(intent))
}

// GetPaymentStatus godoc
// @Summary      Poll a PIX charge status
// @Tags         checkout
// @Produce      json
// @Param        id path string true "Gateway payment id"
// @Success      200 {object} response.PaymentStatusResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      502 {object} pkg.HTTPError
// @Router       /v1/checkout/pix/{id} [get]
func (h *CheckoutHandler) GetPaymentStatus(c *gin.Context) {
	info, err := h.usecase.GetPaymentStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentStatus(info))
}

// HandleWebhook godoc
// @Summary      Payment gateway webhook
// @Description  Consumes payment confirmation events. Always acks with 200.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Success      200 {object} response.WebhookAckResponse
// @Router       /v1/checkout/webhook [post]
func (h *CheckoutHandler) HandleWebhook(c *gin.Context) {
	// The gateway retries anything that is not a 200, so every path below
	// acks. Failures are logged, never surfaced.
	var payload request.WebhookEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[checkout][handler] malformed webhook payload ignored err=%v", err)
		c.JSON(http.StatusOK, response.WebhookAckResponse{Received: true})
		return
	}

	if err := h.usecase.ProcessWebhookEvent(c.Request.Context(), payload.ToEntity()); err != nil {
		log.Printf("[checkout][handler] webhook processing failed event=%s err=%v", payload.EventName, err)
	}

	c.JSON(http.StatusOK, response.WebhookAckResponse{Received: true})
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Order amount below the allowed minimum", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingCustomerField):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER", "Customer name, email and document are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTaxID):
		return pkg.NewDomainErrorSimple("INVALID_CPF", "Invalid CPF", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_ID", "Invalid payment id", http.StatusBadRequest)
	case errors.Is(err, payments.ErrGatewayRejected):
		return pkg.NewDomainError("GATEWAY_REJECTED", "Payment gateway rejected the charge", err, http.StatusUnprocessableEntity)
	case errors.Is(err, payments.ErrGatewayUnavailable), errors.Is(err, payments.ErrMalformedGatewayResponse):
		return pkg.NewDomainError("GATEWAY_UNAVAILABLE", "Payment gateway unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
