package handlers

import (
	"errors"
	"net/http"

	request "calistar_backend/internal/adapter/http/dto/request"
	response "calistar_backend/internal/adapter/http/dto/response"
	"calistar_backend/internal/infrastructure/tryon"
	"calistar_backend/internal/usecase"
	"calistar_backend/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTryOnPayload = pkg.NewDomainErrorSimple("INVALID_TRYON_INPUT", "Invalid try-on payload", http.StatusBadRequest)

// TryOnHandler handles virtual try-on requests.

type TryOnHandler struct {
	usecase usecase.ITryOnUseCase
}

func NewTryOnHandler(uc usecase.ITryOnUseCase) *TryOnHandler {
	return &TryOnHandler{usecase: uc}
}

// CreateTryOn godoc
// @Summary      Run a virtual try-on
// @Description  Composes the customer's photo with one or more garments, sequentially
// @Tags         tryon
// @Accept       json
// @Produce      json
// @Param        payload body request.TryOnCreateRequest true "Try-on payload"
// @Success      200 {object} response.TryOnResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      402 {object} pkg.HTTPError
// @Failure      429 {object} pkg.HTTPError
// @Failure      502 {object} pkg.HTTPError
// @Failure      504 {object} pkg.HTTPError
// @Router       /v1/tryon [post]
func (h *TryOnHandler) CreateTryOn(c *gin.Context) {
	var payload request.TryOnCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTryOnPayload.HTTPStatus, errInvalidTryOnPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Submit(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapTryOnError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTryOnResult(result))
}

func mapTryOnError(err error) *pkg.AppError {
	var timeout *usecase.TaskTimeoutError
	var processing *usecase.GarmentProcessingError

	switch {
	case errors.Is(err, usecase.ErrMissingTryOnInput):
		return pkg.NewDomainErrorSimple("INVALID_TRYON_INPUT", "User photo and at least one garment are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidImageData):
		return pkg.NewDomainErrorSimple("INVALID_IMAGE_DATA", "User photo is not valid base64 image data", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidGarmentSet):
		return pkg.NewDomainErrorSimple("INVALID_GARMENT_SET", "A full_set garment must be tried on alone", http.StatusBadRequest)
	case errors.Is(err, tryon.ErrInsufficientCredits):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_CREDITS", "Try-on provider credits exhausted", http.StatusPaymentRequired)
	case errors.Is(err, tryon.ErrRateLimited):
		return pkg.NewDomainErrorSimple("RATE_LIMITED", "Try-on provider rate limit reached, try again shortly", http.StatusTooManyRequests)
	case errors.As(err, &timeout):
		return pkg.NewDomainError("TRYON_TIMEOUT", "Try-on task did not finish in time", err, http.StatusGatewayTimeout)
	case errors.As(err, &processing):
		return pkg.NewDomainError("TRYON_FAILED", "Try-on processing failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
