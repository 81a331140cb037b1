package routes

import (
	"net/http"

	"calistar_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
	PathTryOn    = "/tryon"
)

func addStorefrontRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, tryonHandler *handlers.TryOnHandler) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("/pix", checkoutHandler.CreatePixPayment)
		checkout.GET("/pix/:id", checkoutHandler.GetPaymentStatus)
		// The gateway calls this one; it must always answer 200.
		checkout.POST("/webhook", checkoutHandler.HandleWebhook)
	}

	rg.POST(PathTryOn, tryonHandler.CreateTryOn)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
