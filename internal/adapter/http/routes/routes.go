package routes

import (
	"log"
	"strconv"

	_ "calistar_backend/docs" // swag-generated documentation
	"calistar_backend/internal/adapter/http/handlers"
	"calistar_backend/internal/adapter/persistence/repository"
	"calistar_backend/internal/config"
	"calistar_backend/internal/infrastructure/database"
	"calistar_backend/internal/infrastructure/payments"
	"calistar_backend/internal/infrastructure/tryon"
	"calistar_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run wires the whole service together and starts the server.
func Run(cfg config.Config) {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB(cfg)
	orderRepo := repository.NewOrderDynamoRepository(ddb)

	pixGateway, err := payments.NewPagouGateway(cfg.PagouBaseURL, cfg.PagouSecretKey)
	if err != nil {
		log.Fatalf("Pagou gateway not configured: %v", err)
	}
	tryonClient, err := tryon.NewFitRoomClient(cfg.FitRoomBaseURL, cfg.FitRoomAPIKey)
	if err != nil {
		log.Fatalf("FitRoom client not configured: %v", err)
	}

	checkoutUseCase := usecase.NewCheckoutUseCase(orderRepo, pixGateway, usecase.CheckoutSettings{
		MinOrderAmount:       cfg.MinOrderAmount,
		FreeShippingMinimum:  cfg.FreeShippingMinimum,
		PixExpirationSeconds: cfg.PixExpirationSeconds,
		NotificationURL:      cfg.WebhookNotificationURL,
	})
	tryonUseCase := usecase.NewTryOnUseCase(tryonClient, cfg.TryOnPollInterval, cfg.TryOnMaxPollAttempts)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	tryonHandler := handlers.NewTryOnHandler(tryonUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, checkoutHandler, tryonHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
