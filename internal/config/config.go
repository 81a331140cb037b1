package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config is built once at startup from the environment (main loads .env via
// godotenv first), validated, and injected into the wiring. Request paths
// never read the environment themselves.

type Config struct {
	Env  string
	Port int

	PagouBaseURL   string
	PagouSecretKey string
	// WebhookNotificationURL is handed to the gateway so completion events
	// come back to POST /v1/checkout/webhook. Optional: without it the
	// polling path still confirms payments.
	WebhookNotificationURL string

	FitRoomBaseURL string
	FitRoomAPIKey  string

	// Business constants, configurable per deployment.
	MinOrderAmount       float64
	FreeShippingMinimum  float64
	PixExpirationSeconds int

	TryOnPollInterval    time.Duration
	TryOnMaxPollAttempts int

	OrdersTable      string
	AWSRegion        string
	DynamoDBEndpoint string
}

const (
	pagouProductionURL = "https://api.pagou.com.br"
	pagouSandboxURL    = "https://sandbox.api.pagou.com.br"
)

func Default() Config {
	return Config{
		Env:                  "dev",
		Port:                 8080,
		PagouBaseURL:         pagouSandboxURL,
		FitRoomBaseURL:       "https://platform.fitroom.app",
		MinOrderAmount:       5.00,
		FreeShippingMinimum:  250.00,
		PixExpirationSeconds: 3600,
		TryOnPollInterval:    2 * time.Second,
		TryOnMaxPollAttempts: 60,
		OrdersTable:          "orders",
		AWSRegion:            "us-east-1",
	}
}

// FromEnv layers environment variables over the defaults.
func FromEnv() Config {
	c := Default()

	if v := os.Getenv("APP_ENV"); v != "" {
		c.Env = v
	}
	if c.Env == "production" {
		c.PagouBaseURL = pagouProductionURL
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Port = p
		}
	}
	if v := os.Getenv("PAGOU_BASE_URL"); v != "" {
		c.PagouBaseURL = v
	}
	c.PagouSecretKey = os.Getenv("PAGOU_SECRET_KEY")
	if v := os.Getenv("CHECKOUT_WEBHOOK_URL"); v != "" {
		c.WebhookNotificationURL = v
	}
	if v := os.Getenv("FITROOM_BASE_URL"); v != "" {
		c.FitRoomBaseURL = v
	}
	c.FitRoomAPIKey = os.Getenv("FITROOM_API_KEY")
	if v := os.Getenv("MIN_ORDER_AMOUNT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.MinOrderAmount = f
		}
	}
	if v := os.Getenv("FREE_SHIPPING_MINIMUM"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.FreeShippingMinimum = f
		}
	}
	if v := os.Getenv("PIX_EXPIRATION_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.PixExpirationSeconds = n
		}
	}
	if v := os.Getenv("TRYON_POLL_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.TryOnPollInterval = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("TRYON_MAX_POLL_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.TryOnMaxPollAttempts = n
		}
	}
	if v := os.Getenv("ORDERS_TABLE"); v != "" {
		c.OrdersTable = v
	}
	if v := os.Getenv("AWS_REGION"); v != "" {
		c.AWSRegion = v
	}
	if v := os.Getenv("DYNAMODB_ENDPOINT"); v != "" {
		c.DynamoDBEndpoint = v
	}

	return c
}

func (c Config) Validate() error {
	if c.PagouSecretKey == "" {
		return errors.New("PAGOU_SECRET_KEY is required")
	}
	if c.FitRoomAPIKey == "" {
		return errors.New("FITROOM_API_KEY is required")
	}
	if c.MinOrderAmount <= 0 {
		return errors.New("MIN_ORDER_AMOUNT must be positive")
	}
	if c.PixExpirationSeconds <= 0 {
		return errors.New("PIX_EXPIRATION_SECONDS must be positive")
	}
	if c.TryOnMaxPollAttempts <= 0 || c.TryOnPollInterval <= 0 {
		return errors.New("try-on polling bounds must be positive")
	}
	return nil
}
