package main

import (
	"log"

	_ "calistar_backend/docs"
	"calistar_backend/internal/adapter/http/routes"
	"calistar_backend/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Calistar Checkout API
// @version         1.0
// @description     PIX checkout and virtual try-on backend for the Calistar storefront.

// @contact.name   Calistar
// @contact.url    https://usecalistar.com.br

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	routes.Run(cfg)
}
