package main

import (
	"go.uber.org/zap"

	"MiniShop/internal/gateway"
	"MiniShop/pkg/kit"
)

func main() {
	service := "gateway"
	envErr := kit.LoadDotEnv()
	cfg, cfgErr := kit.LoadConfig("5000")

	log := kit.NewLogger(service, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	if envErr != nil {
		log.Warn("load .env failed", zap.Error(envErr))
	}
	if cfgErr != nil {
		log.Fatal("invalid config", zap.Error(cfgErr))
	}

	deps := gateway.Deps{
		ProductURL: kit.Getenv("PRODUCT_URL", "http://localhost:5001"),
		CartURL:    kit.Getenv("CART_URL", "http://localhost:5002"),
		PaymentURL: kit.Getenv("PAYMENT_URL", "http://localhost:5003"),
	}

	h, err := gateway.NewHandler(deps, cfg.HTTPDeps(service, log, kit.NewRegistry()))
	if err != nil {
		log.Fatal("init gateway handler failed", zap.Error(err))
	}

	if err := kit.RunHTTPServer(":"+cfg.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
