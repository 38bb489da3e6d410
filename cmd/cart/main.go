package main

import (
	"go.uber.org/zap"

	"MiniShop/internal/cart"
	"MiniShop/pkg/kit"
)

func main() {
	service := "cart"
	envErr := kit.LoadDotEnv()
	cfg, cfgErr := kit.LoadConfig("5002")

	log := kit.NewLogger(service, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	if envErr != nil {
		log.Warn("load .env failed", zap.Error(envErr))
	}
	if cfgErr != nil {
		log.Fatal("invalid config", zap.Error(cfgErr))
	}

	s := &cart.Server{Store: cart.NewStore(), Log: log}
	h := cart.NewHandler(s, cfg.HTTPDeps(service, log, kit.NewRegistry()))

	if err := kit.RunHTTPServer(":"+cfg.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
