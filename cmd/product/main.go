package main

import (
	"go.uber.org/zap"

	"MiniShop/internal/product"
	"MiniShop/pkg/kit"
)

func main() {
	service := "product"
	envErr := kit.LoadDotEnv()
	cfg, cfgErr := kit.LoadConfig("5001")

	log := kit.NewLogger(service, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	if envErr != nil {
		log.Warn("load .env failed", zap.Error(envErr))
	}
	if cfgErr != nil {
		log.Fatal("invalid config", zap.Error(cfgErr))
	}

	s := &product.Server{Store: product.NewStore(), Log: log}
	h := product.NewHandler(s, cfg.HTTPDeps(service, log, kit.NewRegistry()))

	if err := kit.RunHTTPServer(":"+cfg.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
