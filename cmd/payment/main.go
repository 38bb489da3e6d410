package main

import (
	"go.uber.org/zap"

	"MiniShop/internal/payment"
	"MiniShop/pkg/kit"
)

func main() {
	service := "payment"
	envErr := kit.LoadDotEnv()
	cfg, cfgErr := kit.LoadConfig("5003")

	log := kit.NewLogger(service, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	if envErr != nil {
		log.Warn("load .env failed", zap.Error(envErr))
	}
	if cfgErr != nil {
		log.Fatal("invalid config", zap.Error(cfgErr))
	}

	s := &payment.Server{Processor: payment.AcceptAll{}, Log: log}
	h := payment.NewHandler(s, cfg.HTTPDeps(service, log, kit.NewRegistry()))

	if err := kit.RunHTTPServer(":"+cfg.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
