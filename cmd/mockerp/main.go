package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/spec-kit/erp-admin-client/internal/config"
	"github.com/spec-kit/erp-admin-client/internal/mockerp"
	"github.com/spec-kit/erp-admin-client/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	server, err := mockerp.New(cfg.Mock, logger)
	if err != nil {
		logger.Fatal("failed to build mock server", zap.Error(err))
	}

	go func() {
		if err := server.Listen(cfg.Mock.Addr()); err != nil {
			logger.Fatal("mock server listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = server.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
