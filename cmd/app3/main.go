package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/krispingal/runservices/internal/domain"
	"github.com/krispingal/runservices/internal/infrastructure"
	"github.com/krispingal/runservices/internal/usecases"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run owns every deferred cleanup; main only turns its error into an exit code.
func run() error {
	config, err := infrastructure.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return err
	}
	logger, err := infrastructure.NewLogger(config.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		return err
	}
	defer logger.Sync()
	logger = logger.With(zap.String("service", domain.App3.Name))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := usecases.RunService(ctx, domain.App3, config, logger); err != nil {
		logger.Error("Service failed", zap.Error(err))
		return err
	}
	return nil
}
