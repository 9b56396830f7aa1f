package usecases

import (
	"context"

	"github.com/krispingal/runservices/internal/domain"
	"github.com/krispingal/runservices/internal/infrastructure"
	"github.com/krispingal/runservices/internal/interfaces/httphandler"
	"go.uber.org/zap"
)

// NewServiceServer wires the router for svc into an HTTP server bound to the
// configured port.
func NewServiceServer(svc domain.Service, config *infrastructure.Config, logger *zap.Logger) (*infrastructure.HTTPServer, error) {
	router, err := httphandler.NewServiceRouter(svc, logger)
	if err != nil {
		return nil, err
	}
	return infrastructure.NewHTTPServer(config, router, logger), nil
}

// RunService serves svc until ctx is cancelled.
func RunService(ctx context.Context, svc domain.Service, config *infrastructure.Config, logger *zap.Logger) error {
	server, err := NewServiceServer(svc, config, logger)
	if err != nil {
		return err
	}
	logger.Info("Starting service", zap.String("route", svc.Route), zap.String("address", server.Addr()))
	return server.Run(ctx)
}
