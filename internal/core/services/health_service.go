package services

import (
	"context"
	"log/slog"
	"time"

	portsrepo "github.com/ARLocke322/Payment-Router/internal/core/ports/repositories"
	portssvc "github.com/ARLocke322/Payment-Router/internal/core/ports/services"
)

const healthCheckTimeout = 2 * time.Second

type healthService struct {
	BaseService
	checker portsrepo.HealthChecker
	version string
}

// NewHealthService creates a readiness reporter for the given store.
func NewHealthService(checker portsrepo.HealthChecker, version string) portssvc.HealthSvc {
	return &healthService{checker: checker, version: version}
}

func (s *healthService) Check(ctx context.Context) portssvc.HealthStatus {
	status := portssvc.HealthStatus{Status: "healthy", Database: "connected", Version: s.version}
	if s.checker == nil {
		return status
	}

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	if err := s.checker.Ping(ctx); err != nil {
		s.LogError(ctx, err, "Storage health check failed", slog.String("version", s.version))
		status.Status = "unhealthy"
		status.Database = "disconnected"
	}
	return status
}
