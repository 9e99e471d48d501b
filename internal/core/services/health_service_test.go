package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ARLocke322/Payment-Router/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHealthService_Check(t *testing.T) {
	tests := []struct {
		name     string
		pingErr  error
		status   string
		database string
	}{
		{"store reachable", nil, "healthy", "connected"},
		{"store unreachable", errors.New("dial tcp: connection refused"), "unhealthy", "disconnected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := new(MockHealthChecker)
			checker.On("Ping", mock.Anything).Return(tt.pingErr).Once()

			got := services.NewHealthService(checker, "1.2.3").Check(context.Background())

			assert.Equal(t, tt.status, got.Status)
			assert.Equal(t, tt.database, got.Database)
			assert.Equal(t, "1.2.3", got.Version)
			checker.AssertExpectations(t)
		})
	}
}

func TestHealthService_NoChecker(t *testing.T) {
	got := services.NewHealthService(nil, "dev").Check(context.Background())
	assert.Equal(t, "healthy", got.Status)
}
