package service

import (
	"context"

	"github.com/holdview/Holdings-View-Backend/internal/upstream"
	"github.com/holdview/Holdings-View-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	positions *upstream.PositionsClient
	data      *upstream.DataClient
}

// NewSystemService creates a new SystemService
func NewSystemService(positions *upstream.PositionsClient, data *upstream.DataClient) *SystemService {
	return &SystemService{
		positions: positions,
		data:      data,
	}
}

// HealthStatus reports the reachability of the two upstream services.
type HealthStatus struct {
	PositionsErr error
	DataErr      error
}

// Healthy reports whether both upstream services answered.
func (h HealthStatus) Healthy() bool {
	return h.PositionsErr == nil && h.DataErr == nil
}

// CheckHealth pings both upstream services.
func (s *SystemService) CheckHealth(ctx context.Context) HealthStatus {
	return HealthStatus{
		PositionsErr: s.positions.Ping(ctx),
		DataErr:      s.data.Ping(ctx),
	}
}

// CheckVersion returns the application version.
func (s *SystemService) CheckVersion() string {
	return version.Version
}
