// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package state

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const healthCheckTimeout = 2 * time.Second

// PingFunc probes a storage backend.
type PingFunc func(ctx context.Context) error

// HealthChecker provides document storage health check functionality
type HealthChecker struct {
	name string
	ping PingFunc
}

// NewHealthChecker creates a health checker for an arbitrary backend.
func NewHealthChecker(name string, ping PingFunc) *HealthChecker {
	return &HealthChecker{name: name, ping: ping}
}

// NewRedisHealthChecker creates a health checker that pings Redis.
func NewRedisHealthChecker(client redis.UniversalClient) *HealthChecker {
	return NewHealthChecker("redis", func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
}

// Name returns the backend name.
func (h *HealthChecker) Name() string {
	return h.name
}

// Check performs a health check
func (h *HealthChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		logrus.Errorf("%s health check failed: %v", h.name, err)
		return err
	}

	logrus.Debugf("%s health check passed", h.name)
	return nil
}

// IsHealthy returns true if the backend is accessible
func (h *HealthChecker) IsHealthy(ctx context.Context) bool {
	return h.Check(ctx) == nil
}

// Watch checks the backend every interval and calls onChange whenever the
// health status flips, and once for the initial status. It blocks until
// ctx is cancelled.
func (h *HealthChecker) Watch(ctx context.Context, interval time.Duration, onChange func(healthy bool)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	healthy := h.IsHealthy(ctx)
	onChange(healthy)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			current := h.IsHealthy(ctx)
			if current != healthy {
				logrus.Infof("%s health changed: healthy=%v", h.name, current)
				healthy = current
				onChange(healthy)
			}
		}
	}
}
