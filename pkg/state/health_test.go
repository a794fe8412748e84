// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package state

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"go.uber.org/goleak"
)

// setupTestRedis creates a miniredis instance for testing
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return client, mr
}

func TestRedisHealthChecker(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer client.Close()

	checker := NewRedisHealthChecker(client)
	if checker.Name() != "redis" {
		t.Errorf("Name() = %s, expected redis", checker.Name())
	}

	if !checker.IsHealthy(context.Background()) {
		t.Error("IsHealthy() = false with miniredis running")
	}

	mr.Close()

	if checker.IsHealthy(context.Background()) {
		t.Error("IsHealthy() = true after miniredis closed")
	}
}

func TestHealthChecker_Watch(t *testing.T) {
	defer goleak.VerifyNone(t)

	var mu sync.Mutex
	failing := false
	checker := NewHealthChecker("fake", func(ctx context.Context) error {
		mu.Lock()
		defer mu.Unlock()
		if failing {
			return errors.New("down")
		}
		return nil
	})

	changes := make(chan bool, 8)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		checker.Watch(ctx, 5*time.Millisecond, func(healthy bool) { changes <- healthy })
		close(done)
	}()

	if got := <-changes; !got {
		t.Fatalf("initial status = %v, expected true", got)
	}

	mu.Lock()
	failing = true
	mu.Unlock()

	select {
	case got := <-changes:
		if got {
			t.Errorf("status after failure = %v, expected false", got)
		}
	case <-time.After(time.Second):
		t.Fatal("Watch() did not report the failure")
	}

	cancel()
	<-done
}
