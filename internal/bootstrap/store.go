// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-santa-skill/internal/config"
	"github.com/AccelByte/extend-santa-skill/pkg/service"
	"github.com/AccelByte/extend-santa-skill/pkg/state"
)

// InitDocumentStore creates the configured document store backend and a
// health checker for it. redisClient is only used by the redis backend.
func InitDocumentStore(ctx context.Context, cfg *config.Config, redisClient redis.UniversalClient) (service.DocumentStore, *state.HealthChecker, error) {
	switch cfg.StoreBackend {
	case config.StoreBackendS3:
		client, err := service.NewS3Client(ctx, service.S3ClientConfig{
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			return nil, nil, err
		}

		store := service.NewS3DocumentStore(client, service.S3DocumentStoreConfig{
			Bucket: cfg.S3Bucket,
			Prefix: cfg.S3Prefix,
		})
		logrus.Infof("using S3 document store (bucket %s)", cfg.S3Bucket)
		return store, state.NewHealthChecker("s3", store.Ping), nil

	case config.StoreBackendRedis:
		if redisClient == nil {
			return nil, nil, fmt.Errorf("redis backend selected without a redis client")
		}
		store := service.NewRedisDocumentStore(redisClient, service.RedisDocumentStoreConfig{
			TTL: cfg.DocumentTTL(),
		})
		logrus.Infof("using Redis document store (ttl %s)", cfg.DocumentTTL())
		return store, state.NewRedisHealthChecker(redisClient), nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend: %s", cfg.StoreBackend)
	}
}
