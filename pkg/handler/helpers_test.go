package handler

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"

	"github.com/AccelByte/extend-santa-skill/pkg/common"
	"github.com/AccelByte/extend-santa-skill/pkg/content"
	"github.com/AccelByte/extend-santa-skill/pkg/intent"
	"github.com/AccelByte/extend-santa-skill/pkg/intent/builtin"
	"github.com/AccelByte/extend-santa-skill/pkg/pipeline"
	"github.com/AccelByte/extend-santa-skill/pkg/service"
)

// setupTestManager creates a complete skill with a Redis backend, wired
// from the shipped handler configuration.
func setupTestManager(t *testing.T, mr *miniredis.Miniredis, now time.Time) *pipeline.Manager {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	catalog, err := content.LoadDefault()
	if err != nil {
		t.Fatalf("failed to load content: %v", err)
	}

	store := service.NewStore(service.NewRedisDocumentStore(client, service.RedisDocumentStoreConfig{}))
	builtin.RegisterHandlers(builtin.NewDependencies(store, catalog, common.NewRandom(1)))

	config, err := pipeline.LoadConfig("../../config/skill.yaml")
	if err != nil {
		t.Fatalf("failed to load skill config: %v", err)
	}

	registry := intent.NewRegistry()
	if err := intent.RegisterHandlers(registry, config.Handlers); err != nil {
		t.Fatalf("failed to register handlers: %v", err)
	}
	if err := pipeline.ValidateWiring(registry, config); err != nil {
		t.Fatalf("wiring invalid: %v", err)
	}

	return pipeline.NewManager(registry, time.UTC, func() time.Time { return now }, nil)
}
