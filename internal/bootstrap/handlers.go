// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-santa-skill/pkg/intent"
	"github.com/AccelByte/extend-santa-skill/pkg/intent/builtin"
	"github.com/AccelByte/extend-santa-skill/pkg/pipeline"
)

// InitHandlers registers the builtin handler types and creates the
// configured handlers in dispatch order.
//
// To add a new handler:
// 1. Create it in pkg/intent/builtin/ and implement intent.Handler
// 2. Register its type in pkg/intent/builtin/init.go
// 3. Add it to config/skill.yaml at the position it should be matched
func InitHandlers(skillConfig *pipeline.Config, deps *builtin.Dependencies) (*intent.Registry, error) {
	builtin.RegisterHandlers(deps)

	registry := intent.NewRegistry()
	if err := intent.RegisterHandlers(registry, skillConfig.Handlers); err != nil {
		return nil, fmt.Errorf("failed to register handlers: %w", err)
	}

	if err := pipeline.ValidateWiring(registry, skillConfig); err != nil {
		return nil, err
	}
	logrus.Info("skill wiring validation passed")

	return registry, nil
}

// InitManager creates the turn manager.
func InitManager(registry *intent.Registry, loc *time.Location) *pipeline.Manager {
	manager := pipeline.NewManager(registry, loc, time.Now, nil)
	logrus.Infof("initialized turn manager with %d handlers (timezone %s)", registry.Count(), loc)
	return manager
}
