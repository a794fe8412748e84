package pipeline

import (
	"fmt"
	"strings"

	"github.com/AccelByte/extend-santa-skill/pkg/intent"
)

// ValidateWiring validates that the skill is correctly wired.
// It checks that:
// - Every enabled handler in config has a registered handler type
// - Every enabled handler in config has a registered instance
//
// This catches common mistakes like forgetting to register a handler type
// factory or a typo in a handler type.
func ValidateWiring(registry *intent.Registry, config *Config) error {
	var errors []string

	for _, hc := range config.Handlers {
		if !hc.Enabled {
			continue
		}

		if !intent.IsRegisteredType(hc.Type) {
			errors = append(errors, fmt.Sprintf("handler '%s' has unknown type '%s'", hc.ID, hc.Type))
			continue
		}

		if registry.Get(hc.ID) == nil {
			errors = append(errors, fmt.Sprintf("handler '%s' (type=%s) is enabled in config but not registered", hc.ID, hc.Type))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("skill wiring validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}
