package pipeline

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AccelByte/extend-santa-skill/pkg/intent"
)

// Config represents the complete skill configuration. Handler order is
// dispatch order: the first enabled handler whose predicate matches wins.
type Config struct {
	Handlers []intent.HandlerConfig `yaml:"handlers"`
}

// LoadConfig loads skill configuration from a YAML file.
// Supports environment variable expansion in the form ${VAR_NAME} or ${VAR_NAME:default}.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return ParseConfig(data)
}

// ParseConfig parses and validates skill configuration from YAML bytes.
func ParseConfig(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration for common errors.
func (c *Config) Validate() error {
	if len(c.Handlers) == 0 {
		return fmt.Errorf("no handlers configured")
	}

	ids := make(map[string]bool)
	for _, h := range c.Handlers {
		if h.ID == "" {
			return fmt.Errorf("handler with empty ID found")
		}
		if ids[h.ID] {
			return fmt.Errorf("duplicate handler ID: %s", h.ID)
		}
		ids[h.ID] = true

		if h.Type == "" {
			return fmt.Errorf("handler %s has empty type", h.ID)
		}
	}

	return nil
}

// EnabledHandlers returns the configs of the enabled handlers, in order.
func (c *Config) EnabledHandlers() []intent.HandlerConfig {
	var enabled []intent.HandlerConfig
	for _, h := range c.Handlers {
		if h.Enabled {
			enabled = append(enabled, h)
		}
	}
	return enabled
}

// expandEnvVars expands environment variables in the format ${VAR} or ${VAR:default}.
func expandEnvVars(s string) string {
	return os.Expand(s, func(key string) string {
		// Support ${VAR:default} syntax
		parts := strings.SplitN(key, ":", 2)
		varName := parts[0]
		defaultValue := ""
		if len(parts) == 2 {
			defaultValue = parts[1]
		}

		value := os.Getenv(varName)
		if value == "" {
			return defaultValue
		}
		return value
	})
}
