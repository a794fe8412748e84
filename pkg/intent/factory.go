package intent

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// HandlerFactory is a function that creates a handler from a configuration.
type HandlerFactory func(config HandlerConfig) (Handler, error)

// factories stores registered handler factories by type
var factories = make(map[string]HandlerFactory)

// RegisterHandlerType registers a factory function for a handler type.
// This allows external packages to register their handler types without creating import cycles.
func RegisterHandlerType(handlerType string, factory HandlerFactory) {
	factories[handlerType] = factory
	logrus.Debugf("registered handler type: %s", handlerType)
}

// IsRegisteredType reports whether a factory exists for handlerType.
func IsRegisteredType(handlerType string) bool {
	_, ok := factories[handlerType]
	return ok
}

// CreateHandler creates a handler instance based on the configuration.
// Returns an error if the handler type is unknown.
func CreateHandler(config HandlerConfig) (Handler, error) {
	if !config.Enabled {
		logrus.Infof("skipping disabled handler: %s", config.ID)
		return nil, nil
	}

	logrus.Debugf("creating handler: id=%s, type=%s", config.ID, config.Type)

	factory, exists := factories[config.Type]
	if !exists {
		return nil, fmt.Errorf("unknown handler type: %s", config.Type)
	}

	return factory(config)
}

// CreateHandlers creates multiple handler instances, keeping config order.
// Returns all successfully created handlers and any errors encountered.
func CreateHandlers(configs []HandlerConfig) ([]Handler, []error) {
	var handlers []Handler
	var errors []error

	for _, config := range configs {
		h, err := CreateHandler(config)
		if err != nil {
			errors = append(errors, fmt.Errorf("failed to create handler %s: %w", config.ID, err))
			continue
		}

		if h != nil {
			handlers = append(handlers, h)
		}
	}

	return handlers, errors
}

// RegisterHandlers creates the configured handlers and registers them in
// order. Creation errors are logged and the faulty handler skipped.
func RegisterHandlers(registry *Registry, configs []HandlerConfig) error {
	handlers, errors := CreateHandlers(configs)

	if len(errors) > 0 {
		logrus.Warnf("encountered %d errors while creating handlers", len(errors))
		for _, err := range errors {
			logrus.Warnf("handler creation error: %v", err)
		}
	}

	for _, h := range handlers {
		if err := registry.Register(h); err != nil {
			return fmt.Errorf("failed to register handler %s: %w", h.ID(), err)
		}
	}

	logrus.Infof("registered %d handlers", len(handlers))
	return nil
}
