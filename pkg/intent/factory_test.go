package intent

import (
	"testing"
)

func init() {
	RegisterHandlerType("test_echo", func(config HandlerConfig) (Handler, error) {
		return &mockHandler{id: config.ID, matches: true, config: config}, nil
	})
}

func TestCreateHandler(t *testing.T) {
	h, err := CreateHandler(HandlerConfig{ID: "echo", Type: "test_echo", Enabled: true})
	if err != nil {
		t.Fatalf("CreateHandler() error = %v", err)
	}
	if h == nil || h.ID() != "echo" {
		t.Errorf("CreateHandler() = %v, expected echo", h)
	}
}

func TestCreateHandler_Disabled(t *testing.T) {
	h, err := CreateHandler(HandlerConfig{ID: "echo", Type: "test_echo", Enabled: false})
	if err != nil {
		t.Fatalf("CreateHandler() error = %v", err)
	}
	if h != nil {
		t.Errorf("CreateHandler() = %v, expected nil for disabled handler", h)
	}
}

func TestCreateHandler_UnknownType(t *testing.T) {
	if _, err := CreateHandler(HandlerConfig{ID: "x", Type: "does_not_exist", Enabled: true}); err == nil {
		t.Error("expected error for unknown handler type")
	}
}

func TestRegisterHandlers_KeepsConfigOrder(t *testing.T) {
	registry := NewRegistry()
	configs := []HandlerConfig{
		{ID: "first", Type: "test_echo", Enabled: true},
		{ID: "broken", Type: "does_not_exist", Enabled: true},
		{ID: "off", Type: "test_echo", Enabled: false},
		{ID: "second", Type: "test_echo", Enabled: true},
	}

	if err := RegisterHandlers(registry, configs); err != nil {
		t.Fatalf("RegisterHandlers() error = %v", err)
	}

	all := registry.GetAll()
	if len(all) != 2 {
		t.Fatalf("registered %d handlers, expected 2", len(all))
	}
	if all[0].ID() != "first" || all[1].ID() != "second" {
		t.Errorf("order = %s, %s; expected first, second", all[0].ID(), all[1].ID())
	}
	if !IsRegisteredType("test_echo") || IsRegisteredType("does_not_exist") {
		t.Error("IsRegisteredType() reported wrong registrations")
	}
}

func TestHandlerConfig_Getters(t *testing.T) {
	config := HandlerConfig{Parameters: map[string]interface{}{
		"count":   3,
		"label":   "hi",
		"enabled": true,
	}}

	if got := config.GetInt("count", 1); got != 3 {
		t.Errorf("GetInt() = %d, expected 3", got)
	}
	if got := config.GetInt("missing", 1); got != 1 {
		t.Errorf("GetInt() = %d, expected default 1", got)
	}
	if got := config.GetString("label", ""); got != "hi" {
		t.Errorf("GetString() = %s, expected hi", got)
	}
	if got := config.GetBool("enabled", false); !got {
		t.Error("GetBool() = false, expected true")
	}
	if got := config.GetString("count", "default"); got != "default" {
		t.Errorf("GetString() on int = %s, expected default", got)
	}
}
