package imageprocessing

import (
	"testing"
)

func TestNewCommandRegistry(t *testing.T) {
	registry := NewCommandRegistry()
	if registry == nil {
		t.Fatal("Expected non-nil registry")
	}
	if registry.factories == nil {
		t.Fatal("Expected non-nil factories map")
	}
}

func TestCommandRegistry_Register(t *testing.T) {
	registry := NewCommandRegistry()
	factory := func(params map[string]any) (Command, error) {
		return newMockCommand("TestCommand"), nil
	}

	if err := registry.Register("TestCommand", factory); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	if err := registry.Register("TestCommand", factory); err == nil {
		t.Error("Expected error for duplicate registration")
	}

	if err := registry.Register("", factory); err == nil {
		t.Error("Expected error for empty name")
	}

	if err := registry.Register("NilFactory", nil); err == nil {
		t.Error("Expected error for nil factory")
	}
}

func TestCommandRegistry_Create(t *testing.T) {
	registry := NewCommandRegistry()
	if err := registry.Register("TestCommand", func(params map[string]any) (Command, error) {
		if err := validateRequiredParams(params, []string{"required_param"}); err != nil {
			return nil, err
		}
		return newMockCommand("TestCommand"), nil
	}); err != nil {
		t.Fatalf("Failed to register test command: %v", err)
	}

	command, err := registry.Create("TestCommand", map[string]any{"required_param": 1})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if command.Name() != "TestCommand" {
		t.Errorf("Expected name 'TestCommand', got '%s'", command.Name())
	}

	if _, err := registry.Create("TestCommand", map[string]any{}); err == nil {
		t.Error("Expected error for missing required parameter")
	}

	if _, err := registry.Create("UnknownCommand", map[string]any{}); err == nil {
		t.Error("Expected error for unknown command")
	}
}

func TestDefaultRegistry_IconCommandsRegistered(t *testing.T) {
	names := DefaultRegistry.GetRegisteredNames()
	expected := []string{"ForegroundCommand", "ScaleCommand"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %d registered commands, got %d (%v)", len(expected), len(names), names)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Expected command %d to be '%s', got '%s'", i, name, names[i])
		}
		if !DefaultRegistry.IsRegistered(name) {
			t.Errorf("Expected %s to be registered", name)
		}
	}
}

func TestGetIntParam(t *testing.T) {
	params := map[string]any{
		"key1": 123,
		"key2": int64(456),
		"key3": float64(789),
		"key4": "not-an-int",
	}

	tests := []struct {
		key      string
		expected int
	}{
		{"key1", 123},
		{"key2", 456},
		{"key3", 789},
		{"key4", 999},
		{"key5", 999},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if val := getIntParam(params, tt.key, 999); val != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, val)
			}
		})
	}
}

func TestGetStringParam(t *testing.T) {
	params := map[string]any{
		"key1": "value1",
		"key2": 123,
	}

	if val := getStringParam(params, "key1", "default"); val != "value1" {
		t.Errorf("Expected 'value1', got '%s'", val)
	}
	if val := getStringParam(params, "key2", "default"); val != "default" {
		t.Errorf("Expected 'default', got '%s'", val)
	}
	if val := getStringParam(params, "key3", "default"); val != "default" {
		t.Errorf("Expected 'default', got '%s'", val)
	}
}
