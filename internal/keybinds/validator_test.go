package keybinds

import (
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      ValidationError
		expected string
	}{
		{
			name: "conflict error",
			err: ValidationError{
				Type:    "conflict",
				Context: ContextBrowser,
				Key:     "ctrl+c",
				Message: "reserved key rebound",
			},
			expected: "[conflict] ctrl+c in context 'browser': reserved key rebound",
		},
		{
			name: "invalid error",
			err: ValidationError{
				Type:    "invalid",
				Context: ContextGlobal,
				Key:     "",
				Message: "empty key",
			},
			expected: "[invalid]  in context 'global': empty key",
		},
		{
			name: "warning",
			err: ValidationError{
				Type:    "warning",
				Context: ContextPatches,
				Key:     "?",
				Message: "shadows global binding",
			},
			expected: "[warning] ? in context 'patches': shadows global binding",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestValidateRegistry_Defaults(t *testing.T) {
	v := NewValidator()
	result := v.ValidateRegistry(NewDefaultRegistry())

	if result.HasErrors() {
		t.Errorf("default registry has errors:\n%s", result.String())
	}
}

func TestValidateRegistry_ReservedKey(t *testing.T) {
	registry := NewDefaultRegistry()
	registry.Register(ContextBrowser, "ctrl+c", ActionSelect)

	result := NewValidator().ValidateRegistry(registry)
	if !result.HasErrors() {
		t.Fatal("expected error for rebound ctrl+c")
	}
	if !strings.Contains(result.String(), "reserved key") {
		t.Errorf("unexpected result: %s", result.String())
	}
}

func TestValidateRegistry_UnknownAction(t *testing.T) {
	registry := NewDefaultRegistry()
	registry.Register(ContextInbox, "x", Action("explode"))

	result := NewValidator().ValidateRegistry(registry)
	if !result.HasErrors() {
		t.Fatal("expected error for unknown action")
	}
}

func TestValidateRegistry_ShadowingWarns(t *testing.T) {
	registry := NewDefaultRegistry()
	registry.Register(ContextPatches, "?", ActionDelete)

	result := NewValidator().ValidateRegistry(registry)
	if result.HasErrors() {
		t.Fatalf("shadowing should warn, not error:\n%s", result.String())
	}
	if !result.HasWarnings() {
		t.Error("expected shadowing warning")
	}
}

func TestValidateOverrides(t *testing.T) {
	v := NewValidator()

	result := v.ValidateOverrides(map[string]map[string]string{
		"browser": {"ctrl+n": "navigate_down"},
	})
	if result.HasErrors() {
		t.Errorf("valid overrides rejected:\n%s", result.String())
	}

	result = v.ValidateOverrides(map[string]map[string]string{
		"teleport": {"t": "select"},
	})
	if !result.HasErrors() {
		t.Error("expected error for unknown context")
	}
}
