package keybinds

import (
	"fmt"
	"strings"
)

// reservedKeys are keys that must not be rebound. Force quit has to
// work no matter what the settings file says.
var reservedKeys = map[string]bool{
	"ctrl+c": true,
}

// ValidationError represents a keybinding validation error
type ValidationError struct {
	Type    string // "conflict", "invalid", "warning"
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s in context '%s': %s", e.Type, e.Key, e.Context, e.Message)
}

// ValidationResult contains all validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// String returns a human-readable summary of validation results
func (r *ValidationResult) String() string {
	var sb strings.Builder

	if len(r.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("Errors (%d):\n", len(r.Errors)))
		for _, err := range r.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
		}
	}

	if len(r.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(r.Warnings)))
		for _, warn := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warn.Error()))
		}
	}

	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}

	return sb.String()
}

// Validator validates keybinding configurations
type Validator struct{}

// NewValidator creates a new keybinding validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRegistry validates an entire registry
func (v *Validator) ValidateRegistry(registry *Registry) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	v.checkActions(registry, result)
	v.checkReservedKeys(registry, result)
	v.checkShadowing(registry, result)

	return result
}

// ValidateOverrides validates user overrides before applying them
func (v *Validator) ValidateOverrides(overrides map[string]map[string]string) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	registry := NewDefaultRegistry()
	if err := ApplyOverrides(registry, overrides); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Type:    "invalid",
			Message: err.Error(),
		})
		return result
	}

	return v.ValidateRegistry(registry)
}

// checkActions reports bindings to unknown actions
func (v *Validator) checkActions(registry *Registry, result *ValidationResult) {
	for context, contextBindings := range registry.bindings {
		for key, action := range contextBindings {
			if !knownActions[action] {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "invalid",
					Context: context,
					Key:     key,
					Message: fmt.Sprintf("unknown action %q", action),
				})
			}
		}
	}
}

// checkReservedKeys reports non-global bindings on reserved keys
func (v *Validator) checkReservedKeys(registry *Registry, result *ValidationResult) {
	for context, contextBindings := range registry.bindings {
		for key, action := range contextBindings {
			if reservedKeys[key] && action != ActionQuitForce {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "conflict",
					Context: context,
					Key:     key,
					Message: "reserved key rebound",
				})
			}
		}
	}
}

// checkShadowing warns where a specific context hides a global binding
// behind a different action
func (v *Validator) checkShadowing(registry *Registry, result *ValidationResult) {
	globalBindings := registry.bindings[ContextGlobal]
	for context, contextBindings := range registry.bindings {
		if context == ContextGlobal {
			continue
		}
		for key, action := range contextBindings {
			if globalAction, ok := globalBindings[key]; ok && globalAction != action {
				result.Warnings = append(result.Warnings, ValidationError{
					Type:    "warning",
					Context: context,
					Key:     key,
					Message: fmt.Sprintf("shadows global action %q with %q", globalAction, action),
				})
			}
		}
	}
}
