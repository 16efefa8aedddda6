package keybinds

import (
	"fmt"
	"log"
)

// ApplyOverrides merges user overrides from the settings file into a
// registry. Overrides are grouped by context name:
//
//	keybinds:
//	  browser:
//	    "ctrl+n": navigate_down
//	  patches:
//	    "o": checkout
//
// An override for a key already carrying a default replaces it. Binding
// a key to the empty string unbinds it.
func ApplyOverrides(registry *Registry, overrides map[string]map[string]string) error {
	for contextName, keys := range overrides {
		context := Context(contextName)
		if !knownContexts[context] {
			return fmt.Errorf("unknown keybind context %q", contextName)
		}
		for key, actionName := range keys {
			if reservedKeys[key] {
				return fmt.Errorf("key '%s' is reserved and cannot be rebound", key)
			}
			if actionName == "" {
				registry.Unbind(context, key)
				continue
			}
			action := Action(actionName)
			if !knownActions[action] {
				return fmt.Errorf("unknown action %q for key '%s' in context '%s'", actionName, key, contextName)
			}
			registry.Register(context, key, action)
		}
	}
	return nil
}

// NewRegistryFromOverrides builds the default registry, applies user
// overrides, and validates the result. Validation errors reject the
// configuration; warnings (a specific context shadowing a global
// binding) are logged and tolerated.
func NewRegistryFromOverrides(overrides map[string]map[string]string) (*Registry, error) {
	registry := NewDefaultRegistry()
	if err := ApplyOverrides(registry, overrides); err != nil {
		return nil, err
	}

	result := NewValidator().ValidateRegistry(registry)
	if result.HasErrors() {
		return nil, fmt.Errorf("invalid keybinds:\n%s", result.String())
	}
	for _, warning := range result.Warnings {
		log.Printf("keybinds: %s", warning.Error())
	}
	return registry, nil
}
