package keybinds

import (
	"strings"
)

// Binding represents a keybinding mapping
type Binding struct {
	Key     string
	Action  Action
	Context Context
}

// contextParent defines context inheritance: a key not bound in the
// specific context falls through to its parent, ending at global.
var contextParent = map[Context]Context{
	ContextIssues:  ContextBrowser,
	ContextPatches: ContextBrowser,
	ContextInbox:   ContextBrowser,
	ContextBrowser: ContextGlobal,
	ContextSearch:  ContextGlobal,
	ContextDetail:  ContextGlobal,
	ContextHelp:    ContextGlobal,
}

// Registry manages keybinding mappings and matching
type Registry struct {
	// bindings maps context -> key -> action
	bindings map[Context]map[string]Action

	// multiKeyState tracks multi-key sequences (like 'gg' in vim)
	multiKeyState map[Context]string
}

// NewRegistry creates a new keybinding registry
func NewRegistry() *Registry {
	return &Registry{
		bindings:      make(map[Context]map[string]Action),
		multiKeyState: make(map[Context]string),
	}
}

// Register adds a keybinding to the registry
func (r *Registry) Register(context Context, key string, action Action) {
	if r.bindings[context] == nil {
		r.bindings[context] = make(map[string]Action)
	}
	r.bindings[context][key] = action
}

// RegisterMultiple registers multiple keybindings for the same action
func (r *Registry) RegisterMultiple(context Context, keys []string, action Action) {
	for _, key := range keys {
		r.Register(context, key, action)
	}
}

// Match attempts to match a key to an action in the given context.
// Contexts are checked in priority order: specific context, then its
// parents up to global.
func (r *Registry) Match(context Context, key string) (Action, bool) {
	for {
		if contextBindings, ok := r.bindings[context]; ok {
			if action, ok := contextBindings[key]; ok {
				return action, true
			}
		}
		parent, ok := contextParent[context]
		if !ok {
			return "", false
		}
		context = parent
	}
}

// MatchMultiKey handles multi-key sequences like 'gg' for go-to-top.
// Returns the action, whether it's a complete match, and whether it's a
// partial match awaiting another key.
func (r *Registry) MatchMultiKey(context Context, key string) (Action, bool, bool) {
	if prevKey, hasPending := r.multiKeyState[context]; hasPending {
		sequence := prevKey + key
		delete(r.multiKeyState, context)

		if action, ok := r.Match(context, sequence); ok {
			return action, true, false
		}
		return "", false, false
	}

	// A key bound to the prepare action starts a sequence.
	if action, ok := r.Match(context, key); ok && action == ActionGoToTopPrepare {
		r.multiKeyState[context] = key
		return "", false, true
	}

	action, ok := r.Match(context, key)
	return action, ok, false
}

// ClearMultiKeyState clears any pending multi-key state for a context
func (r *Registry) ClearMultiKeyState(context Context) {
	delete(r.multiKeyState, context)
}

// GetBinding returns the key(s) bound to an action, searching the
// context and then its parents.
func (r *Registry) GetBinding(context Context, action Action) []string {
	for {
		var keys []string
		if contextBindings, ok := r.bindings[context]; ok {
			for key, act := range contextBindings {
				if act == action {
					keys = append(keys, key)
				}
			}
		}
		if len(keys) > 0 {
			return keys
		}
		parent, ok := contextParent[context]
		if !ok {
			return nil
		}
		context = parent
	}
}

// GetBindingString returns a human-readable string of keys bound to an action
func (r *Registry) GetBindingString(context Context, action Action) string {
	keys := r.GetBinding(context, action)
	if len(keys) == 0 {
		return "unbound"
	}
	return strings.Join(keys, ", ")
}

// ListBindings returns all bindings reachable from a context, specific
// first, inherited after.
func (r *Registry) ListBindings(context Context) []Binding {
	var bindings []Binding
	seen := make(map[string]bool)

	for {
		if contextBindings, ok := r.bindings[context]; ok {
			for key, action := range contextBindings {
				if seen[key] {
					continue
				}
				seen[key] = true
				bindings = append(bindings, Binding{
					Key:     key,
					Action:  action,
					Context: context,
				})
			}
		}
		parent, ok := contextParent[context]
		if !ok {
			return bindings
		}
		context = parent
	}
}

// HasBinding checks if a key is bound in a context or its parents
func (r *Registry) HasBinding(context Context, key string) bool {
	_, ok := r.Match(context, key)
	return ok
}

// Unbind removes a key from a context. Used when an override moves an
// action to a different key.
func (r *Registry) Unbind(context Context, key string) {
	if contextBindings, ok := r.bindings[context]; ok {
		delete(contextBindings, key)
	}
}
