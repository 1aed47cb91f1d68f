package keybinds

import (
	"sort"
	"strings"
)

// Binding represents a keybinding mapping
type Binding struct {
	Key     string
	Action  Action
	Context Context
}

// Registry maps keys to actions per context
type Registry struct {
	// bindings maps context -> key -> action
	bindings map[Context]map[string]Action

	// pending holds the first key of a multi-key sequence per context
	pending map[Context]string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[Context]map[string]Action),
		pending:  make(map[Context]string),
	}
}

// Register binds key to action in context, replacing any previous binding
func (r *Registry) Register(context Context, key string, action Action) {
	if r.bindings[context] == nil {
		r.bindings[context] = make(map[string]Action)
	}
	r.bindings[context][key] = action
}

// RegisterMultiple binds several keys to the same action
func (r *Registry) RegisterMultiple(context Context, keys []string, action Action) {
	for _, key := range keys {
		r.Register(context, key, action)
	}
}

// Unbind removes every key bound to action in context and returns them
func (r *Registry) Unbind(context Context, action Action) []string {
	var removed []string
	for key, bound := range r.bindings[context] {
		if bound == action {
			delete(r.bindings[context], key)
			removed = append(removed, key)
		}
	}
	sort.Strings(removed)
	return removed
}

// Match resolves key in context, falling back to the global context
func (r *Registry) Match(context Context, key string) (Action, bool) {
	if action, ok := r.bindings[context][key]; ok {
		return action, true
	}
	if action, ok := r.bindings[ContextGlobal][key]; ok {
		return action, true
	}
	return "", false
}

// MatchMultiKey resolves two-key sequences such as "gg". It returns the
// action, whether the match is complete and whether key started a sequence.
func (r *Registry) MatchMultiKey(context Context, key string) (Action, bool, bool) {
	if prev, ok := r.pending[context]; ok {
		delete(r.pending, context)
		if action, ok := r.Match(context, prev+key); ok {
			return action, true, false
		}
		// broken sequence: key still counts on its own
	}

	if r.startsSequence(context, key) {
		r.pending[context] = key
		return "", false, true
	}

	action, ok := r.Match(context, key)
	return action, ok, false
}

// startsSequence reports whether key is the first half of a bound doubled
// key such as "gg" in context
func (r *Registry) startsSequence(context Context, key string) bool {
	if len(key) != 1 {
		return false
	}
	for bound := range r.bindings[context] {
		if len(bound) == 2 && bound[0] == key[0] && bound[1] == key[0] {
			return true
		}
	}
	return false
}

// ClearMultiKeyState drops a pending sequence for context
func (r *Registry) ClearMultiKeyState(context Context) {
	delete(r.pending, context)
}

// GetBinding returns the keys bound to action in context, or in the global
// context when context has none
func (r *Registry) GetBinding(context Context, action Action) []string {
	keys := r.keysFor(context, action)
	if len(keys) == 0 && context != ContextGlobal {
		keys = r.keysFor(ContextGlobal, action)
	}
	return keys
}

func (r *Registry) keysFor(context Context, action Action) []string {
	var keys []string
	for key, bound := range r.bindings[context] {
		if bound == action {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// GetBindingString returns the keys bound to action joined for display
func (r *Registry) GetBindingString(context Context, action Action) string {
	keys := r.GetBinding(context, action)
	if len(keys) == 0 {
		return "unbound"
	}
	return strings.Join(keys, ", ")
}

// ListBindings returns the bindings of context followed by the global ones,
// each group sorted by key
func (r *Registry) ListBindings(context Context) []Binding {
	bindings := r.listContext(context)
	if context != ContextGlobal {
		bindings = append(bindings, r.listContext(ContextGlobal)...)
	}
	return bindings
}

func (r *Registry) listContext(context Context) []Binding {
	keys := make([]string, 0, len(r.bindings[context]))
	for key := range r.bindings[context] {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	bindings := make([]Binding, 0, len(keys))
	for _, key := range keys {
		bindings = append(bindings, Binding{Key: key, Action: r.bindings[context][key], Context: context})
	}
	return bindings
}

// Merge copies bindings from other, with other taking precedence
func (r *Registry) Merge(other *Registry) {
	for context, contextBindings := range other.bindings {
		for key, action := range contextBindings {
			r.Register(context, key, action)
		}
	}
}
