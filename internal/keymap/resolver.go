package keymap

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Resolver maps key presses to actions.
type Resolver struct {
	entries []entry // binding order; the first match wins
}

type entry struct {
	action  Action
	binding key.Binding
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{entries: make([]entry, 0, len(bindings))}
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		r.entries = append(r.entries, entry{action: b.Action, binding: b.KeyBinding()})
	}
	return r
}

// Resolve returns the action bound to msg, or "" when the key is unbound.
func (r *Resolver) Resolve(msg tea.KeyMsg) Action {
	for _, e := range r.entries {
		if key.Matches(msg, e.binding) {
			return e.action
		}
	}
	return ""
}

// KeysFor returns the keys bound to an action, without duplicates.
func (r *Resolver) KeysFor(action Action) []string {
	var keys []string
	for _, e := range r.entries {
		if e.action != action {
			continue
		}
		for _, k := range e.binding.Keys() {
			if !slices.Contains(keys, k) {
				keys = append(keys, k)
			}
		}
	}
	return keys
}

// Conflicts returns every key bound to more than one action. Only the
// first of those actions is reachable.
func (r *Resolver) Conflicts() map[string][]Action {
	owners := make(map[string][]Action)
	for _, e := range r.entries {
		for _, k := range e.binding.Keys() {
			if !slices.Contains(owners[k], e.action) {
				owners[k] = append(owners[k], e.action)
			}
		}
	}
	for k, actions := range owners {
		if len(actions) < 2 {
			delete(owners, k)
		}
	}
	return owners
}
