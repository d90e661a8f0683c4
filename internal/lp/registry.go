package lp

import "fmt"

// Registry assigns one non-negative decision variable per item. It is the
// only component that creates variables; everything else looks them up here.
type Registry struct {
	backend Backend
	vars    map[string]Var
	order   []string
}

// NewRegistry creates an empty registry creating its variables on b.
func NewRegistry(b Backend) *Registry {
	return &Registry{
		backend: b,
		vars:    make(map[string]Var),
	}
}

// Register creates a variable with lower bound 0 for the item. Registering
// the same item twice fails with ErrDuplicateItem.
func (r *Registry) Register(item string) (Var, error) {
	if _, exists := r.vars[item]; exists {
		return 0, fmt.Errorf("register %q: %w", item, ErrDuplicateItem)
	}

	v, err := r.backend.AddVariable(0)
	if err != nil {
		return 0, fmt.Errorf("register %q: %w", item, err)
	}

	r.vars[item] = v
	r.order = append(r.order, item)
	return v, nil
}

// Lookup returns the variable registered for the item, or ErrUnknownItem.
func (r *Registry) Lookup(item string) (Var, error) {
	v, exists := r.vars[item]
	if !exists {
		return 0, fmt.Errorf("lookup %q: %w", item, ErrUnknownItem)
	}
	return v, nil
}

// Items returns the registered items in registration order.
func (r *Registry) Items() []string {
	items := make([]string, len(r.order))
	copy(items, r.order)
	return items
}

// Len returns the number of registered items.
func (r *Registry) Len() int {
	return len(r.vars)
}
