package goshape

// Registry is an explicit, caller-owned index of domain objects, used by
// derived-collection extractors ("all Books whose author is this Author").
// It replaces implicit process-wide instance tracking: each caller (or test)
// constructs and owns its own Registry, making lifetime and isolation
// explicit. Registration order is preserved and reflected in dump output.
//
// Registry is not safe for concurrent mutation; populate it before dumping.
type Registry[T any] struct {
	items []T
}

// NewRegistry returns an empty Registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{}
}

// Add registers one or more objects in order.
func (r *Registry[T]) Add(vs ...T) {
	r.items = append(r.items, vs...)
}

// Len returns the number of registered objects.
func (r *Registry[T]) Len() int { return len(r.items) }

// Items returns the registered objects in registration order. The slice is a
// copy; mutating it does not affect the Registry.
func (r *Registry[T]) Items() []T {
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Select returns the registered objects matching keep, in registration order.
func (r *Registry[T]) Select(keep func(T) bool) []T {
	var out []T
	for _, v := range r.items {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
