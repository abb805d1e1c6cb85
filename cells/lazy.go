package cells

import (
	"fmt"

	"github.com/katalvlaran/zgrid/coord"
	"github.com/katalvlaran/zgrid/internal/logging"
)

// Lazy is an Ordered map that fills missing keys from a function of position.
// Each key is computed at most once; a failed computation stores nothing.
type Lazy[V any] struct {
	*Ordered[V]
	fn func(coord.Pos) (V, error)
}

// NewLazy wraps an infallible value function.
func NewLazy[V any](fn func(coord.Pos) V) *Lazy[V] {
	return NewFallibleLazy(func(p coord.Pos) (V, error) { return fn(p), nil })
}

// NewFallibleLazy wraps a value function that may fail.
func NewFallibleLazy[V any](fn func(coord.Pos) (V, error)) *Lazy[V] {
	return &Lazy[V]{Ordered: NewOrdered[V](), fn: fn}
}

// Lookup returns the stored value at p, computing and storing it first if needed.
// A function error is wrapped in ErrCompute and leaves p unset.
func (m *Lazy[V]) Lookup(p coord.Pos) (V, error) {
	if v, ok := m.Peek(p); ok {
		return v, nil
	}
	v, err := m.fn(p)
	if err != nil {
		var zero V
		return zero, fmt.Errorf("%w at %v: %w", ErrCompute, p, err)
	}
	m.Set(p, v)

	return v, nil
}

// LookupAny is Lookup for an untyped key such as a complex number.
// Keys that are not positions fail with ErrUnsupportedKey and are never coerced.
func (m *Lazy[V]) LookupAny(key any) (V, error) {
	p, err := coord.FromAny(key)
	if err != nil {
		logging.Logf("cells: lazy map does not support key %#v", key)
		var zero V
		return zero, err
	}
	return m.Lookup(p)
}
