package cells

import (
	"container/list"
	"fmt"
	"iter"

	"github.com/katalvlaran/zgrid/coord"
)

// Store is the read/write surface shared by Ordered and Lazy.
type Store[V any] interface {
	// Lookup returns the value at p. Lazy stores compute missing values.
	Lookup(p coord.Pos) (V, error)
	// Peek returns the stored value at p without computing anything.
	Peek(p coord.Pos) (V, bool)
	Set(p coord.Pos, v V)
	// Delete removes p and reports whether it was stored.
	Delete(p coord.Pos) bool
	Has(p coord.Pos) bool
	Len() int
	// All iterates stored entries in insertion order.
	All() iter.Seq2[coord.Pos, V]
}

// entry is one stored cell in the insertion-order list.
type entry[V any] struct {
	pos coord.Pos
	val V
}

// Ordered is an insertion-ordered map from position to value.
// Overwriting a key keeps its place; deleting and re-adding moves it last.
// The zero value is not usable; call NewOrdered.
type Ordered[V any] struct {
	index map[coord.Pos]*list.Element
	order *list.List // of *entry[V]
}

// NewOrdered returns an empty Ordered map.
func NewOrdered[V any]() *Ordered[V] {
	return &Ordered[V]{
		index: make(map[coord.Pos]*list.Element),
		order: list.New(),
	}
}

// Lookup returns the value at p or ErrNotFound.
// Complexity: O(1).
func (m *Ordered[V]) Lookup(p coord.Pos) (V, error) {
	if v, ok := m.Peek(p); ok {
		return v, nil
	}
	var zero V
	return zero, fmt.Errorf("%w: %v", ErrNotFound, p)
}

// Peek returns the value at p and whether it is stored.
func (m *Ordered[V]) Peek(p coord.Pos) (V, bool) {
	el, ok := m.index[p]
	if !ok {
		var zero V
		return zero, false
	}
	return el.Value.(*entry[V]).val, true
}

// Set stores v at p.
// Complexity: O(1).
func (m *Ordered[V]) Set(p coord.Pos, v V) {
	if el, ok := m.index[p]; ok {
		el.Value.(*entry[V]).val = v
		return
	}
	m.index[p] = m.order.PushBack(&entry[V]{pos: p, val: v})
}

// Delete removes p and reports whether it was present.
// Complexity: O(1).
func (m *Ordered[V]) Delete(p coord.Pos) bool {
	el, ok := m.index[p]
	if !ok {
		return false
	}
	m.order.Remove(el)
	delete(m.index, p)
	return true
}

// Has reports whether p is stored.
func (m *Ordered[V]) Has(p coord.Pos) bool {
	_, ok := m.index[p]
	return ok
}

// Len returns the number of stored entries.
func (m *Ordered[V]) Len() int {
	return len(m.index)
}

// All iterates entries in insertion order. The loop body may overwrite or
// delete the current entry; other deletions during iteration are unsupported.
func (m *Ordered[V]) All() iter.Seq2[coord.Pos, V] {
	return func(yield func(coord.Pos, V) bool) {
		for el := m.order.Front(); el != nil; {
			next := el.Next()
			e := el.Value.(*entry[V])
			if !yield(e.pos, e.val) {
				return
			}
			el = next
		}
	}
}

// Keys returns the stored positions in insertion order.
func (m *Ordered[V]) Keys() []coord.Pos {
	out := make([]coord.Pos, 0, m.Len())
	for p := range m.All() {
		out = append(out, p)
	}
	return out
}

// Map copies the entries into a plain Go map.
func (m *Ordered[V]) Map() map[coord.Pos]V {
	out := make(map[coord.Pos]V, m.Len())
	for p, v := range m.All() {
		out[p] = v
	}
	return out
}
