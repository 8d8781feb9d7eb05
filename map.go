package probemap

import "io"

// Map is a map-like data structure built on open addressing with linear
// probing. Unlike the built-in map it grows by whole-table rebuild only when
// completely full, so the backing array stays dense. Growth rehashing moves
// entries between slots, so no iteration API is provided and pointers
// returned by GetMut must not be used across a later Set.
// Not safe for concurrent use; callers that share a Map must serialize
// access themselves.
type Map[K comparable, V any] struct {
	table[K, V]
}

// Returns a new instance of the map with the default capacity.
func New[K comparable, V any](opts ...Option[K, V]) *Map[K, V] {
	return NewWithCapacity(DefaultCapacity, opts...)
}

// Returns a new instance of the map with the given capacity.
// Panics if capacity < 1: the probe loop cannot terminate on a
// zero-capacity table, so the precondition is enforced here once for the
// table's whole lifetime.
func NewWithCapacity[K comparable, V any](capacity int, opts ...Option[K, V]) *Map[K, V] {
	var m Map[K, V]
	m.init(capacity, opts...)

	return &m
}

// Puts a value under a key, overwriting in place if the key is present.
// Returns whether the key is new.
func (m *Map[K, V]) Set(key K, value V) bool {
	return m.put(key, value)
}

// Returns the value stored under a key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.get(key)
}

// GetMut returns a pointer to the value stored under a key, letting the
// caller update it in place without reinserting. The pointer is valid only
// until the next Set: an insert may grow the table and relocate every slot.
func (m *Map[K, V]) GetMut(key K) (*V, bool) {
	return m.getMut(key)
}

// Len returns the number of occupied slots.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Capacity returns the current number of slots, occupied or not.
func (m *Map[K, V]) Capacity() int {
	return len(m.slots)
}

// DebugDump writes the capacity, occupied count and every slot's state to w.
// Inspection only, not part of the map's contract.
func (m *Map[K, V]) DebugDump(w io.Writer) {
	m.dump(w)
}
