package probemap

import (
	"fmt"
	"io"
)

// DefaultCapacity is prime in order to have good splits of the probe
// sequence across key digests.
const DefaultCapacity = 61

type slot[K comparable, V any] struct {
	key   K
	value V

	// key/value are garbage unless occupied is set.
	occupied bool
}

type table[K comparable, V any] struct {
	slots []slot[K, V]
	size  int

	hashFunc HashFunc[K]

	emptyV V
}

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

func (t *table[K, V]) init(capacity int, opts ...Option[K, V]) {
	if capacity < 1 {
		panic("probemap: capacity must be positive")
	}

	t.slots = make([]slot[K, V], capacity)
	t.size = 0

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K]()
	}
}

// resolve is the shared probe loop of get, getMut and put. It walks the probe
// sequence of key and reports either the slot holding an equal key
// (found == true) or the first unoccupied slot on the sequence. idx is -1
// when the whole table is occupied by other keys; growth keeps that from
// happening after any insert, but the bound stays in case deletion is ever
// added.
func (t *table[K, V]) resolve(key K) (idx int, found bool) {
	capacity := len(t.slots)

	idx = int(t.hashFunc(key) % uint64(capacity))
	for range capacity {
		if !t.slots[idx].occupied {
			return idx, false
		}

		if t.slots[idx].key == key {
			return idx, true
		}

		idx = (idx + 1) % capacity
	}

	return -1, false
}

func (t *table[K, V]) get(key K) (V, bool) {
	if idx, found := t.resolve(key); found {
		return t.slots[idx].value, true
	}

	return t.emptyV, false
}

func (t *table[K, V]) getMut(key K) (*V, bool) {
	if idx, found := t.resolve(key); found {
		return &t.slots[idx].value, true
	}

	return nil, false
}

// put upserts. An existing key is overwritten in place: the stored key and
// its digest are unchanged, so neither rehash nor growth happens and size
// stays the same. Returns whether the key is new.
func (t *table[K, V]) put(key K, value V) bool {
	idx, found := t.resolve(key)
	if found {
		t.slots[idx].value = value

		return false
	}

	if t.size == len(t.slots) {
		t.grow()
		idx, _ = t.resolve(key)
	}

	s := &t.slots[idx]
	s.key = key
	s.value = value
	s.occupied = true
	t.size++

	return true
}

// grow rebuilds into a fresh slot array of capacity 2n+1 (stays odd, avoids
// even-alignment collisions) by re-running put over every occupied slot in
// slot order. Slot indexes change; the key/value mapping does not.
func (t *table[K, V]) grow() {
	old := t.slots

	t.slots = make([]slot[K, V], len(old)*2+1)
	t.size = 0

	for i := range old {
		if old[i].occupied {
			t.put(old[i].key, old[i].value)
		}
	}
}

func (t *table[K, V]) dump(w io.Writer) {
	fmt.Fprintln(w, "----------------------------------------------------------")
	fmt.Fprintf(w, "  Capacity %d\n", len(t.slots))
	fmt.Fprintf(w, "  Size %d\n", t.size)
	fmt.Fprintln(w, "  Slots")

	for i := range t.slots {
		if t.slots[i].occupied {
			fmt.Fprintf(w, "    (%d)      %v => %v\n", i, t.slots[i].key, t.slots[i].value)
		} else {
			fmt.Fprintf(w, "    (%d)      X\n", i)
		}
	}

	fmt.Fprintln(w, "----------------------------------------------------------")
}
