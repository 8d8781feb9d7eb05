package probemap

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_Basic(t *testing.T) {
	m := New[string, int]()

	require.Equal(t, DefaultCapacity, m.Capacity())

	// Set and Get
	isNew := m.Set("foo", 42)
	require.True(t, isNew)

	v, ok := m.Get("foo")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	// Update existing key
	isNew = m.Set("foo", 100)
	require.False(t, isNew)
	assert.Equal(t, 1, m.Len())

	v, ok = m.Get("foo")
	require.True(t, ok)
	assert.Equal(t, 100, v)

	// Get non-existent key
	_, ok = m.Get("bar")
	assert.False(t, ok)
}

func TestMap_GetMut(t *testing.T) {
	m := New[string, int]()

	m.Set("counter", 1)

	p, ok := m.GetMut("counter")
	require.True(t, ok)
	*p += 1

	v, ok := m.Get("counter")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, m.Len())

	_, ok = m.GetMut("missing")
	assert.False(t, ok)
}

func TestMap_GrowthPreservesMapping(t *testing.T) {
	m := NewWithCapacity[uint64, uint64](3)

	// Enough distinct keys to force several rebuilds: 3 -> 7 -> 15 -> 31 -> 63.
	const n = 40
	for i := range uint64(n) {
		m.Set(i, i*2)
	}

	require.Equal(t, n, m.Len())
	require.Greater(t, m.Capacity(), m.Len())

	for i := range uint64(n) {
		v, ok := m.Get(i)
		require.True(t, ok)
		require.Equal(t, i*2, v)
	}
}

func TestMap_FullTableScenario(t *testing.T) {
	m := NewWithCapacity[string, string](11)

	for i := range 11 {
		m.Set(strconv.Itoa(i), strconv.Itoa(100000+i))
	}

	for i := range 11 {
		v, ok := m.Get(strconv.Itoa(i))
		require.True(t, ok)
		require.Equal(t, strconv.Itoa(100000+i), v)
	}

	// Table is exactly full; the next distinct key forces growth.
	require.Equal(t, 11, m.Len())
	require.Equal(t, 11, m.Capacity())

	m.Set("69", "69")

	require.Equal(t, 12, m.Len())
	require.Equal(t, 23, m.Capacity())

	for i := range 11 {
		v, ok := m.Get(strconv.Itoa(i))
		require.True(t, ok)
		require.Equal(t, strconv.Itoa(100000+i), v)
	}

	v, ok := m.Get("69")
	require.True(t, ok)
	assert.Equal(t, "69", v)
}

func TestMap_Stats(t *testing.T) {
	m := NewWithCapacity[int, int](16)

	stats := m.Stats()
	assert.Equal(t, 0, stats.Size)
	assert.Equal(t, 16, stats.Capacity)
	assert.Equal(t, float32(0), stats.LoadFactor)

	for i := range 4 {
		m.Set(i, i)
	}

	stats = m.Stats()
	assert.Equal(t, 4, stats.Size)
	assert.Equal(t, float32(0.25), stats.LoadFactor)
}

func TestMap_WithHashFunc(t *testing.T) {
	m := New[string, int](WithHashFunc[string, int](HashStringXX))

	m.Set("foo", 100)

	v, ok := m.Get("foo")
	require.True(t, ok)
	assert.Equal(t, 100, v)
}

func TestMap_DebugDump(t *testing.T) {
	m := NewWithCapacity[string, string](3)
	m.Set("a", "1")

	var sb strings.Builder
	m.DebugDump(&sb)

	assert.Contains(t, sb.String(), "Capacity 3")
	assert.Contains(t, sb.String(), "a => 1")
}
