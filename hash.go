package probemap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

type HashFunc[K comparable] func(K) uint64

// HashString digests a string with djb2 (http://www.cse.yorku.ca/~oz/hash.html).
// Arithmetic wraps on overflow.
func HashString(s string) uint64 {
	hash := uint64(5381)
	for i := 0; i < len(s); i++ {
		hash = hash*33 + uint64(s[i])
	}

	return hash
}

// HashStringXX digests a string with xxHash. Better distribution than
// HashString on short or highly similar key sets.
func HashStringXX(s string) uint64 {
	return xxhash.Sum64String(s)
}

// MakeDefaultHashFunc picks a digest for the key type: djb2 for strings,
// identity for the integer kinds, maphash for everything else. Identity works
// for integers because linear probing tolerates clustering and the table
// keeps its capacity odd.
func MakeDefaultHashFunc[K comparable]() HashFunc[K] {
	var k K
	switch any(k).(type) {
	case string:
		return func(k K) uint64 { return HashString(any(k).(string)) }
	case int:
		return func(k K) uint64 { return uint64(any(k).(int)) }
	case int32:
		return func(k K) uint64 { return uint64(any(k).(int32)) }
	case int64:
		return func(k K) uint64 { return uint64(any(k).(int64)) }
	case uint:
		return func(k K) uint64 { return uint64(any(k).(uint)) }
	case uint32:
		return func(k K) uint64 { return uint64(any(k).(uint32)) }
	case uint64:
		return func(k K) uint64 { return any(k).(uint64) }
	case uintptr:
		return func(k K) uint64 { return uint64(any(k).(uintptr)) }
	default:
		seed := maphash.MakeSeed()

		return func(k K) uint64 {
			return maphash.Comparable(seed, k)
		}
	}
}
