package probemap

import "unsafe"

// Estimates capacity (number of slots) from the given memory size in bytes.
func CapacityFromSize[K comparable, V any](size uintptr) int {
	sizeOfSlot := unsafe.Sizeof(slot[K, V]{})

	return int(size / sizeOfSlot)
}

//go:nocheckptr
func unsafeConvertSlice[Dest any, Src any](s []Src) []Dest {
	return unsafe.Slice((*Dest)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}
