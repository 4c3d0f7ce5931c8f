package vec

import (
	"math"
	"unsafe"
)

// layout describes a memory request to the allocation layer: a total byte
// size and the alignment the block's first byte must satisfy.
type layout struct {
	size  uintptr
	align uintptr
}

// layoutFor computes the layout for n contiguous elements of type T.
// The byte size is checked against the signed-offset limit so that any
// offset derived from it can be represented without wrapping.
// Panics on zero-sized T and on overflow.
func layoutFor[T any](n int) layout {
	var zero T
	elem := unsafe.Sizeof(zero)
	if elem == 0 {
		panic("vec: zero sized types are not supported")
	}
	if uintptr(n) > uintptr(math.MaxInt)/elem {
		panic("vec: allocation size exceeds the addressable range")
	}
	return layout{size: uintptr(n) * elem, align: unsafe.Alignof(zero)}
}

// allocate returns a block of l.size bytes whose first byte is aligned to
// l.align. The block is over-allocated by the alignment and sliced at the
// first aligned address, so alignment holds regardless of where the runtime
// placed the buffer. Allocation failure panics inside make.
func allocate(l layout) []byte {
	buf := make([]byte, l.size+l.align)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	shift := (l.align - addr%l.align) % l.align
	return buf[shift : shift+l.size : shift+l.size]
}

// reallocate moves the contents of old into a fresh block sized by newLayout.
// Go's allocator has no resize-in-place primitive, so this is the
// allocate-new, copy-old, free-old fallback. old is released on return and
// must not be used again. If the new allocation fails, old is untouched.
func reallocate(old []byte, oldLayout, newLayout layout) []byte {
	buf := allocate(newLayout)
	copy(buf, old[:oldLayout.size])
	free(old, oldLayout)
	return buf
}

// free returns a block to the allocator. Under Go's collector there is no
// explicit dealloc; dropping the last reference releases the memory. The
// call is kept so the destruct-then-free ordering in Release stays explicit
// and symmetric with allocate.
func free(b []byte, l layout) {}
