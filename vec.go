package vec

import (
	"math"
	"unsafe"
)

// initialCapacity is the number of slots the first Push allocates.
const initialCapacity = 4

// Vec is a contiguous, growable array of T over manually managed memory.
// Slots [0, length) hold live elements; slots [length, capacity) are raw
// uninitialized bytes. Not goroutine-safe; a Vec has a single owner.
type Vec[T any] struct {
	buf      []byte // backing region, nil while capacity == 0
	length   int
	capacity int
	released bool
}

// New returns an empty Vec. No memory is allocated until the first Push.
func New[T any]() *Vec[T] {
	return &Vec[T]{}
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int { return v.length }

// Cap returns the number of allocated element slots.
func (v *Vec[T]) Cap() int { return v.capacity }

// Push appends value as the new last element. The first Push allocates
// initialCapacity slots; a Push into a full Vec doubles the capacity by
// reallocating the buffer, leaving prior state untouched if the new
// allocation fails. Panics on zero-sized T, on size arithmetic overflow,
// on allocation failure, and after Release().
func (v *Vec[T]) Push(value T) {
	if unsafe.Sizeof(value) == 0 {
		panic("vec: zero sized types are not supported")
	}
	v.panicIfReleased()

	switch {
	case v.capacity == 0:
		buf := allocate(layoutFor[T](initialCapacity))
		*(*T)(unsafe.Pointer(&buf[0])) = value
		v.buf = buf
		v.capacity = initialCapacity
		v.length = 1

	case v.length < v.capacity:
		// layoutFor checks the offset multiplication for wrapping.
		off := layoutFor[T](v.length).size
		*(*T)(unsafe.Pointer(&v.buf[off])) = value
		v.length++

	default:
		if v.capacity > math.MaxInt/2 {
			panic("vec: capacity overflow")
		}
		newCap := v.capacity * 2
		buf := reallocate(v.buf, layoutFor[T](v.capacity), layoutFor[T](newCap))
		*(*T)(unsafe.Pointer(&buf[layoutFor[T](v.length).size])) = value
		v.buf = buf
		v.capacity = newCap
		v.length++
	}
}

// Get returns a pointer to the element at index, and false when index is
// out of range. Get never panics and never reaches into the uninitialized
// slots past Len(). The returned pointer is valid until the next growth or
// Release.
func (v *Vec[T]) Get(index int) (*T, bool) {
	if index < 0 || index >= v.length {
		return nil, false
	}
	return (*T)(unsafe.Pointer(&v.buf[layoutFor[T](index).size])), true
}

// Release disposes every live element in ascending index order, then frees
// the backing region, in that order, so element teardown never touches
// freed memory. Teardown runs at most once; a second Release is a no-op.
// Push panics after Release; Get reports absent.
func (v *Vec[T]) Release() {
	if v.released {
		return
	}
	v.released = true
	if v.capacity == 0 {
		return // no allocation was ever made
	}
	for i := 0; i < v.length; i++ {
		p := (*T)(unsafe.Pointer(&v.buf[layoutFor[T](i).size]))
		if d, ok := any(p).(Disposer); ok {
			d.Dispose()
		} else if d, ok := any(*p).(Disposer); ok {
			// T is itself a pointer or interface type; the method is on
			// the element value, not on *T
			d.Dispose()
		}
	}
	free(v.buf, layoutFor[T](v.capacity))
	v.buf = nil
	v.length = 0
	v.capacity = 0
}

// panicIfReleased panics if the Vec has been released.
func (v *Vec[T]) panicIfReleased() {
	if v.released {
		panic("vec: use after Release()")
	}
}
