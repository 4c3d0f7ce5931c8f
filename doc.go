// Package vec implements a type-generic dynamic array built directly on
// manually managed memory.
//
// # Overview
//
// Vec is a contiguous, growable array of elements of type T with explicit
// length and capacity bookkeeping. Unlike a Go slice, it manages its own
// backing memory through an explicit size-and-alignment allocation layer:
// the first Push allocates room for 4 elements, and a Push into a full Vec
// doubles the capacity by reallocating the buffer. This is useful for:
//
//   - Understanding how growable-array containers work under the hood
//   - Code that needs explicit, deterministic element teardown
//   - Studying the initialized/uninitialized memory invariant that
//     slice-like containers must maintain
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Release() // Clean up when done
//
//	v.Push(1)
//	v.Push(2)
//
//	if x, ok := v.Get(0); ok {
//		fmt.Println(*x) // 1
//	}
//
//	fmt.Println(v.Len(), v.Cap()) // 2 4
//
// # Memory Layout
//
// A fresh Vec holds no memory at all. The first Push allocates a region
// sized for exactly 4 elements of T, aligned for T. Slots [0, Len()) hold
// live elements; slots [Len(), Cap()) are raw, uninitialized bytes that are
// never read or exposed. When a Push finds the Vec full, capacity doubles:
// 0 -> 4 -> 8 -> 16 -> 32 -> ... Capacity never shrinks.
//
// # Element Teardown
//
// Release disposes every live element in ascending index order and then
// frees the backing memory, in that order, exactly once. Element types that
// own resources can implement Disposer to hook into teardown:
//
//	type conn struct{ fd int }
//
//	func (c *conn) Dispose() { closeFd(c.fd) }
//
// # Important Notes
//
//   - Vec is not goroutine-safe; it has a single owner at a time
//   - Pointers returned by Get are invalidated by growth and by Release
//   - Zero-sized element types are not supported; Push panics on them
//   - The backing region is not scanned for Go pointers, so elements that
//     contain pointers must be kept reachable elsewhere for their pointees
//     to survive garbage collection
//   - Fatal conditions (allocation failure, size arithmetic overflow,
//     Push after Release) panic rather than return an error
//
// # Metrics and Monitoring
//
// The container reports its memory usage:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization * 100)
//	fmt.Printf("Bytes in use: %d\n", m.SizeInUse)
//	fmt.Printf("Allocated bytes: %d\n", m.Capacity)
package vec
