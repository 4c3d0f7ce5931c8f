package vec

import "unsafe"

// SizeInUse returns the number of bytes occupied by live elements.
func (v *Vec[T]) SizeInUse() int {
	var zero T
	return v.length * int(unsafe.Sizeof(zero))
}

// CapacityBytes returns the total size of the backing region in bytes.
func (v *Vec[T]) CapacityBytes() int {
	var zero T
	return v.capacity * int(unsafe.Sizeof(zero))
}

// Utilization returns the ratio of bytes in use to allocated bytes
// (0.0 to 1.0). Returns 0.0 if nothing has been allocated.
func (v *Vec[T]) Utilization() float64 {
	capacity := v.CapacityBytes()
	if capacity == 0 {
		return 0
	}
	return float64(v.SizeInUse()) / float64(capacity)
}

// Metrics returns a snapshot of container statistics.
func (v *Vec[T]) Metrics() VecMetrics {
	return VecMetrics{
		Len:         v.length,
		Cap:         v.capacity,
		SizeInUse:   v.SizeInUse(),
		Capacity:    v.CapacityBytes(),
		Utilization: v.Utilization(),
	}
}

// VecMetrics contains statistical information about a Vec.
type VecMetrics struct {
	Len         int     // Live element count
	Cap         int     // Allocated element slots
	SizeInUse   int     // Bytes occupied by live elements
	Capacity    int     // Total allocated bytes
	Utilization float64 // Ratio of used to allocated bytes (0.0-1.0)
}
