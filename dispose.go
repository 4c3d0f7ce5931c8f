package vec

// Disposer is implemented by element types that own resources needing
// explicit teardown. Release calls Dispose exactly once per live element,
// in ascending index order, before the backing memory is freed. The method
// is looked up through a pointer to the element slot first, then on the
// element value itself, so pointer element types like Vec[*X] are disposed
// too. Element types without the method are simply dropped with the buffer.
type Disposer interface {
	Dispose()
}
