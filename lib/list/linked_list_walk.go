package list

// walk follows steps successor links from start.
// It stops early and returns nil if a linear chain runs out.
func walk[T comparable](start *SinglyNodeElement[T], steps int64) *SinglyNodeElement[T] {
	iterator := start
	for i := int64(0); i < steps && iterator != nil; i++ {
		iterator = iterator.next
	}
	return iterator
}

// walkUntil visits at most limit elements from start and returns the first
// one satisfying pred together with its offset from start.
// The limit is what terminates the traversal of a circular chain.
func walkUntil[T comparable](
	start *SinglyNodeElement[T],
	limit int64,
	pred func(idx int64, e *SinglyNodeElement[T]) bool,
) (*SinglyNodeElement[T], int64) {
	iterator := start
	for idx := int64(0); idx < limit && iterator != nil; idx++ {
		if pred(idx, iterator) {
			return iterator, idx
		}
		iterator = iterator.next
	}
	return nil, -1
}
