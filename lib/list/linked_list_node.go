package list

type SinglyNodeElement[T comparable] struct {
	next    *SinglyNodeElement[T]
	listRef *singlyLinkedList[T]
	Value   T // The type of value may be a small size type.
	// It should be placed at the end of the struct to avoid taking too much padding.
}

func NewSinglyNodeElement[T comparable](v T) *SinglyNodeElement[T] {
	return newSinglyNodeElement[T](v, nil)
}

func newSinglyNodeElement[T comparable](v T, list *singlyLinkedList[T]) *SinglyNodeElement[T] {
	return &SinglyNodeElement[T]{
		Value:   v,
		listRef: list,
	}
}

// HasNext reports whether e is followed by another element before the
// logical end of its list. The circular tail has no next in this sense.
func (e *SinglyNodeElement[T]) HasNext() bool {
	if e == nil || e.listRef == nil {
		return false
	}
	return e.next != nil && e != e.listRef.tail
}

func (e *SinglyNodeElement[T]) Next() *SinglyNodeElement[T] {
	if !e.HasNext() {
		return nil
	}
	return e.next
}

// InList reports whether e is currently linked into a list.
func (e *SinglyNodeElement[T]) InList() bool {
	return e != nil && e.listRef != nil
}
