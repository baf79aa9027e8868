package list

import (
	"fmt"
	"strings"
)

var _ SinglyLinkedList[struct{}] = (*singlyLinkedList[struct{}])(nil) // Type check assertion

type singlyLinkedList[T comparable] struct {
	head, tail *SinglyNodeElement[T]
	len        int64
	kind       ListKind
}

// NewSinglyLinkedList returns a linear list holding the values in order.
func NewSinglyLinkedList[T comparable](values ...T) SinglyLinkedList[T] {
	return newSinglyLinkedList[T](Linear, values...)
}

// NewCircularLinkedList returns a circular list holding the values in order.
func NewCircularLinkedList[T comparable](values ...T) SinglyLinkedList[T] {
	return newSinglyLinkedList[T](Circular, values...)
}

func newSinglyLinkedList[T comparable](kind ListKind, values ...T) *singlyLinkedList[T] {
	l := &singlyLinkedList[T]{kind: kind}
	for _, v := range values {
		l.append(newSinglyNodeElement(v, l))
	}
	return l
}

func (l *singlyLinkedList[T]) Len() int64 {
	return l.len
}

func (l *singlyLinkedList[T]) Kind() ListKind {
	return l.kind
}

func (l *singlyLinkedList[T]) Front() *SinglyNodeElement[T] {
	return l.head
}

func (l *singlyLinkedList[T]) Back() *SinglyNodeElement[T] {
	return l.tail
}

// closeRing restores the tail successor of the variant.
func (l *singlyLinkedList[T]) closeRing() {
	if l.tail == nil {
		return
	}
	if l.kind == Circular {
		l.tail.next = l.head
	} else {
		l.tail.next = nil
	}
}

// release clears the references of an unlinked element to avoid memory leaks.
func (l *singlyLinkedList[T]) release(e *SinglyNodeElement[T]) *SinglyNodeElement[T] {
	e.next = nil
	e.listRef = nil
	return e
}

// checkIndex normalizes idx into [0, len) or reports ErrInvalidIndex.
func (l *singlyLinkedList[T]) checkIndex(idx int64) (int64, error) {
	if idx == LastIndex && l.len > 0 {
		return l.len - 1, nil
	}
	if idx < 0 || idx >= l.len {
		return 0, ErrInvalidIndex
	}
	return idx, nil
}

func (l *singlyLinkedList[T]) append(e *SinglyNodeElement[T]) *SinglyNodeElement[T] {
	e.listRef = l
	e.next = nil

	if l.len == 0 {
		// empty list, new append element is the first one
		l.head, l.tail = e, e
	} else {
		l.tail.next = e
		l.tail = e
	}
	l.len++
	l.closeRing()
	return e
}

func (l *singlyLinkedList[T]) prepend(e *SinglyNodeElement[T]) *SinglyNodeElement[T] {
	e.listRef = l
	e.next = nil

	if l.len == 0 {
		l.head, l.tail = e, e
	} else {
		e.next = l.head
		l.head = e
	}
	l.len++
	l.closeRing()
	return e
}

func (l *singlyLinkedList[T]) Append(v T) *SinglyNodeElement[T] {
	return l.append(newSinglyNodeElement(v, l))
}

func (l *singlyLinkedList[T]) AppendValue(values ...T) []*SinglyNodeElement[T] {
	if len(values) <= 0 {
		return nil
	}

	newElements := make([]*SinglyNodeElement[T], 0, len(values))
	for _, v := range values {
		newElements = append(newElements, l.append(newSinglyNodeElement(v, l)))
	}
	return newElements
}

func (l *singlyLinkedList[T]) Prepend(v T) *SinglyNodeElement[T] {
	return l.prepend(newSinglyNodeElement(v, l))
}

func (l *singlyLinkedList[T]) Insert(idx int64, v T) (*SinglyNodeElement[T], error) {
	if idx < 0 || idx > l.len {
		return nil, ErrInvalidIndex
	}

	switch idx {
	case 0:
		return l.Prepend(v), nil
	case l.len:
		return l.Append(v), nil
	default:
	}

	// Relink after the predecessor, the tail is untouched.
	prev := walk(l.head, idx-1)
	newE := newSinglyNodeElement(v, l)
	newE.next = prev.next
	prev.next = newE
	l.len++
	return newE, nil
}

func (l *singlyLinkedList[T]) Get(idx int64) (*SinglyNodeElement[T], error) {
	idx, err := l.checkIndex(idx)
	if err != nil {
		return nil, err
	}
	if idx == l.len-1 {
		return l.tail, nil
	}
	return walk(l.head, idx), nil
}

func (l *singlyLinkedList[T]) SetValue(idx int64, v T) error {
	e, err := l.Get(idx)
	if err != nil {
		return err
	}
	e.Value = v
	return nil
}

func (l *singlyLinkedList[T]) Search(v T) (int64, bool) {
	_, idx := walkUntil(l.head, l.len, func(_ int64, e *SinglyNodeElement[T]) bool {
		return e.Value == v
	})
	return idx, idx >= 0
}

func (l *singlyLinkedList[T]) FindFirst(targetV T, compareFn ...func(e *SinglyNodeElement[T]) bool) (*SinglyNodeElement[T], bool) {
	if l.len == 0 {
		return nil, false
	}

	if len(compareFn) <= 0 || compareFn[0] == nil {
		compareFn = []func(e *SinglyNodeElement[T]) bool{
			func(e *SinglyNodeElement[T]) bool {
				return e.Value == targetV
			},
		}
	}

	e, _ := walkUntil(l.head, l.len, func(_ int64, e *SinglyNodeElement[T]) bool {
		return compareFn[0](e)
	})
	return e, e != nil
}

func (l *singlyLinkedList[T]) PopFirst() (*SinglyNodeElement[T], error) {
	if l.len == 0 {
		return nil, ErrEmptyList
	}

	at := l.head
	if l.len == 1 {
		l.head, l.tail = nil, nil
	} else {
		l.head = at.next
	}
	l.len--
	l.closeRing()
	return l.release(at), nil
}

func (l *singlyLinkedList[T]) Pop() (*SinglyNodeElement[T], error) {
	if l.len == 0 {
		return nil, ErrEmptyList
	}

	at := l.tail
	if l.len == 1 {
		l.head, l.tail = nil, nil
	} else {
		// No backward reference, walk to the second to last one.
		l.tail = walk(l.head, l.len-2)
	}
	l.len--
	l.closeRing()
	return l.release(at), nil
}

func (l *singlyLinkedList[T]) RemoveAt(idx int64) (*SinglyNodeElement[T], error) {
	if l.len == 0 {
		return nil, ErrEmptyList
	}

	idx, err := l.checkIndex(idx)
	if err != nil {
		return nil, err
	}
	switch idx {
	case 0:
		return l.PopFirst()
	case l.len - 1:
		return l.Pop()
	default:
	}

	prev := walk(l.head, idx-1)
	at := prev.next
	prev.next = at.next
	l.len--
	return l.release(at), nil
}

func (l *singlyLinkedList[T]) Remove(targetE *SinglyNodeElement[T]) *SinglyNodeElement[T] {
	if l.len == 0 || targetE == nil || targetE.listRef != l {
		return nil
	}

	switch targetE {
	case l.head:
		at, _ := l.PopFirst()
		return at
	case l.tail:
		at, _ := l.Pop()
		return at
	default:
	}

	prev, _ := walkUntil(l.head, l.len-1, func(_ int64, e *SinglyNodeElement[T]) bool {
		return e.next == targetE
	})
	if prev == nil {
		return nil
	}
	prev.next = targetE.next
	l.len--
	return l.release(targetE)
}

func (l *singlyLinkedList[T]) Foreach(fn func(idx int64, e *SinglyNodeElement[T]) error) error {
	if fn == nil || l.len == 0 {
		return nil
	}

	var err error
	walkUntil(l.head, l.len, func(idx int64, e *SinglyNodeElement[T]) bool {
		err = fn(idx, e)
		return err != nil
	})
	return err
}

func (l *singlyLinkedList[T]) Values() []T {
	values := make([]T, 0, l.len)
	_ = l.Foreach(func(_ int64, e *SinglyNodeElement[T]) error {
		values = append(values, e.Value)
		return nil
	})
	return values
}

func (l *singlyLinkedList[T]) Clear() {
	iterator := l.head
	for i := int64(0); i < l.len; i++ {
		next := iterator.next
		l.release(iterator)
		iterator = next
	}
	l.head, l.tail = nil, nil
	l.len = 0
}

func (l *singlyLinkedList[T]) Render(sep string) string {
	builder := strings.Builder{}
	_ = l.Foreach(func(idx int64, e *SinglyNodeElement[T]) error {
		if idx > 0 {
			_, _ = builder.WriteString(sep)
		}
		_, _ = fmt.Fprint(&builder, e.Value)
		return nil
	})
	return builder.String()
}

func (l *singlyLinkedList[T]) String() string {
	return l.Render(DefaultSeparator)
}
