package list

// Note that the singly linked list is not thread safe.
// Concurrent mutation from multiple goroutines requires
// the caller to guard the list with its own lock.

// ListKind tells what the tail successor of a list is.
type ListKind uint8

const (
	// Linear list terminates at a nil successor.
	Linear ListKind = iota
	// Circular list links the tail back to the head.
	Circular
)

func (k ListKind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Circular:
		return "circular"
	default:
	}
	return "unknown"
}

const (
	// LastIndex is the reserved index meaning "the last element".
	LastIndex int64 = -1
	// DefaultSeparator joins the values in String.
	DefaultSeparator = "->"
)

// ListErr is the error type returned by the list operations.
type ListErr string

const (
	// ErrInvalidIndex reports an index outside of the list bounds.
	// The list is left untouched.
	ErrInvalidIndex ListErr = "[singly-linked-list] invalid index"
	// ErrEmptyList reports a removal from an empty list.
	ErrEmptyList ListErr = "[singly-linked-list] empty"
)

func (err ListErr) Error() string {
	return string(err)
}

// SinglyLinkedList is an index addressable singly linked list.
// The linear and circular variants share the same operation set,
// they only differ in the successor of the tail.
type SinglyLinkedList[T comparable] interface {
	Len() int64
	Kind() ListKind
	// Front returns the first element of list l or nil if the list is empty.
	Front() *SinglyNodeElement[T]
	// Back returns the last element of list l or nil if the list is empty.
	Back() *SinglyNodeElement[T]
	// Append adds a value v at the end of list l and returns the new tail.
	Append(v T) *SinglyNodeElement[T]
	// AppendValue appends the values in order and returns the new elements.
	AppendValue(values ...T) []*SinglyNodeElement[T]
	// Prepend adds a value v at the start of list l and returns the new head.
	Prepend(v T) *SinglyNodeElement[T]
	// Insert links a new element so that it ends up at position idx.
	// The valid range is [0, Len()], otherwise ErrInvalidIndex is returned
	// and the list is left untouched.
	Insert(idx int64, v T) (*SinglyNodeElement[T], error)
	// Get returns the element at position idx. LastIndex means the tail.
	Get(idx int64) (*SinglyNodeElement[T], error)
	// SetValue overwrites the value at position idx.
	SetValue(idx int64, v T) error
	// Search returns the first index whose value equals v, or -1 and false.
	Search(v T) (int64, bool)
	// FindFirst finds the first element that satisfies the compareFn and returns the element and true if found.
	// If compareFn is not provided, it will use the default compare function that compares the value of element.
	FindFirst(v T, compareFn ...func(e *SinglyNodeElement[T]) bool) (*SinglyNodeElement[T], bool)
	// PopFirst unlinks and returns the head.
	PopFirst() (*SinglyNodeElement[T], error)
	// Pop unlinks and returns the tail. It walks to the second to last
	// element because there is no backward reference.
	Pop() (*SinglyNodeElement[T], error)
	// RemoveAt unlinks and returns the element at position idx.
	// The valid range is [0, Len()) plus LastIndex.
	RemoveAt(idx int64) (*SinglyNodeElement[T], error)
	// Remove unlinks targetE if it belongs to list l and returns it, otherwise nil.
	Remove(targetE *SinglyNodeElement[T]) *SinglyNodeElement[T]
	// Foreach visits exactly Len() elements in order. fn must not change the
	// list structure. If fn returns an error, the traversal stops and returns the error.
	Foreach(fn func(idx int64, e *SinglyNodeElement[T]) error) error
	// Values returns a snapshot of the values in order.
	Values() []T
	// Clear unlinks every element.
	Clear()
	// Render joins the values with sep, without a trailing separator.
	Render(sep string) string
	// String renders the list with DefaultSeparator, e.g. 103->20->134.
	String() string
}
