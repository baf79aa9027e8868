package list

import (
	"container/list"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKinds = []ListKind{Linear, Circular}

func newListOfKind[T comparable](kind ListKind, values ...T) SinglyLinkedList[T] {
	if kind == Circular {
		return NewCircularLinkedList[T](values...)
	}
	return NewSinglyLinkedList[T](values...)
}

// requireWellFormed checks head/tail/len consistency and the tail successor of the variant.
func requireWellFormed[T comparable](t *testing.T, sll SinglyLinkedList[T]) {
	t.Helper()
	l, ok := sll.(*singlyLinkedList[T])
	require.True(t, ok)

	if l.len == 0 {
		require.Nil(t, l.head)
		require.Nil(t, l.tail)
		return
	}
	require.NotNil(t, l.head)
	require.NotNil(t, l.tail)

	seen := make(map[*SinglyNodeElement[T]]struct{}, l.len)
	iterator := l.head
	for i := int64(0); i < l.len-1; i++ {
		require.Same(t, l, iterator.listRef)
		_, dup := seen[iterator]
		require.False(t, dup, "element visited twice at %d", i)
		seen[iterator] = struct{}{}
		require.NotNil(t, iterator.next)
		iterator = iterator.next
	}
	require.Same(t, l.tail, iterator)
	require.Same(t, l, l.tail.listRef)

	switch l.kind {
	case Linear:
		require.Nil(t, l.tail.next)
	case Circular:
		require.Same(t, l.head, l.tail.next)
		require.Same(t, l.head, walk(l.head, l.len))
	}
}

func TestSinglyLinkedList_AppendThenPop(t *testing.T) {
	sll := NewSinglyLinkedList[int]()
	sll.Append(103)
	sll.Append(20)
	sll.Append(20)
	sll.Append(134)
	require.Equal(t, int64(4), sll.Len())
	require.Equal(t, "103->20->20->134", sll.String())
	requireWellFormed(t, sll)

	e, err := sll.Pop()
	require.NoError(t, err)
	require.Equal(t, 134, e.Value)
	require.False(t, e.InList())
	require.Nil(t, e.next)
	require.Equal(t, "103->20->20", sll.String())
	require.Equal(t, 20, sll.Back().Value)
	requireWellFormed(t, sll)
}

func TestSinglyLinkedList_Search(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			sll := newListOfKind(kind, 103, 20, 20, 20)
			idx, ok := sll.Search(19990)
			require.False(t, ok)
			require.Equal(t, int64(-1), idx)

			idx, ok = sll.Search(20)
			require.True(t, ok)
			require.Equal(t, int64(1), idx)

			idx, ok = sll.Search(103)
			require.True(t, ok)
			require.Equal(t, int64(0), idx)

			idx, ok = NewSinglyLinkedList[int]().Search(1)
			require.False(t, ok)
			require.Equal(t, int64(-1), idx)
		})
	}
}

func TestCircularLinkedList_InsertIntoEmpty(t *testing.T) {
	sll := NewCircularLinkedList[int]()
	e, err := sll.Insert(0, 78)
	require.NoError(t, err)
	require.Equal(t, int64(1), sll.Len())
	require.Same(t, e, sll.Front())
	require.Same(t, sll.Front(), sll.Back())
	require.Same(t, e, e.next)
	require.False(t, e.HasNext())
	require.Nil(t, e.Next())
	require.Equal(t, "78", sll.String())
	requireWellFormed(t, sll)
}

func TestSinglyLinkedList_AppendPrependRender(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			sll := newListOfKind[string](kind)
			require.Equal(t, "", sll.String())

			sll.Append("b")
			sll.Prepend("a")
			sll.Append("c")
			sll.Prepend("_")
			require.Equal(t, int64(4), sll.Len())
			require.Equal(t, "_->a->b->c", sll.String())
			require.Equal(t, "_, a, b, c", sll.Render(", "))
			require.Equal(t, []string{"_", "a", "b", "c"}, sll.Values())
			requireWellFormed(t, sll)

			elements := sll.AppendValue("d", "e")
			require.Len(t, elements, 2)
			require.Same(t, elements[1], sll.Back())
			require.Nil(t, sll.AppendValue())
			require.Equal(t, int64(6), sll.Len())
			requireWellFormed(t, sll)
		})
	}
}

func TestSinglyLinkedList_GetIsReadOnly(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			sll := newListOfKind(kind, 1, 2, 3, 4, 5)
			before := sll.String()
			for i := int64(0); i < sll.Len(); i++ {
				e1, err := sll.Get(i)
				require.NoError(t, err)
				e2, err := sll.Get(i)
				require.NoError(t, err)
				require.Same(t, e1, e2)
				require.Equal(t, int(i+1), e1.Value)
			}
			last, err := sll.Get(LastIndex)
			require.NoError(t, err)
			require.Same(t, sll.Back(), last)
			require.Equal(t, before, sll.String())
			require.Equal(t, int64(5), sll.Len())
			requireWellFormed(t, sll)
		})
	}
}

func TestSinglyLinkedList_InsertThenGet(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			for i := int64(0); i <= 4; i++ {
				sll := newListOfKind(kind, 10, 20, 30, 40)
				newE, err := sll.Insert(i, 99)
				require.NoError(t, err)
				e, err := sll.Get(i)
				require.NoError(t, err)
				require.Same(t, newE, e)
				require.Equal(t, 99, e.Value)
				require.Equal(t, int64(5), sll.Len())
				requireWellFormed(t, sll)
			}
		})
	}
}

func TestSinglyLinkedList_InsertIntoEmptyThenPopFirst(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			sll := newListOfKind[int](kind)
			e, err := sll.Insert(0, 7)
			require.NoError(t, err)
			require.Same(t, e, sll.Front())
			require.Same(t, e, sll.Back())
			requireWellFormed(t, sll)

			popped, err := sll.PopFirst()
			require.NoError(t, err)
			require.Same(t, e, popped)
			require.Equal(t, int64(0), sll.Len())
			require.Nil(t, sll.Front())
			require.Nil(t, sll.Back())
			requireWellFormed(t, sll)

			_, err = sll.PopFirst()
			require.ErrorIs(t, err, ErrEmptyList)
			_, err = sll.Pop()
			require.ErrorIs(t, err, ErrEmptyList)
			_, err = sll.RemoveAt(0)
			require.ErrorIs(t, err, ErrEmptyList)
			_, err = sll.RemoveAt(LastIndex)
			require.ErrorIs(t, err, ErrEmptyList)
		})
	}
}

func TestSinglyLinkedList_InvalidIndexLeavesListUntouched(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			sll := newListOfKind(kind, 1, 2, 3)
			check := func(err error) {
				t.Helper()
				require.True(t, errors.Is(err, ErrInvalidIndex))
				require.Equal(t, "1->2->3", sll.String())
				require.Equal(t, int64(3), sll.Len())
				requireWellFormed(t, sll)
			}

			_, err := sll.Insert(-1, 9)
			check(err)
			_, err = sll.Insert(4, 9)
			check(err)
			_, err = sll.Get(3)
			check(err)
			_, err = sll.Get(-2)
			check(err)
			check(sll.SetValue(3, 9))
			check(sll.SetValue(-5, 9))
			_, err = sll.RemoveAt(3)
			check(err)
			_, err = sll.RemoveAt(-2)
			check(err)

			_, err = newListOfKind[int](kind).Get(LastIndex)
			require.ErrorIs(t, err, ErrInvalidIndex)
		})
	}
}

func TestSinglyLinkedList_SetValue(t *testing.T) {
	sll := NewSinglyLinkedList[int](1, 2, 3)
	require.NoError(t, sll.SetValue(1, 20))
	require.NoError(t, sll.SetValue(LastIndex, 30))
	require.Equal(t, "1->20->30", sll.String())
}

func TestSinglyLinkedList_RemoveAt(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			sll := newListOfKind(kind, 0, 1, 2, 3, 4, 5)

			t.Log("remove middle")
			e, err := sll.RemoveAt(2)
			require.NoError(t, err)
			require.Equal(t, 2, e.Value)
			require.False(t, e.InList())
			require.Equal(t, "0->1->3->4->5", sll.String())
			requireWellFormed(t, sll)

			t.Log("remove head")
			e, err = sll.RemoveAt(0)
			require.NoError(t, err)
			require.Equal(t, 0, e.Value)
			require.Equal(t, "1->3->4->5", sll.String())
			requireWellFormed(t, sll)

			t.Log("remove last by reserved index")
			e, err = sll.RemoveAt(LastIndex)
			require.NoError(t, err)
			require.Equal(t, 5, e.Value)
			require.Equal(t, "1->3->4", sll.String())
			requireWellFormed(t, sll)

			t.Log("remove tail by index")
			e, err = sll.RemoveAt(sll.Len() - 1)
			require.NoError(t, err)
			require.Equal(t, 4, e.Value)
			require.Equal(t, "1->3", sll.String())
			requireWellFormed(t, sll)

			for sll.Len() > 0 {
				_, err = sll.RemoveAt(LastIndex)
				require.NoError(t, err)
				requireWellFormed(t, sll)
			}
		})
	}
}

func TestSinglyLinkedList_Remove(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			sll := newListOfKind[int](kind)
			elements := sll.AppendValue(1, 2, 3, 4, 5)

			require.Same(t, elements[2], sll.Remove(elements[2]))
			require.Same(t, elements[0], sll.Remove(elements[0]))
			require.Same(t, elements[4], sll.Remove(elements[4]))
			require.Equal(t, "2->4", sll.String())
			requireWellFormed(t, sll)

			t.Log("released elements and foreign elements are ignored")
			require.Nil(t, sll.Remove(elements[2]))
			require.Nil(t, sll.Remove(nil))
			require.Nil(t, sll.Remove(NewSinglyNodeElement(2)))
			other := newListOfKind(kind, 2)
			require.Nil(t, sll.Remove(other.Front()))
			require.Equal(t, int64(2), sll.Len())
			require.Equal(t, int64(1), other.Len())

			for _, idx := range []int{0, 2, 4} {
				require.Nil(t, elements[idx].next)
				require.Nil(t, elements[idx].listRef)
			}
		})
	}
}

func TestSinglyLinkedList_Foreach(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			sll := newListOfKind(kind, 1, 2, 3, 4)
			visited := int64(0)
			err := sll.Foreach(func(idx int64, e *SinglyNodeElement[int]) error {
				require.Equal(t, visited, idx)
				require.Equal(t, int(idx+1), e.Value)
				visited++
				return nil
			})
			require.NoError(t, err)
			require.Equal(t, sll.Len(), visited)

			stop := errors.New("stop")
			visited = 0
			err = sll.Foreach(func(idx int64, e *SinglyNodeElement[int]) error {
				visited++
				if e.Value == 2 {
					return stop
				}
				return nil
			})
			require.ErrorIs(t, err, stop)
			require.Equal(t, int64(2), visited)

			require.NoError(t, sll.Foreach(nil))
			require.NoError(t, newListOfKind[int](kind).Foreach(func(int64, *SinglyNodeElement[int]) error {
				return stop
			}))
		})
	}
}

func TestSinglyLinkedList_FindFirst(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			sll := newListOfKind(kind, 5, 10, 15, 20)
			e, ok := sll.FindFirst(15)
			require.True(t, ok)
			require.Equal(t, 15, e.Value)

			e, ok = sll.FindFirst(0, func(e *SinglyNodeElement[int]) bool {
				return e.Value > 10
			})
			require.True(t, ok)
			require.Equal(t, 15, e.Value)

			e, ok = sll.FindFirst(100)
			require.False(t, ok)
			require.Nil(t, e)

			_, ok = newListOfKind[int](kind).FindFirst(1)
			require.False(t, ok)
		})
	}
}

func TestSinglyNodeElement_Next(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			sll := newListOfKind(kind, 1, 2, 3)
			values := make([]int, 0, 3)
			for e := sll.Front(); e != nil; e = e.Next() {
				values = append(values, e.Value)
			}
			require.Equal(t, []int{1, 2, 3}, values)
			require.False(t, sll.Back().HasNext())

			var nilE *SinglyNodeElement[int]
			require.False(t, nilE.HasNext())
			require.Nil(t, nilE.Next())
			require.False(t, NewSinglyNodeElement(1).HasNext())
		})
	}
}

func TestSinglyLinkedList_Clear(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			sll := newListOfKind[int](kind)
			elements := sll.AppendValue(1, 2, 3)
			sll.Clear()
			require.Equal(t, int64(0), sll.Len())
			require.Equal(t, "", sll.String())
			requireWellFormed(t, sll)
			for _, e := range elements {
				require.False(t, e.InList())
				require.Nil(t, e.next)
			}

			sll.Append(4)
			require.Equal(t, "4", sll.String())
			requireWellFormed(t, sll)
		})
	}
}

func TestSinglyLinkedList_Kind(t *testing.T) {
	assert.Equal(t, Linear, NewSinglyLinkedList[int]().Kind())
	assert.Equal(t, Circular, NewCircularLinkedList[int]().Kind())
	assert.Equal(t, "linear", Linear.String())
	assert.Equal(t, "circular", Circular.String())
	assert.Equal(t, "unknown", ListKind(99).String())
	assert.Equal(t, "[singly-linked-list] invalid index", ErrInvalidIndex.Error())
}

// TestSinglyLinkedList_RandomOps replays random operations against a slice model.
func TestSinglyLinkedList_RandomOps(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			rnd := rand.New(rand.NewSource(20260101))
			sll := newListOfKind[int](kind)
			model := make([]int, 0, 64)

			for step := 0; step < 2000; step++ {
				v := rnd.Intn(1000)
				switch op := rnd.Intn(7); op {
				case 0:
					sll.Append(v)
					model = append(model, v)
				case 1:
					sll.Prepend(v)
					model = append([]int{v}, model...)
				case 2:
					idx := rnd.Intn(len(model) + 1)
					_, err := sll.Insert(int64(idx), v)
					require.NoError(t, err)
					model = append(model[:idx], append([]int{v}, model[idx:]...)...)
				case 3:
					e, err := sll.Pop()
					if len(model) == 0 {
						require.ErrorIs(t, err, ErrEmptyList)
						continue
					}
					require.NoError(t, err)
					require.Equal(t, model[len(model)-1], e.Value)
					model = model[:len(model)-1]
				case 4:
					e, err := sll.PopFirst()
					if len(model) == 0 {
						require.ErrorIs(t, err, ErrEmptyList)
						continue
					}
					require.NoError(t, err)
					require.Equal(t, model[0], e.Value)
					model = model[1:]
				case 5:
					if len(model) == 0 {
						continue
					}
					idx := rnd.Intn(len(model))
					e, err := sll.RemoveAt(int64(idx))
					require.NoError(t, err)
					require.Equal(t, model[idx], e.Value)
					model = append(model[:idx], model[idx+1:]...)
				case 6:
					if len(model) == 0 {
						continue
					}
					idx := rnd.Intn(len(model))
					require.NoError(t, sll.SetValue(int64(idx), v))
					model[idx] = v
				}
				require.Equal(t, int64(len(model)), sll.Len())
				if step%50 == 0 {
					requireWellFormed(t, sll)
					require.Equal(t, model, sll.Values())
				}
			}
			requireWellFormed(t, sll)
			require.Equal(t, model, sll.Values())
		})
	}
}

func BenchmarkSinglyLinkedList_Append(b *testing.B) {
	sll := NewSinglyLinkedList[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sll.Append(i)
	}
	b.ReportAllocs()
}

func BenchmarkCircularLinkedList_Append(b *testing.B) {
	sll := NewCircularLinkedList[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sll.Append(i)
	}
	b.ReportAllocs()
}

func BenchmarkSDKLinkedList_PushBack(b *testing.B) {
	dlist := list.New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dlist.PushBack(i)
	}
	b.ReportAllocs()
}
