package listkit

// SliceStore is the reference Store: slice-backed, supporting the full
// mutable surface. It doubles as the contract's worked example; real
// collections are expected to bring their own storage strategy.
type SliceStore[T any] struct {
	elems []T
}

var (
	_ Store[int]    = (*SliceStore[int])(nil)
	_ Setter[int]   = (*SliceStore[int])(nil)
	_ Inserter[int] = (*SliceStore[int])(nil)
	_ Remover       = (*SliceStore[int])(nil)
	_ Clearer       = (*SliceStore[int])(nil)
)

// NewSliceStore returns a store seeded with elems. The slice is owned by
// the store afterwards.
func NewSliceStore[T any](elems ...T) *SliceStore[T] {
	return &SliceStore[T]{elems: elems}
}

func (s *SliceStore[T]) Len() int         { return len(s.elems) }
func (s *SliceStore[T]) At(i int) T       { return s.elems[i] }
func (s *SliceStore[T]) SetAt(i int, v T) { s.elems[i] = v }

func (s *SliceStore[T]) InsertAt(i int, v T) {
	var zero T
	s.elems = append(s.elems, zero)
	copy(s.elems[i+1:], s.elems[i:])
	s.elems[i] = v
}

func (s *SliceStore[T]) RemoveAt(i int) {
	var zero T
	copy(s.elems[i:], s.elems[i+1:])
	s.elems[len(s.elems)-1] = zero
	s.elems = s.elems[:len(s.elems)-1]
}

func (s *SliceStore[T]) Clear() {
	s.elems = s.elems[:0]
}

func (s *SliceStore[T]) ReadOnly() bool  { return false }
func (s *SliceStore[T]) FixedSize() bool { return false }
