package listkit

// Store is the minimal contract a backing collection must satisfy.
// Len and At are the only mandatory primitives; everything else the
// adapter exposes is derived from them.
//
// The adapter validates every index before delegating, so At may assume
// 0 <= i < Len().
type Store[T any] interface {
	Len() int
	At(i int) T
}

// Setter is implemented by stores that support replacing an element in place.
type Setter[T any] interface {
	SetAt(i int, v T)
}

// Inserter is implemented by stores that can grow. InsertAt shifts the
// elements at i and above one position up; i == Len() appends.
type Inserter[T any] interface {
	InsertAt(i int, v T)
}

// Remover is implemented by stores that can shrink. RemoveAt shifts the
// elements above i one position down.
type Remover interface {
	RemoveAt(i int)
}

// Clearer is implemented by stores that can drop all elements at once.
type Clearer interface {
	Clear()
}

// Searcher lets a store replace the adapter's linear IndexOf scan with
// something faster, e.g. a binary search over sorted storage. A negative
// result is reported as -1.
type Searcher[T any] interface {
	IndexOf(v T) int
}

// ReadOnlyFlag overrides the adapter's default read-only report.
// A store that does not implement it is reported as read-only.
type ReadOnlyFlag interface {
	ReadOnly() bool
}

// FixedSizeFlag overrides the adapter's default fixed-size report.
// A store that does not implement it is reported as fixed-size.
type FixedSizeFlag interface {
	FixedSize() bool
}
