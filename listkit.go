// Package listkit turns a handful of storage primitives into a full
// ordered-collection API. A backing type implements Store (count plus
// read-at) and whichever optional mutation interfaces it supports; the
// adapter derives bounds checking, search, copy, iteration and a
// type-erased facade on top, so collection authors write four or five
// methods instead of a dozen.
package listkit

import (
	"errors"
	"fmt"
	"iter"
	"sync"
	"sync/atomic"

	"github.com/rawbytedev/listkit/internal/common"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrUnsupported     = errors.New("operation not supported")
	ErrArgument        = errors.New("invalid argument")
)

// List adapts a Store into the full ordered-collection surface.
//
// Len is recomputed from the store on every access, never cached. The
// adapter performs no locking of its own: concurrent structural mutation
// without external synchronization (see SyncRoot) is out of contract and
// may leave readers observing an inconsistent sequence.
type List[T any] struct {
	store Store[T]
	root  atomic.Pointer[sync.Mutex]
}

// New wraps store in an adapter. The store keeps full ownership of its
// storage; the adapter holds no element state.
func New[T any](store Store[T]) *List[T] {
	return &List[T]{store: store}
}

// Len returns the current element count.
func (l *List[T]) Len() int { return l.store.Len() }

// Get returns the element at index i.
func (l *List[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= l.store.Len() {
		return zero, fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, l.store.Len())
	}
	return l.store.At(i), nil
}

// Set replaces the element at index i.
func (l *List[T]) Set(i int, v T) error {
	s, ok := l.store.(Setter[T])
	if !ok {
		return fmt.Errorf("%w: store cannot overwrite elements", ErrUnsupported)
	}
	if i < 0 || i >= l.store.Len() {
		return fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, l.store.Len())
	}
	s.SetAt(i, v)
	return nil
}

// Insert places v at index i, shifting the elements at i and above one
// position up. i may equal Len(), which appends.
func (l *List[T]) Insert(i int, v T) error {
	ins, ok := l.store.(Inserter[T])
	if !ok {
		return fmt.Errorf("%w: store cannot grow", ErrUnsupported)
	}
	if i < 0 || i > l.store.Len() {
		return fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, l.store.Len())
	}
	ins.InsertAt(i, v)
	return nil
}

// Append adds v after the last element.
func (l *List[T]) Append(v T) error {
	return l.Insert(l.store.Len(), v)
}

// RemoveAt drops the element at index i, shifting the elements above it
// one position down.
func (l *List[T]) RemoveAt(i int) error {
	r, ok := l.store.(Remover)
	if !ok {
		return fmt.Errorf("%w: store cannot shrink", ErrUnsupported)
	}
	if i < 0 || i >= l.store.Len() {
		return fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, l.store.Len())
	}
	r.RemoveAt(i)
	return nil
}

// Remove drops the first element equal to v and reports whether one was
// found. A miss is a no-op, not an error.
func (l *List[T]) Remove(v T) (bool, error) {
	i := l.IndexOf(v)
	if i < 0 {
		return false, nil
	}
	if err := l.RemoveAt(i); err != nil {
		return false, err
	}
	return true, nil
}

// Clear drops every element.
func (l *List[T]) Clear() error {
	c, ok := l.store.(Clearer)
	if !ok {
		return fmt.Errorf("%w: store cannot be cleared", ErrUnsupported)
	}
	c.Clear()
	return nil
}

// IndexOf returns the index of the first element equal to v, or -1.
// Stores implementing Searcher take over the scan.
func (l *List[T]) IndexOf(v T) int {
	if s, ok := l.store.(Searcher[T]); ok {
		return s.IndexOf(v)
	}
	for i, n := 0, l.store.Len(); i < n; i++ {
		if common.Equal(l.store.At(i), v) {
			return i
		}
	}
	return -1
}

// Contains reports whether some element equals v. A nil v matches nil
// elements by presence alone; the comparer is never invoked for it.
func (l *List[T]) Contains(v T) bool {
	if common.IsNil(v) {
		for i, n := 0, l.store.Len(); i < n; i++ {
			if common.IsNil(l.store.At(i)) {
				return true
			}
		}
		return false
	}
	return l.IndexOf(v) >= 0
}

// CopyTo writes all elements into dst starting at offset, in index order.
func (l *List[T]) CopyTo(dst []T, offset int) error {
	if offset < 0 || offset > len(dst) {
		return fmt.Errorf("%w: offset %d with destination length %d", ErrIndexOutOfRange, offset, len(dst))
	}
	n := l.store.Len()
	if len(dst)-offset < n {
		return fmt.Errorf("%w: destination holds %d slots from offset %d, need %d", ErrArgument, len(dst)-offset, offset, n)
	}
	for i := 0; i < n; i++ {
		dst[offset+i] = l.store.At(i)
	}
	return nil
}

// Values iterates the elements in index order. The sequence is lazy and
// restartable: each step re-checks the current length and reads through
// the store, so it observes mutations made between steps rather than a
// snapshot.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < l.store.Len(); i++ {
			if !yield(l.store.At(i)) {
				return
			}
		}
	}
}

// ReadOnly reports whether the collection rejects all mutation.
// True unless the store overrides it via ReadOnlyFlag.
func (l *List[T]) ReadOnly() bool {
	if f, ok := l.store.(ReadOnlyFlag); ok {
		return f.ReadOnly()
	}
	return true
}

// FixedSize reports whether the collection rejects growth and shrinkage.
// True unless the store overrides it via FixedSizeFlag.
func (l *List[T]) FixedSize() bool {
	if f, ok := l.store.(FixedSizeFlag); ok {
		return f.FixedSize()
	}
	return true
}

// SyncRoot returns the advisory mutex callers can lock around compound
// operations. It is allocated on first request; concurrent first callers
// race through a compare-and-swap and all observe the same mutex. The
// adapter itself never locks it.
func (l *List[T]) SyncRoot() *sync.Mutex {
	if m := l.root.Load(); m != nil {
		return m
	}
	m := new(sync.Mutex)
	if l.root.CompareAndSwap(nil, m) {
		return m
	}
	return l.root.Load()
}
