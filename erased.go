package listkit

import (
	"fmt"
	"reflect"

	"github.com/rawbytedev/listkit/internal/common"
)

// erased is the bridge *List[T] exposes to the type-erased facade.
// Both views dispatch into the same store; AnyList never holds a copy.
type erased interface {
	Len() int
	RemoveAt(i int) error
	Clear() error
	ReadOnly() bool
	FixedSize() bool

	getAny(i int) (any, error)
	setAny(i int, v any) error
	insertAny(i int, v any) error
	removeAny(v any) (bool, error)
	indexOfAny(v any) int
	containsAny(v any) bool
	copyToAny(dst any, offset int) error
}

// AnyList is the type-erased view of a List for callers that do not know
// the element type at compile time. Mutating calls validate the value
// against the element type and fail with ErrArgument on a mismatch;
// Contains and IndexOf instead treat an incompatible value as absent.
type AnyList struct {
	list erased
}

// Untyped returns the type-erased view over the same storage. Both views
// observe identical state at any instant.
func (l *List[T]) Untyped() *AnyList {
	return &AnyList{list: l}
}

// verify coerces v to the element type, failing with ErrArgument when v
// cannot be treated as a T. A nil v is accepted only for nilable element
// types, where it coerces to the type's nil.
func (l *List[T]) verify(v any) (T, error) {
	var zero T
	if v == nil {
		if !common.Nilable(reflect.TypeFor[T]()) {
			return zero, fmt.Errorf("%w: nil value for element type %v", ErrArgument, reflect.TypeFor[T]())
		}
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: value of type %T is not assignable to element type %v", ErrArgument, v, reflect.TypeFor[T]())
	}
	return t, nil
}

func (l *List[T]) getAny(i int) (any, error) {
	v, err := l.Get(i)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (l *List[T]) setAny(i int, v any) error {
	t, err := l.verify(v)
	if err != nil {
		return err
	}
	return l.Set(i, t)
}

func (l *List[T]) insertAny(i int, v any) error {
	t, err := l.verify(v)
	if err != nil {
		return err
	}
	return l.Insert(i, t)
}

func (l *List[T]) removeAny(v any) (bool, error) {
	t, err := l.verify(v)
	if err != nil {
		return false, err
	}
	return l.Remove(t)
}

func (l *List[T]) indexOfAny(v any) int {
	t, err := l.verify(v)
	if err != nil {
		return -1
	}
	return l.IndexOf(t)
}

func (l *List[T]) containsAny(v any) bool {
	t, err := l.verify(v)
	if err != nil {
		return false
	}
	return l.Contains(t)
}

func (l *List[T]) copyToAny(dst any, offset int) error {
	dv := reflect.ValueOf(dst)
	if dv.Kind() != reflect.Slice {
		return fmt.Errorf("%w: destination %T is not a slice", ErrArgument, dst)
	}
	if offset < 0 || offset > dv.Len() {
		return fmt.Errorf("%w: offset %d with destination length %d", ErrIndexOutOfRange, offset, dv.Len())
	}
	n := l.store.Len()
	if dv.Len()-offset < n {
		return fmt.Errorf("%w: destination holds %d slots from offset %d, need %d", ErrArgument, dv.Len()-offset, offset, n)
	}
	for i := 0; i < n; i++ {
		if !common.Assign(dv.Index(offset+i), l.store.At(i)) {
			return fmt.Errorf("%w: element %d of type %T does not fit destination %v", ErrArgument, i, l.store.At(i), dv.Type().Elem())
		}
	}
	return nil
}

// Len returns the current element count.
func (a *AnyList) Len() int { return a.list.Len() }

// Get returns the element at index i.
func (a *AnyList) Get(i int) (any, error) { return a.list.getAny(i) }

// Set replaces the element at index i after a compatibility check.
func (a *AnyList) Set(i int, v any) error { return a.list.setAny(i, v) }

// Insert places v at index i after a compatibility check.
func (a *AnyList) Insert(i int, v any) error { return a.list.insertAny(i, v) }

// Add appends v and returns the index it landed at.
func (a *AnyList) Add(v any) (int, error) {
	if err := a.list.insertAny(a.list.Len(), v); err != nil {
		return -1, err
	}
	return a.list.Len() - 1, nil
}

// Remove drops the first element equal to v, reporting whether one was
// found. Unlike Contains, it validates v strictly.
func (a *AnyList) Remove(v any) (bool, error) { return a.list.removeAny(v) }

// RemoveAt drops the element at index i.
func (a *AnyList) RemoveAt(i int) error { return a.list.RemoveAt(i) }

// Clear drops every element.
func (a *AnyList) Clear() error { return a.list.Clear() }

// IndexOf returns the index of the first element equal to v, or -1.
// A value incompatible with the element type is simply not found.
func (a *AnyList) IndexOf(v any) int { return a.list.indexOfAny(v) }

// Contains reports whether some element equals v. A value incompatible
// with the element type is simply absent, never an error.
func (a *AnyList) Contains(v any) bool { return a.list.containsAny(v) }

// CopyTo writes all elements into dst, which must be a slice whose
// element type accepts each element, starting at offset.
func (a *AnyList) CopyTo(dst any, offset int) error { return a.list.copyToAny(dst, offset) }

// ReadOnly reports the underlying collection's read-only flag.
func (a *AnyList) ReadOnly() bool { return a.list.ReadOnly() }

// FixedSize reports the underlying collection's fixed-size flag.
func (a *AnyList) FixedSize() bool { return a.list.FixedSize() }
