package common

import (
    "reflect"
)

// Nilable reports whether t has a "no value" representation.
func Nilable(t reflect.Type) bool {
    switch t.Kind() {
    case reflect.Pointer, reflect.Map, reflect.Slice,
        reflect.Chan, reflect.Func, reflect.Interface,
        reflect.UnsafePointer:
        return true
    default:
        return false
    }
}

// IsNil reports whether the boxed v carries no value. A typed nil
// (e.g. (*int)(nil) stored in an interface) counts as nil.
func IsNil(v any) bool {
    if v == nil {
        return true
    }
    rv := reflect.ValueOf(v)
    switch rv.Kind() {
    case reflect.Pointer, reflect.Map, reflect.Slice,
        reflect.Chan, reflect.Func, reflect.Interface,
        reflect.UnsafePointer:
        return rv.IsNil()
    default:
        return false
    }
}

// Equal is the default element comparer: == where the runtime type
// supports it, deep equality otherwise. Mismatched dynamic types never
// compare equal.
func Equal(a, b any) bool {
    if a == nil || b == nil {
        return a == nil && b == nil
    }
    ta := reflect.TypeOf(a)
    if ta != reflect.TypeOf(b) {
        return false
    }
    if ta.Comparable() {
        return a == b
    }
    return reflect.DeepEqual(a, b)
}

// Assign stores v into slot, zeroing the slot for absent values.
// Reports whether the slot's type accepted the assignment.
func Assign(slot reflect.Value, v any) bool {
    if v == nil {
        slot.SetZero()
        return true
    }
    rv := reflect.ValueOf(v)
    if !rv.Type().AssignableTo(slot.Type()) {
        return false
    }
    slot.Set(rv)
    return true
}
