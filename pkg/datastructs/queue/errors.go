package queue

import (
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidCapacity is returned when a queue is constructed with a non-positive capacity.
	ErrInvalidCapacity = errors.New("queue: capacity must be positive")

	// ErrInvalidArgument is returned when a nil item is enqueued.
	ErrInvalidArgument = errors.New("queue: item must not be nil")
)

// nilable reports whether values of T can be nil.
func nilable[T any]() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}

// isNil reports whether item is nil. Only called when nilable[T]() holds.
func isNil[T any](item T) bool {
	v := reflect.ValueOf(any(item))
	if !v.IsValid() {
		// nil interface
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
