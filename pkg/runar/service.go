package runar

import "reflect"

// TypeID identifies the concrete type of a service.
type TypeID struct {
	t reflect.Type
}

// TypeOf returns the TypeID of T
func TypeOf[T any]() TypeID {
	return TypeID{t: reflect.TypeFor[T]()}
}

// IsZero reports whether the id does not name any type
func (id TypeID) IsZero() bool {
	return id.t == nil
}

// String returns the Go spelling of the type
func (id TypeID) String() string {
	if id.t == nil {
		return "<nil>"
	}
	return id.t.String()
}

// ServiceRef is a type-erased handle to a service instance. It carries the
// type tag alongside the untyped value so handlers can perform a checked
// downcast.
type ServiceRef struct {
	typ   TypeID
	value any
}

// NewServiceRef wraps svc into a ServiceRef tagged with its dynamic type
func NewServiceRef(svc any) ServiceRef {
	return ServiceRef{
		typ:   TypeID{t: reflect.TypeOf(svc)},
		value: svc,
	}
}

// Type returns the type tag of the referenced service
func (r ServiceRef) Type() TypeID {
	return r.typ
}

// Value returns the untyped service instance
func (r ServiceRef) Value() any {
	return r.value
}

// Downcast recovers the concrete service from ref. A reference holding any
// other type yields a *TypeMismatchError and the zero T.
func Downcast[T any](ref ServiceRef) (T, error) {
	svc, ok := ref.value.(T)
	if !ok {
		var zero T
		return zero, &TypeMismatchError{
			Expected: TypeOf[T](),
			Actual:   ref.typ,
		}
	}
	return svc, nil
}
