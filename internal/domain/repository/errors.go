package repository

import "errors"

// ErrorClass is the kind of failure reported by storage.
type ErrorClass string

const (
	ClassUnknown    ErrorClass = "unknown"
	ClassConstraint ErrorClass = "constraint"
	ClassPermission ErrorClass = "permission"
	ClassTransport  ErrorClass = "transport"
	ClassNotFound   ErrorClass = "not_found"
)

// StoreError carries the backend message verbatim plus its class.
type StoreError struct {
	Class   ErrorClass
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ClassOf returns the class of err, or ClassUnknown when err is not a StoreError.
func ClassOf(err error) ErrorClass {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Class
	}
	return ClassUnknown
}
