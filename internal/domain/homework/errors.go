// internal/domain/homework/errors.go
package homework

import "fmt"

// TypeMismatchError reports a response value whose JSON shape does not
// match the API contract (e.g. "homeworks" is not a list).
type TypeMismatchError struct {
	Field string
	Cause error
}

func (e *TypeMismatchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("field %q has unexpected type: %v", e.Field, e.Cause)
	}
	return fmt.Sprintf("field %q has unexpected type", e.Field)
}

func (e *TypeMismatchError) Unwrap() error { return e.Cause }

// MissingFieldError reports a required key absent from the response.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("response is missing required field %q", e.Field)
}

// UnknownStatusError reports a status code outside the recognized set.
// It is a hard error: an unrecognized verdict has no user-facing text.
type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown homework status %q", e.Status)
}
