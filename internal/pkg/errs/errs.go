package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound          = errors.New("object not found")
	ErrValueIsInvalid          = errors.New("value is invalid")
	ErrValueIsOutOfRange       = errors.New("value is out of range")
	ErrValueIsRequired         = errors.New("value is required")
	ErrPersistenceUnavailable  = errors.New("persistence is unavailable")
	ErrPresentationUnavailable = errors.New("presentation surface is unavailable")
	ErrActionNotConfirmed      = errors.New("action was not confirmed")
)

// sanitize flattens values that end up in log lines and API responses.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// ObjectNotFoundError reports a lookup by identifier that matched nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that violates a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// PersistenceUnavailableError reports a failed load or save of a storage key.
// It is never fatal: loads fall back to defaults and saves are logged.
type PersistenceUnavailableError struct {
	Key   string
	Cause error
}

func NewPersistenceUnavailableError(key string, cause error) *PersistenceUnavailableError {
	return &PersistenceUnavailableError{Key: key, Cause: cause}
}

func (e *PersistenceUnavailableError) Error() string {
	return withCause(fmt.Sprintf("%s: key %s", ErrPersistenceUnavailable, e.Key), e.Cause)
}

func (e *PersistenceUnavailableError) Unwrap() error {
	return ErrPersistenceUnavailable
}

// PresentationUnavailableError reports that a display or print surface could not be opened.
type PresentationUnavailableError struct {
	Surface string
	Cause   error
}

func NewPresentationUnavailableError(surface string, cause error) *PresentationUnavailableError {
	return &PresentationUnavailableError{Surface: surface, Cause: cause}
}

func (e *PresentationUnavailableError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrPresentationUnavailable, e.Surface), e.Cause)
}

func (e *PresentationUnavailableError) Unwrap() error {
	return ErrPresentationUnavailable
}

// ActionNotConfirmedError is returned by destructive bulk operations whose
// confirmation gate was not satisfied.
type ActionNotConfirmedError struct {
	Action string
}

func NewActionNotConfirmedError(action string) *ActionNotConfirmedError {
	return &ActionNotConfirmedError{Action: action}
}

func (e *ActionNotConfirmedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrActionNotConfirmed, e.Action)
}

func (e *ActionNotConfirmedError) Unwrap() error {
	return ErrActionNotConfirmed
}
