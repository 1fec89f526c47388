package availability

import (
	"errors"
	"fmt"
)

// Kind classifies availability failures for callers.
type Kind string

const (
	KindValidation      Kind = "ValidationError"
	KindInvalidDate     Kind = "InvalidDate"
	KindServiceNotFound Kind = "ServiceNotFound"
	KindRepository      Kind = "RepositoryError"
)

// Error is the typed failure returned by every availability operation.
type Error struct {
	Kind      Kind
	Message   string
	ServiceID string
	Err       error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func validationError(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func invalidDateError(value string, err error) error {
	return &Error{Kind: KindInvalidDate, Message: fmt.Sprintf("invalid date or time %q", value), Err: err}
}

func serviceNotFoundError(id string) error {
	return &Error{Kind: KindServiceNotFound, Message: fmt.Sprintf("service %s not found", id), ServiceID: id}
}

func repositoryError(what string, err error) error {
	return &Error{Kind: KindRepository, Message: what, Err: err}
}

// KindOf extracts the Kind of err, or "" if err is not an availability error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
