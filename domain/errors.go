package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies expected business failures. Anything else that
// comes out of a service is an infrastructure fault.
type ErrorKind string

const (
	KindNotFound           ErrorKind = "not_found"
	KindAlreadyExists      ErrorKind = "already_exists"
	KindNotAllowed         ErrorKind = "not_allowed"
	KindInactive           ErrorKind = "inactive"
	KindInvalidFields      ErrorKind = "invalid_fields"
	KindInvalidCredentials ErrorKind = "invalid_credentials"
	KindAuthGoogle         ErrorKind = "auth_google"
)

// Error is the uniform failure value returned by every service for
// expected business conditions. Resource names the entity or field the
// failure concerns; transport maps Kind to an HTTP status.
type Error struct {
	Kind     ErrorKind
	Resource string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s not found", e.Resource)
	case KindAlreadyExists:
		return fmt.Sprintf("%s already exists", e.Resource)
	case KindNotAllowed:
		return fmt.Sprintf("not allowed to access %s", e.Resource)
	case KindInactive:
		return fmt.Sprintf("%s is inactive", e.Resource)
	case KindInvalidFields:
		return fmt.Sprintf("invalid field: %s", e.Resource)
	case KindInvalidCredentials:
		return "invalid credentials"
	case KindAuthGoogle:
		return "account registered with Google, use Google login"
	}
	return string(e.Kind)
}

// Is lets errors.Is match by kind and resource. A target with an empty
// Resource matches any resource of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind && (t.Resource == "" || e.Resource == t.Resource)
}

func NewNotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Resource: resource}
}

func NewAlreadyExists(resource string) *Error {
	return &Error{Kind: KindAlreadyExists, Resource: resource}
}

func NewNotAllowed(resource string) *Error {
	return &Error{Kind: KindNotAllowed, Resource: resource}
}

func NewInactive(resource string) *Error {
	return &Error{Kind: KindInactive, Resource: resource}
}

func NewInvalidFields(field string) *Error {
	return &Error{Kind: KindInvalidFields, Resource: field}
}

func NewInvalidCredentials(resource string) *Error {
	return &Error{Kind: KindInvalidCredentials, Resource: resource}
}

func NewAuthGoogle(resource string) *Error {
	return &Error{Kind: KindAuthGoogle, Resource: resource}
}

// AsError reports whether err is an expected business failure.
func AsError(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
