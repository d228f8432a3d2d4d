package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies failures raised anywhere in the request chain.
type Kind string

const (
	KindMissingCredential Kind = "MISSING_CREDENTIAL"
	KindExpiredCredential Kind = "EXPIRED_CREDENTIAL"
	KindInvalidCredential Kind = "INVALID_CREDENTIAL"
	KindForbidden         Kind = "FORBIDDEN"
	KindRouteNotFound     Kind = "ROUTE_NOT_FOUND"
	KindUnclassified      Kind = "UNCLASSIFIED"
)

// Messages surfaced to clients for credential failures.
const (
	MsgNoCredential      = "not authorized, no token"
	MsgExpiredCredential = "not authorized, token expired"
	MsgInvalidCredential = "not authorized, token failed"
	MsgInternal          = "internal server error"
)

// DomainError standardizes application errors.
type DomainError struct {
	Kind       Kind
	Message    string
	HTTPStatus int
	Err        error
	Stack      string
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a DomainError of the same kind.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// NewDomainError constructs a DomainError and records the creation stack.
func NewDomainError(kind Kind, message string, status int, err error) *DomainError {
	return &DomainError{
		Kind:       kind,
		Message:    message,
		HTTPStatus: status,
		Err:        err,
		Stack:      string(debug.Stack()),
	}
}

// Sentinels for errors.Is checks.
var (
	ErrMissingCredential = &DomainError{Kind: KindMissingCredential}
	ErrExpiredCredential = &DomainError{Kind: KindExpiredCredential}
	ErrInvalidCredential = &DomainError{Kind: KindInvalidCredential}
	ErrForbidden         = &DomainError{Kind: KindForbidden}
	ErrRouteNotFound     = &DomainError{Kind: KindRouteNotFound}
	ErrUnclassified      = &DomainError{Kind: KindUnclassified}
)

func NewMissingCredential() error {
	return NewDomainError(KindMissingCredential, MsgNoCredential, http.StatusUnauthorized, nil)
}

func NewExpiredCredential(err error) error {
	return NewDomainError(KindExpiredCredential, MsgExpiredCredential, http.StatusUnauthorized, err)
}

func NewInvalidCredential(err error) error {
	return NewDomainError(KindInvalidCredential, MsgInvalidCredential, http.StatusUnauthorized, err)
}

func NewForbidden(message string) error {
	return NewDomainError(KindForbidden, message, http.StatusForbidden, nil)
}

// NewRouteNotFound reports an unmatched path.
func NewRouteNotFound(path string) error {
	return NewDomainError(KindRouteNotFound, fmt.Sprintf("Not Found - %s", path), http.StatusNotFound, nil)
}

// NewUnclassified wraps an unknown failure. A zero status lets ResolveStatus
// fall back to whatever the response already carries.
func NewUnclassified(err error) error {
	msg := MsgInternal
	if err != nil {
		msg = err.Error()
	}
	return NewDomainError(KindUnclassified, msg, 0, err)
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		if fiberErr.Code == fiber.StatusNotFound {
			return NewDomainError(KindRouteNotFound, fiberErr.Message, fiberErr.Code, err)
		}
		return NewDomainError(KindUnclassified, fiberErr.Message, fiberErr.Code, err)
	}
	de, _ := NewUnclassified(err).(*DomainError)
	return de
}

// Envelope is the JSON body of every failed API response.
type Envelope struct {
	Status  bool    `json:"status"`
	Message string  `json:"message"`
	Stack   *string `json:"stack"`
}

// ResolveStatus picks the outgoing status: the error's own status, else the
// status already set on the response when it is not 200, else 500.
func ResolveStatus(err *DomainError, current int) int {
	if err != nil && err.HTTPStatus != 0 {
		return err.HTTPStatus
	}
	if current != 0 && current != http.StatusOK {
		return current
	}
	return http.StatusInternalServerError
}

// NewEnvelope renders err. The stack is only exposed outside production.
func NewEnvelope(err *DomainError, production bool) Envelope {
	env := Envelope{Status: false, Message: MsgInternal}
	if err == nil {
		return env
	}
	env.Message = err.Message
	if production && err.Kind == KindUnclassified && err.HTTPStatus == 0 {
		env.Message = MsgInternal
	}
	if !production {
		stack := err.Stack
		if stack == "" {
			stack = err.Error()
		}
		env.Stack = &stack
	}
	return env
}
