package dispatch

import (
	"errors"
	"fmt"
)

// Kind identifies one failure category in the closed taxonomy produced by
// this package. Kinds are assigned once per failure and never change.
type Kind int

const (
	// KindUnclassified covers responses that match neither an explicit
	// HTTP status nor an application error-code band.
	KindUnclassified Kind = iota
	// KindConfiguration reports invalid construction input. It is raised
	// from constructors only, never from Send.
	KindConfiguration
	// KindNotResponding reports a timeout waiting for the response.
	KindNotResponding
	// KindNetworkUnavailable reports a connection-level failure before any
	// response was received.
	KindNetworkUnavailable
	// KindDecode reports a response body that is not valid JSON. This is
	// fatal protocol incompatibility, not an application error.
	KindDecode
	KindBadRequest
	KindSignatureInvalid
	KindFingerprintInvalid
	KindValidationFailed
	KindServerFault
	KindRemoteInternal
	KindPaymentRejected
	KindAuthenticationFailed
)

var kindNames = map[Kind]string{
	KindUnclassified:         "unclassified error",
	KindConfiguration:        "configuration error",
	KindNotResponding:        "api not responding",
	KindNetworkUnavailable:   "network unavailable",
	KindDecode:               "response decode error",
	KindBadRequest:           "bad request",
	KindSignatureInvalid:     "invalid signature",
	KindFingerprintInvalid:   "invalid fingerprint",
	KindValidationFailed:     "validation failed",
	KindServerFault:          "server fault",
	KindRemoteInternal:       "remote internal error",
	KindPaymentRejected:      "payment rejected",
	KindAuthenticationFailed: "authentication failed",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is the typed failure surfaced for every unsuccessful API call.
// Kind is the classification tag; HTTPStatus, AppErrorCode and Body carry
// the raw response for caller inspection. CodePresent distinguishes an
// errorCode of zero from an absent one.
type Error struct {
	Kind         Kind
	HTTPStatus   int
	AppErrorCode int64
	CodePresent  bool
	Body         map[string]any

	cause error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.HTTPStatus != 0 {
		msg = fmt.Sprintf("%s: http status %d", msg, e.HTTPStatus)
	}
	if e.CodePresent {
		msg = fmt.Sprintf("%s, errorCode %d", msg, e.AppErrorCode)
	}
	if m := e.Message(); m != "" {
		msg += ": " + m
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.cause }

// Message extracts the human-readable message field from the response body,
// if the server supplied one.
func (e *Error) Message() string {
	if e.Body == nil {
		return ""
	}
	switch m := e.Body["message"].(type) {
	case string:
		return m
	case map[string]any:
		return fmt.Sprintf("%v", m)
	}
	return ""
}

// IsKind reports whether err is a dispatch Error of the given kind.
func IsKind(err error, k Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == k
}

// NewConfigError reports an invalid construction input.
func NewConfigError(format string, args ...any) *Error {
	return &Error{Kind: KindConfiguration, cause: fmt.Errorf(format, args...)}
}
