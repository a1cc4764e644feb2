package scheduling

import (
	"errors"
	"fmt"
)

// Kind classifies a scheduling failure. The set is closed: every error the
// engine surfaces is one of these three.
type Kind int

const (
	// KindUnknown is the zero value; it never appears on an Error built
	// through the constructors.
	KindUnknown Kind = iota

	// KindParse marks malformed date/time input. Never retried; surfaced
	// verbatim to the caller.
	KindParse

	// KindPolicy marks a booking that violates business-hour or slot
	// policy. The message names the violated bound.
	KindPolicy

	// KindProvider marks a network/auth/remote-API failure, carrying the
	// provider's reason. The engine never retries.
	KindProvider
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse_error"
	case KindPolicy:
		return "policy_violation"
	case KindProvider:
		return "provider_error"
	default:
		return "unknown"
	}
}

// Error is the tagged error reported at every operation boundary.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewParseError reports malformed date/time input.
func NewParseError(message string, cause error) *Error {
	return &Error{Kind: KindParse, Message: message, Err: cause}
}

// NewPolicyViolation reports a booking outside business hours or slot
// bounds. The message must name the violated bound.
func NewPolicyViolation(message string) *Error {
	return &Error{Kind: KindPolicy, Message: message}
}

// NewProviderError reports a failed provider call with its reason.
func NewProviderError(message string, cause error) *Error {
	return &Error{Kind: KindProvider, Message: message, Err: cause}
}

// KindOf returns the kind of err, or KindUnknown if err is not a
// scheduling error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
