package scheduling

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("connection refused")

	assert.Equal(t, "invalid date", NewParseError("invalid date", nil).Error())
	assert.Equal(t, "booking starts before business opening time 10:00:00",
		NewPolicyViolation("booking starts before business opening time 10:00:00").Error())
	assert.Equal(t, "failed to query free/busy: connection refused",
		NewProviderError("failed to query free/busy", cause).Error())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindParse, KindOf(NewParseError("bad input", nil)))
	assert.Equal(t, KindPolicy, KindOf(NewPolicyViolation("outside hours")))
	assert.Equal(t, KindProvider, KindOf(NewProviderError("backend down", errors.New("x"))))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindOf_ThroughWrapping(t *testing.T) {
	inner := NewPolicyViolation("outside hours")
	wrapped := fmt.Errorf("handling request: %w", inner)

	assert.Equal(t, KindPolicy, KindOf(wrapped))

	var e *Error
	require.True(t, errors.As(wrapped, &e))
	assert.Equal(t, "outside hours", e.Message)
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := NewProviderError("failed to list events", cause)

	assert.True(t, errors.Is(err, cause))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "parse_error", KindParse.String())
	assert.Equal(t, "policy_violation", KindPolicy.String())
	assert.Equal(t, "provider_error", KindProvider.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
