package errors

import (
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesExistingAppError(t *testing.T) {
	original := New(CodeResourceNotFound, "cluster missing")
	wrapped := Wrap(fmt.Errorf("outer: %w", original), CodePlatformAPIError, "call failed")

	assert.Same(t, original, wrapped)
	assert.Equal(t, CodeResourceNotFound, GetCode(wrapped))
}

func TestWrapPlainError(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	wrapped := Wrap(cause, CodePlatformAPIError, "listing clusters failed")

	require.NotNil(t, wrapped)
	assert.Equal(t, CodePlatformAPIError, wrapped.Code)
	assert.True(t, stderrs.Is(wrapped, cause))
	assert.Contains(t, wrapped.Error(), "listing clusters failed")
	assert.Contains(t, wrapped.Error(), "connection reset")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, CodeInternal, "ignored"))
	assert.Nil(t, WrapUserFacing(nil, CodeInternal, "ignored", ""))
}

func TestGetCodeFallsBackToUnknown(t *testing.T) {
	assert.Equal(t, CodeUnknown, GetCode(fmt.Errorf("plain")))
	assert.Equal(t, CodeConfigValidation, GetCode(New(CodeConfigValidation, "bad config")))
}

func TestIs(t *testing.T) {
	err := New(CodeResolutionFailed, "nothing resolved")
	assert.True(t, Is(err, CodeResolutionFailed))
	assert.False(t, Is(err, CodeInternal))
	assert.False(t, Is(fmt.Errorf("plain"), CodeInternal))
}

func TestGetUserFacingMessage(t *testing.T) {
	msg, suggestion, ok := GetUserFacingMessage(NewUserFacing(CodeConfigValidation, "Project name missing.", "Set project.name."))
	assert.True(t, ok)
	assert.Equal(t, "Project name missing.", msg)
	assert.Equal(t, "Set project.name.", suggestion)

	_, _, ok = GetUserFacingMessage(New(CodeInternal, "internal detail"))
	assert.False(t, ok)

	// A user-facing wrapper surfaces even when the outer error is not.
	inner := NewUserFacing(CodeConfigValidation, "Bad detection mode.", "Use auto, env, tags or naming.")
	outer := WrapUserFacing(inner, CodeConfigParseError, "Could not load configuration.", "Check the config file.")
	msg, _, ok = GetUserFacingMessage(outer)
	assert.True(t, ok)
	assert.Equal(t, "Could not load configuration.", msg)
}
