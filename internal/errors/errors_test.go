package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{ErrConfig, ErrTerminal, ErrRender}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code)
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	err := New(ErrConfig, "animation.fps must be between 1 and 240", "Try fps: 60")

	require.NotNil(t, err)
	assert.Equal(t, ErrConfig, err.Code)
	assert.Equal(t, "animation.fps must be between 1 and 240", err.Message)
	assert.Equal(t, "Try fps: 60", err.Suggestion)
	assert.Nil(t, err.Cause)
}

func TestError_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
		excludes []string
	}{
		{
			name:     "message only",
			err:      New(ErrRender, "Something broke", ""),
			contains: []string{"✗ Something broke"},
		},
		{
			name:     "message and suggestion",
			err:      New(ErrTerminal, "Not a terminal", "Use 'motion snapshot' instead"),
			contains: []string{"✗ Not a terminal", "Use 'motion snapshot' instead"},
		},
		{
			name: "with cause",
			err: WrapWithCode(fmt.Errorf("unexpected EOF"), ErrConfig,
				"Failed to read config file", "Check the YAML syntax"),
			contains: []string{"✗ Failed to read config file", "unexpected EOF", "Check the YAML syntax"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.err.Error()
			assert.True(t, strings.HasPrefix(out, "✗ "))
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestWrapWithCode_KeepsCodeAndCause(t *testing.T) {
	cause := fmt.Errorf("program killed")
	err := WrapWithCode(cause, ErrTerminal, "The demo stopped unexpectedly", "Try again")

	assert.Equal(t, ErrTerminal, err.Code)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, "Try again", err.Suggestion)
	assert.False(t, IsCode(err, ErrRender))
}

func TestUnwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := WrapWithCode(sentinel, ErrConfig, "bad", "fix it")

	assert.True(t, errors.Is(err, sentinel))
	assert.Equal(t, sentinel, errors.Unwrap(err))

	var target *Error
	wrapped := fmt.Errorf("outer: %w", err)
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, ErrConfig, target.Code)
}

func TestIsCode(t *testing.T) {
	err := New(ErrTerminal, "not a tty", "")

	assert.True(t, IsCode(err, ErrTerminal))
	assert.False(t, IsCode(err, ErrConfig))
	assert.True(t, IsCode(fmt.Errorf("wrapped: %w", err), ErrTerminal))
	assert.False(t, IsCode(nil, ErrTerminal))
	assert.False(t, IsCode(errors.New("plain"), ErrTerminal))
}
