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
	codes := []string{ErrConfig, ErrMount, ErrRender}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code)
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid configuration in .apex.yaml",
			suggestion: "Check your configuration file syntax",
		},
		{
			name:       "mount error",
			code:       ErrMount,
			message:    "Could not find a display surface to mount to",
			suggestion: "Run apex in an interactive terminal",
		},
		{
			name:    "no suggestion",
			code:    ErrRender,
			message: "Dashboard surface failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestError_Format(t *testing.T) {
	cause := fmt.Errorf("stdout is not a terminal")
	err := WrapWithCode(cause, ErrMount, "Could not find a display surface to mount to", "Use 'apex stream' when piping output")

	out := err.Error()
	lines := strings.Split(out, "\n")

	assert.Equal(t, "✗ Could not find a display surface to mount to", lines[0])
	assert.Contains(t, out, "\n  stdout is not a terminal\n")
	assert.Contains(t, out, "\n  Use 'apex stream' when piping output\n")
	assert.Less(t, strings.Index(out, "stdout is not"), strings.Index(out, "Use 'apex stream'"))
}

func TestError_FormatWithoutCause(t *testing.T) {
	err := New(ErrConfig, "Bad timing", "")
	assert.Equal(t, "✗ Bad timing\n", err.Error())
}

func TestWrapWithCode_Unwraps(t *testing.T) {
	cause := errors.New("broken pipe")
	err := WrapWithCode(cause, ErrRender, "Could not write feed update", "")

	assert.Equal(t, ErrRender, err.Code)
	assert.ErrorIs(t, err, cause)
}

func TestIsCode(t *testing.T) {
	mountErr := New(ErrMount, "no surface", "")
	wrapped := fmt.Errorf("bootstrap: %w", mountErr)

	assert.True(t, IsCode(mountErr, ErrMount))
	assert.True(t, IsCode(wrapped, ErrMount))
	assert.False(t, IsCode(wrapped, ErrConfig))
	assert.False(t, IsCode(errors.New("plain"), ErrMount))
	assert.False(t, IsCode(nil, ErrMount))
}
