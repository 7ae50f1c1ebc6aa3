package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(CodeStorage, cause, "create customer")

	require.Error(t, err)
	assert.Equal(t, CodeStorage, err.Code())
	assert.Equal(t, cause, err.Unwrap())
	assert.Equal(t, "STORAGE_ERROR: create customer", err.Error())
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeNotFound, CodeOf(New(CodeNotFound, "customer not found")))
	assert.Equal(t, CodeInternal, CodeOf(fmt.Errorf("plain error")))
	assert.Equal(t, Code(""), CodeOf(nil))

	// The code survives further wrapping by callers.
	wrapped := fmt.Errorf("loading dashboard: %w", New(CodeValidation, "bad input"))
	assert.Equal(t, CodeValidation, CodeOf(wrapped))
	assert.True(t, IsValidation(wrapped))
}

func TestWithDetails(t *testing.T) {
	err := New(CodeValidation, "validation failed").WithDetails(map[string]string{"name": "is required"})
	details, ok := err.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "is required", details["name"])
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	meta := MetadataFor(Code("NO_SUCH_CODE"))
	assert.Equal(t, metadataByCode[CodeInternal], meta)
}
