package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrConfigInvalid, "invalid tauri configuration")
	assert.Equal(t, "[CONFIG_INVALID] invalid tauri configuration", err.Error())

	wrapped := Wrap(fmt.Errorf("boom"), ErrDotCargoLoad, "failed to load .cargo/config.toml")
	assert.Equal(t, "[DOT_CARGO_LOAD] failed to load .cargo/config.toml: boom", wrapped.Error())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrDotCargoLoad, "x"))
	assert.Nil(t, Wrapf(nil, ErrDotCargoLoad, "x %d", 1))
}

func TestIsMatchesByCode(t *testing.T) {
	err := Wrap(fmt.Errorf("underlying"), ErrAndroidInit, "failed to generate Android project")

	assert.True(t, stderrors.Is(err, New(ErrAndroidInit, "anything")))
	assert.False(t, stderrors.Is(err, New(ErrIosInit, "anything")))
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := Wrap(cause, ErrAssetDirCreation, "failed to create asset dir")

	assert.ErrorIs(t, err, cause)
}

func TestWithDetail(t *testing.T) {
	err := New(ErrAssetDirCreation, "failed to create asset dir").
		WithDetail("path", "/tmp/assets")
	assert.Equal(t, "/tmp/assets", err.Details["path"])
}

func TestCodeOf(t *testing.T) {
	err := New(ErrHostTripleDetection, "no rustc")
	require.Equal(t, ErrHostTripleDetection, CodeOf(err))

	wrapped := fmt.Errorf("outer: %w", err)
	assert.Equal(t, ErrHostTripleDetection, CodeOf(wrapped))

	assert.Equal(t, ErrUnknown, CodeOf(fmt.Errorf("plain")))
}
