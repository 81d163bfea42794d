package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_PreservesCode(t *testing.T) {
	base := ConfigInvalid("BENCH_TRAIN_SIZE must be positive")
	wrapped := Wrap(base, "loading configuration")

	assert.Equal(t, CodeConfigInvalid, GetCode(wrapped))
	assert.True(t, stderrors.Is(wrapped, base))
	assert.Contains(t, wrapped.Error(), "loading configuration")
}

func TestWrap_PlainErrorGetsInternalCode(t *testing.T) {
	wrapped := Wrap(fmt.Errorf("boom"), "running benchmark")
	assert.Equal(t, CodeInternalError, GetCode(wrapped))
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "nothing happened"))
}

func TestDatabaseError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := DatabaseError("failed to connect to postgres", cause)

	assert.Equal(t, CodeDatabaseError, GetCode(err))
	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, "failed to connect to postgres: connection refused", err.Error())
}

func TestGetCode_UnknownForPlainError(t *testing.T) {
	assert.Equal(t, "UNKNOWN", GetCode(fmt.Errorf("boom")))
}
