package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	plain := Configuration("bad page size")
	assert.Equal(t, "bad page size", plain.Error())

	cause := errors.New("dial tcp: connection refused")
	wrapped := Wrap(cause, ErrCodeStoreUnavailable, "store unreachable")
	assert.Equal(t, "store unreachable: dial tcp: connection refused", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestWrap_NilIsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrCodeInternal, "ignored %d", 1))
}

func TestCodePredicates(t *testing.T) {
	tests := []struct {
		err  error
		pred func(error) bool
	}{
		{err: Configuration("x"), pred: IsConfiguration},
		{err: InvalidPage("x"), pred: IsInvalidPage},
		{err: NotFound("x"), pred: IsNotFound},
		{err: Internal("x"), pred: IsInternal},
		{err: &AppError{Code: ErrCodeTimeout, Message: "x"}, pred: IsTimeout},
		{err: &AppError{Code: ErrCodeCanceled, Message: "x"}, pred: IsCanceled},
		{err: &AppError{Code: ErrCodeStoreUnavailable, Message: "x"}, pred: IsStoreUnavailable},
	}

	for _, tt := range tests {
		assert.True(t, tt.pred(tt.err), "%v", tt.err)
		// Predicates see through wrapping.
		assert.True(t, tt.pred(fmt.Errorf("outer: %w", tt.err)))
	}

	assert.False(t, IsNotFound(Configuration("x")))
	assert.False(t, IsConfiguration(errors.New("plain")))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrCodeInvalidPage, GetCode(InvalidPagef("page %d", 9)))
	assert.Equal(t, ErrCodeNotFound, GetCode(fmt.Errorf("wrapped: %w", NotFound("gone"))))
	assert.Equal(t, ErrorCode(""), GetCode(errors.New("plain")))
	assert.Equal(t, ErrorCode(""), GetCode(nil))
}

func TestFormattedConstructors(t *testing.T) {
	err := Configurationf("unsupported page size %d", 75)
	require.NotNil(t, err)
	assert.Equal(t, "unsupported page size 75", err.Message)
	assert.Equal(t, ErrCodeConfiguration, err.Code)
}
