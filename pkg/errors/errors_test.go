package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsMapStatuses(t *testing.T) {
	tests := []struct {
		err    *AppError
		typ    ErrorType
		status int
	}{
		{NewValidationError("bad input"), ErrorTypeValidation, http.StatusBadRequest},
		{NewNotFoundError("stock"), ErrorTypeNotFound, http.StatusNotFound},
		{NewConflictError("stock already exists"), ErrorTypeConflict, http.StatusConflict},
		{NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
		{NewDatabaseError("put", errors.New("throttled")), ErrorTypeDatabase, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.typ, tt.err.Type)
		assert.Equal(t, tt.status, tt.err.HTTPStatus)
	}
}

func TestNotFoundMessageNamesResource(t *testing.T) {
	assert.Equal(t, "stock not found", NewNotFoundError("stock").Message)
}

func TestGetAppErrorThroughWrapping(t *testing.T) {
	inner := NewConflictError("stock already exists")
	wrapped := fmt.Errorf("create failed: %w", inner)

	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeConflict, appErr.Type)
	assert.True(t, IsConflict(wrapped))
}

func TestGetAppError_PlainError(t *testing.T) {
	assert.Nil(t, GetAppError(errors.New("plain")))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("conditional check failed")
	err := NewDatabaseError("update", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "update")
}

func TestHTTPStatusDefaultsTo500(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NewNotFoundError("stock")))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))

	appErr := Wrap(NewValidationError("limit must be positive"), "list stocks")
	assert.True(t, IsValidation(appErr))
	assert.Contains(t, appErr.Error(), "list stocks")

	plain := Wrap(errors.New("socket closed"), "publish event")
	assert.True(t, IsType(plain, ErrorTypeInternal))
	assert.ErrorContains(t, plain, "publish event")
}
