package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMyError(t *testing.T) {
	inner := errors.New("underlying")
	e := NewMyError(ErrBadParameter, "invalid input", inner)
	require.NotNil(t, e)
	assert.Equal(t, ErrBadParameter, e.Code)
	assert.Equal(t, "invalid input", e.Message)
	assert.Same(t, inner, e.Inner)
}

func TestNewInternalServerError(t *testing.T) {
	e := NewInternalServerError("db failed", nil)
	require.NotNil(t, e)
	assert.Equal(t, ErrInternalServerError, e.Code)
	assert.Equal(t, "db failed", e.Message)
}

func TestNewInternalServerError_KeepsInnerMyError(t *testing.T) {
	inner := NewEntityNotFoundError("gone", nil)
	e := NewInternalServerError("wrapper", inner)
	require.NotNil(t, e)
	// The original code survives wrapping.
	assert.Equal(t, ErrEntityNotFound, e.Code)
}

func TestNewConflictError(t *testing.T) {
	e := NewConflictError("email already registered", nil)
	require.NotNil(t, e)
	assert.Equal(t, ErrConflict, e.Code)
	assert.True(t, IsConflictError(e))
}

func TestNewUnauthenticatedError(t *testing.T) {
	e := NewUnauthenticatedError("session not found", nil)
	require.NotNil(t, e)
	assert.Equal(t, ErrUnauthenticated, e.Code)
	assert.True(t, IsUnauthenticatedError(e))
}

func TestNewInvalidUserOrPasswordError(t *testing.T) {
	e := NewInvalidUserOrPasswordError("invalid email or password", nil)
	require.NotNil(t, e)
	assert.Equal(t, ErrInvalidUserOrPassword, e.Code)
	assert.True(t, IsInvalidUserOrPasswordError(e))
}

func TestMyError_Error(t *testing.T) {
	withInner := NewMyError(ErrBadParameter, "bad", errors.New("cause"))
	assert.Equal(t, "bad_parameter bad: cause", withInner.Error())

	withoutInner := NewMyError(ErrBadParameter, "bad", nil)
	assert.Equal(t, "bad_parameter bad", withoutInner.Error())
}

func TestMyError_Unwrap(t *testing.T) {
	inner := errors.New("cause")
	e := NewMyError(ErrInternalServerError, "fail", inner)
	assert.Same(t, inner, e.Unwrap())
	assert.True(t, errors.Is(e, inner))
}

func TestToMyError_WithMyError(t *testing.T) {
	e := NewBadParameterError("bad", nil)
	got := ToMyError(e)
	require.NotNil(t, got)
	assert.Same(t, e, got)
}

func TestToMyError_Wrapped(t *testing.T) {
	e := NewEntityNotFoundError("gone", nil)
	wrapped := fmt.Errorf("lookup failed: %w", e)
	got := ToMyError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, ErrEntityNotFound, got.Code)
}

func TestToMyError_WithOrdinaryError(t *testing.T) {
	e := errors.New("plain")
	got := ToMyError(e)
	assert.Nil(t, got)
}

func TestToMyErrorCode(t *testing.T) {
	assert.Equal(t, ErrBadParameter, ToMyErrorCode(NewBadParameterError("bad", nil)))
	assert.Equal(t, "", ToMyErrorCode(errors.New("plain")))
	assert.Equal(t, "", ToMyErrorCode(nil))
}

func TestIsPredicates(t *testing.T) {
	assert.True(t, IsEntityNotFoundError(NewEntityNotFoundError("gone", nil)))
	assert.True(t, IsBadParameterError(NewBadParameterError("bad", nil)))
	assert.True(t, IsInternalServerError(NewInternalServerError("fail", nil)))
	assert.False(t, IsEntityNotFoundError(NewBadParameterError("bad", nil)))
	assert.False(t, IsBadParameterError(errors.New("plain")))
}
