package result

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Success(t *testing.T) {
	// Act
	res := Success(42)

	// Assert
	assert.True(t, res.IsSuccess())
	assert.False(t, res.IsFailure())
	assert.Equal(t, 42, res.Value())
}

func TestResult_Failure(t *testing.T) {
	// Arrange
	err := NotFound("Test.NotFound", "not found")

	// Act
	res := Failure[int](err)

	// Assert
	assert.True(t, res.IsFailure())
	assert.Equal(t, "Test.NotFound", res.Error().Code)
	assert.Equal(t, TypeNotFound, res.Error().Type)
}

func TestResult_ValueOnFailurePanics(t *testing.T) {
	res := Failure[string](Conflict("Test.Conflict", "conflict"))

	assert.Panics(t, func() {
		_ = res.Value()
	})
}

func TestResult_ErrorOnSuccessPanics(t *testing.T) {
	res := Success("ok")

	assert.Panics(t, func() {
		_ = res.Error()
	})
}

func TestResult_FailureWithNilErrorPanics(t *testing.T) {
	assert.Panics(t, func() {
		Failure[int](nil)
	})
}

func TestResult_Match(t *testing.T) {
	var got int
	var gotErr *Error

	Success(7).Match(
		func(v int) { got = v },
		func(e *Error) { gotErr = e },
	)
	assert.Equal(t, 7, got)
	assert.Nil(t, gotErr)

	Failure[int](ErrNullValue).Match(
		func(v int) { got = -1 },
		func(e *Error) { gotErr = e },
	)
	assert.Equal(t, 7, got)
	require.NotNil(t, gotErr)
	assert.Equal(t, "General.Null", gotErr.Code)
}

func TestResult_OkAndFail(t *testing.T) {
	assert.True(t, Ok().IsSuccess())
	assert.True(t, Fail(Problem("Test.Problem", "bad")).IsFailure())
}

func TestNewValidationError(t *testing.T) {
	// Arrange
	fieldErrors := []Error{
		*Validation("Items.PageSize", "page size out of range"),
		*Validation("Items.SortField", "unknown sort field"),
	}

	// Act
	err := NewValidationError(fieldErrors)

	// Assert
	assert.Equal(t, "General.Validation", err.Code)
	assert.Equal(t, TypeValidation, err.Type)
	assert.Len(t, err.Errors, 2)
	assert.Contains(t, err.Error(), "Items.PageSize")
}

func TestError_StatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"not found", NotFound("X.NotFound", ""), http.StatusNotFound},
		{"conflict", Conflict("X.Conflict", ""), http.StatusConflict},
		{"validation", Validation("X.Validation", ""), http.StatusBadRequest},
		{"problem", Problem("X.Problem", ""), http.StatusBadRequest},
		{"null value", ErrNullValue, http.StatusBadRequest},
		{"failure", NewError("X.Failure", ""), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}
