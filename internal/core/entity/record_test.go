package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcnursery/internal/core/apperror"
	"tcnursery/internal/core/id"
)

type stage string

func TestNewRecord(t *testing.T) {
	r := NewRecord()

	assert.False(t, id.IsNil(r.ID))
	assert.Equal(t, 1, r.Version)
	assert.Equal(t, r.CreatedAt, r.UpdatedAt)

	r.Touch()
	assert.Equal(t, 2, r.Version)
	assert.False(t, r.UpdatedAt.Before(r.CreatedAt))
	assert.Same(t, &r, r.Base())
}

func TestRequireDate(t *testing.T) {
	require.NoError(t, RequireDate("date", "2024-11-15"))

	err := RequireDate("date", "")
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)

	err = RequireDate("date", "15/11/2024")
	appErr, ok = apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	assert.Equal(t, "date", appErr.Details["field"])
}

func TestRequireOneOf(t *testing.T) {
	assert.NoError(t, RequireOneOf("stage", stage("rooting"), "initiation", "rooting"))
	assert.Error(t, RequireOneOf("stage", stage("flowering"), "initiation", "rooting"))
}

func TestRequireNonNegative(t *testing.T) {
	assert.NoError(t, RequireNonNegative("bottles", 0))
	assert.Error(t, RequireNonNegative("bottles", -1))
}
