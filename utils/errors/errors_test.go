package errors_test

import (
	"net/http"
	"testing"

	"github.com/muhammadheryan/user-directory/constant"
	"github.com/muhammadheryan/user-directory/utils/errors"
	"github.com/stretchr/testify/assert"
)

func TestCustomError_Defaults(t *testing.T) {
	err := errors.SetCustomError(constant.ErrNotFound)

	assert.Equal(t, "not found", err.Error())
	assert.Equal(t, http.StatusNotFound, err.ErrorHTTPCode())
	assert.Equal(t, constant.ErrNotFound, err.ErrorType())
}

func TestCustomError_MessageOverride(t *testing.T) {
	err := errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "name required")

	assert.Equal(t, "name required", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.ErrorHTTPCode())
}

func TestCustomError_OpaqueServerMessages(t *testing.T) {
	assert.Equal(t, "database error", errors.SetCustomError(constant.ErrDatabase).Error())
	assert.Equal(t, "internal error", errors.SetCustomError(constant.ErrInternal).Error())
}
