package apierrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategories(t *testing.T) {
	biz := NewBusinessError(ErrCodeProductNotFound, "Product not found", nil)
	app := NewApplicationError(ErrCodeDatabaseAccess, "Failed to read product catalog", nil)

	assert.Equal(t, CategoryBusiness, biz.Category)
	assert.True(t, biz.IsBusiness())
	assert.Equal(t, CategoryApplication, app.Category)
	assert.False(t, app.IsBusiness())
}

func TestAppError_WrapsCause(t *testing.T) {
	cause := errors.New("open products.json: no such file")
	appErr := NewApplicationError(ErrCodeDatabaseAccess, "Failed to read product catalog", cause).
		WithContext("file_path", "products.json")

	wrapped := fmt.Errorf("load: %w", appErr)

	var target *AppError
	assert.ErrorAs(t, wrapped, &target)
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, "products.json", target.Context["file_path"])
	assert.Contains(t, appErr.Error(), "Cause=open products.json")
}
