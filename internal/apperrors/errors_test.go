// internal/apperrors/errors_test.go
package apperrors

import (
	"testing"

	cr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := NotFound("Design not found")
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindValidation))

	// The kind survives further wrapping.
	wrapped := cr.Wrap(err, "loading design")
	assert.Equal(t, KindNotFound, KindOf(wrapped))

	// Untyped errors stay unknown.
	assert.Equal(t, KindUnknown, KindOf(cr.New("boom")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestValidationf(t *testing.T) {
	err := Validationf("Color %s is not available for this product", "purple")
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, "Color purple is not available for this product", err.Error())
}
