// internal/i18n/i18n_test.go
package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslations(t *testing.T) {
	require.NoError(t, Initialize("./locales"))

	assert.Equal(t, "Design submitted for review", T("en", KeyDesignCreated))
	assert.Equal(t, "Diseño enviado a revisión", T("es", KeyDesignCreated))

	// Unknown languages fall back to English.
	assert.Equal(t, "Design submitted for review", T("fr", KeyDesignCreated))

	// Unknown keys come back verbatim so missing entries are visible.
	assert.Equal(t, "no.such.key", T("en", "no.such.key"))

	// Placeholder interpolation.
	assert.Equal(t, "Invalid input", T("en", KeyValidationInvalid, "input"))
}
