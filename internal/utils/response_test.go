// internal/utils/response_test.go
package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/stamperia/stamperia-backend/internal/apperrors"
)

func respond(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondError(c, err)
	return w
}

func TestRespondErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{apperrors.Validation("Comment is required when rejecting a design"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{apperrors.NotFound("Design not found"), http.StatusNotFound, "NOT_FOUND"},
		{apperrors.Forbidden("Unauthorized to view this design"), http.StatusForbidden, "FORBIDDEN"},
		{apperrors.InvalidState("Only pending designs can be reviewed"), http.StatusConflict, "INVALID_STATE"},
		{apperrors.Invariant("No approval review found"), http.StatusInternalServerError, "INVARIANT_VIOLATION"},
	}

	for _, tc := range cases {
		w := respond(tc.err)
		assert.Equal(t, tc.status, w.Code, "error %v", tc.err)
		assert.Contains(t, w.Body.String(), tc.code)
		assert.Contains(t, w.Body.String(), tc.err.Error())
	}
}

func TestRespondErrorOpaqueInternal(t *testing.T) {
	w := respond(errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Raw driver errors never leak to the client.
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Contains(t, w.Body.String(), "Internal server error")
}
