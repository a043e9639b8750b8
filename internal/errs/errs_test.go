package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	custom := "CATEGORY_NOT_FOUND"

	testCases := []struct {
		name       string
		err        *HTTPError
		wantStatus int
		wantCode   string
	}{
		{"unauthorized", NewUnauthorizedError("no", true), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", NewForbiddenError("no", false), http.StatusForbidden, "FORBIDDEN"},
		{"bad request", NewBadRequestError("bad", false, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", NewNotFoundError("gone", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{"not found custom code", NewNotFoundError("gone", true, &custom), http.StatusNotFound, custom},
		{"too many requests", NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantStatus, tc.err.Status)
			assert.Equal(t, tc.wantCode, tc.err.Code)
		})
	}
}

func TestHTTPErrorMatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("updating: %w", NewNotFoundError("Category not found with id: 3", true, nil))

	var httpErr *HTTPError
	assert.True(t, errors.As(err, &httpErr))
	assert.True(t, errors.Is(err, &HTTPError{}))
	assert.Equal(t, "Category not found with id: 3", httpErr.Error())
}

func TestWithMessageCopies(t *testing.T) {
	base := NewBadRequestError("original", false, nil, []FieldError{{Field: "email", Error: "is required"}}, nil)

	changed := base.WithMessage("changed")

	assert.Equal(t, "original", base.Message)
	assert.Equal(t, "changed", changed.Message)
	assert.Equal(t, base.Errors, changed.Errors)
}
