package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/eximroyals/backend/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	testCases := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name: "unique violation on admin email",
			err: fmt.Errorf("failed to insert admin: %w", &pgconn.PgError{
				Code: "23505", Severity: "ERROR", TableName: "admins", ConstraintName: "admins_email_key",
			}),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "ADMIN_ALREADY_EXISTS",
			wantMessage: "Admin with this Email already exists",
		},
		{
			name: "foreign key violation on product",
			err: &pgconn.PgError{
				Code: "23503", Severity: "ERROR", TableName: "enquiries", ColumnName: "product_id",
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "ENQUIRY_NOT_FOUND",
			wantMessage: "The referenced Product does not exist",
		},
		{
			name: "not null violation",
			err: &pgconn.PgError{
				Code: "23502", Severity: "ERROR", TableName: "categories", ColumnName: "title",
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "CATEGORY_REQUIRED",
			wantMessage: "The Title is required",
		},
		{
			name:        "other postgres error",
			err:         &pgconn.PgError{Code: "53300", Severity: "FATAL"},
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_SERVER_ERROR",
			wantMessage: http.StatusText(http.StatusInternalServerError),
		},
		{
			name:        "no rows",
			err:         fmt.Errorf("lookup: %w", pgx.ErrNoRows),
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Resource not found",
		},
		{
			name:        "plain error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_SERVER_ERROR",
			wantMessage: http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			require.True(t, errors.As(HandleError(tc.err), &httpErr))

			assert.Equal(t, tc.wantStatus, httpErr.Status)
			assert.Equal(t, tc.wantCode, httpErr.Code)
			assert.Equal(t, tc.wantMessage, httpErr.Message)
		})
	}
}

func TestHandleErrorPassesHTTPErrorsThrough(t *testing.T) {
	original := errs.NewNotFoundError("Category not found with id: 9", true, nil)

	assert.Same(t, original, HandleError(original))
}

func TestMapCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, Other, MapCode("XX000"))
	assert.Equal(t, SeverityError, MapSeverity("bogus"))
}

func TestErrCodeUnwrapsDriverError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23514", Severity: "ERROR", Message: "check failed"}
	converted := ConvertPgError(pgErr)

	assert.Equal(t, CheckViolation, ErrCode(fmt.Errorf("wrap: %w", converted)))
	assert.Equal(t, Other, ErrCode(errors.New("x")))
	assert.ErrorIs(t, converted, pgErr)
}
