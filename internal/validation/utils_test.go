package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/eximroyals/backend/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactRequest struct {
	FirstName string `query:"firstName" form:"firstName" json:"firstName" validate:"required"`
	Email     string `query:"email" form:"email" json:"email" validate:"required,email"`
	ProductID string `form:"productId" json:"productId" validate:"omitempty,numeric"`
}

func (r *contactRequest) Validate() error {
	return Struct(r)
}

type customRequest struct {
	Name string `json:"name"`
}

func (r *customRequest) Validate() error {
	if r.Name == "admin" {
		return CustomValidationErrors{{Field: "name", Message: "is reserved"}}
	}
	return nil
}

func newFormContext(values url.Values) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidate(t *testing.T) {
	testCases := []struct {
		name       string
		values     url.Values
		wantFields []errs.FieldError
	}{
		{
			name:   "valid",
			values: url.Values{"firstName": {"John"}, "email": {"john@example.com"}, "productId": {"42"}},
		},
		{
			name:   "missing and malformed fields",
			values: url.Values{"email": {"not-an-email"}, "productId": {"abc"}},
			wantFields: []errs.FieldError{
				{Field: "firstName", Error: "is required"},
				{Field: "email", Error: "must be a valid email address"},
				{Field: "productId", Error: "must be a number"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var payload contactRequest
			err := BindAndValidate(newFormContext(tc.values), &payload)

			if tc.wantFields == nil {
				require.NoError(t, err)
				assert.Equal(t, "John", payload.FirstName)
				return
			}

			var httpErr *errs.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.Equal(t, tc.wantFields, httpErr.Errors)
		})
	}
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	err := BindAndValidate(c, &customRequest{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotEmpty(t, httpErr.Message)
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"admin"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	err := BindAndValidate(c, &customRequest{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "is reserved"}}, httpErr.Errors)
}

func TestBinderReadsQueryOnPost(t *testing.T) {
	e := echo.New()
	e.Binder = &Binder{}

	req := httptest.NewRequest(http.MethodPost, "/?firstName=Jane&email=jane@x.com", strings.NewReader(url.Values{"email": {"form@x.com"}}.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c := e.NewContext(req, httptest.NewRecorder())

	var payload contactRequest
	require.NoError(t, BindAndValidate(c, &payload))

	assert.Equal(t, "Jane", payload.FirstName)
	assert.Equal(t, "form@x.com", payload.Email)
}
