package validation

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Binder extends echo's default binder to read query parameters on every
// method, so a POST may carry its fields in the URL, the body or both.
// Body values win over query values.
type Binder struct {
	echo.DefaultBinder
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	if err := b.BindPathParams(c, i); err != nil {
		return err
	}

	if err := b.BindQueryParams(c, i); err != nil {
		return err
	}

	method := c.Request().Method
	if method == http.MethodGet || method == http.MethodDelete || method == http.MethodHead {
		return nil
	}
	return b.BindBody(c, i)
}
