package apis

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// NewHTTPErrorHandler renders the 404 and 500 pages. Other client errors keep
// echo's default JSON body.
func NewHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
		}

		var rerr error
		switch {
		case code == http.StatusNotFound:
			rerr = render(c, code, "errors/404.html", nil, "Not Found")
		case code >= http.StatusInternalServerError:
			logError(c, err, "%s %s", c.Request().Method, c.Request().URL.Path)
			rerr = render(c, http.StatusInternalServerError, "errors/500.html", nil, "Internal Server Error")
		default:
			c.Echo().DefaultHTTPErrorHandler(err, c)
			return
		}

		if rerr != nil {
			c.Logger().Error(rerr)
		}
	}
}
