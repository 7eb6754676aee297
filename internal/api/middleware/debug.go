package middleware

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// DebugOnly hides diagnostic routes unless the request carries debug=true or
// alwaysOn is set.
func DebugOnly(alwaysOn bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if alwaysOn || DebugRequested(c) {
				return next(c)
			}
			return echo.NewHTTPError(http.StatusNotFound, "not found")
		}
	}
}

// DebugRequested reports whether the debug query flag is on.
func DebugRequested(c echo.Context) bool {
	on, _ := strconv.ParseBool(c.QueryParam("debug"))
	return on
}
