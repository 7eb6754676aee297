package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scratchie/onboarding-flow/internal/api/middleware"
	"github.com/scratchie/onboarding-flow/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Session middleware. A
// missing identity means the route was mounted without it.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusInternalServerError, "missing session identity")
	}
	return id, nil
}
