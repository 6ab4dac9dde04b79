package middleware

import (
	"github.com/labstack/echo/v4"

	apperrors "checklist.com/daily-checklist/internal/errors"
	"checklist.com/daily-checklist/pkg/constants"
	model "checklist.com/daily-checklist/pkg/models"
)

// RequireAdmin rejects the request unless the current identity has the admin
// role.
func RequireAdmin(currentUser func() model.User) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if currentUser().Role != constants.RoleAdmin {
				return echo.NewHTTPError(apperrors.StatusCode(apperrors.ErrPermissionDenied), apperrors.ErrPermissionDenied.Error())
			}
			return next(c)
		}
	}
}
