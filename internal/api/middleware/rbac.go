package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/futsalhub/booking-system/internal/api/handler"
	"github.com/futsalhub/booking-system/internal/core/domain"
)

// RBAC admits only sessions whose role is in allowedRoles. It must run after Auth.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(handler.ContextKeyRole).(domain.Role)
			if _, ok := allowed[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
