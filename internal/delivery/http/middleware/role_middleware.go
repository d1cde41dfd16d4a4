package middleware

import (
	"net/http"
	"strings"

	"medical-appointments-api/internal/domain/entity"
	"medical-appointments-api/pkg/response"
)

// RequireRole creates a middleware that checks if the account has any of the required roles
// Role is read from context (set by AuthMiddleware from JWT claims)
func RequireRole(allowed ...entity.Role) func(http.Handler) http.Handler {
	names := make([]string, len(allowed))
	for i, role := range allowed {
		names[i] = role.String()
	}
	forbidden := "No tiene permisos para realizar esta acción. Se requiere uno de estos roles: " + strings.Join(names, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "No autenticado")
				return
			}

			if !hasRole(role, allowed) {
				response.Forbidden(w, forbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func hasRole(role entity.Role, allowed []entity.Role) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleDoctor, entity.RolePatient:
		for _, a := range allowed {
			if a == role {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireDoctor admits doctors and admins
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor, entity.RoleAdmin)(next)
}

// RequireAnyRole admits every authenticated account
func RequireAnyRole(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin, entity.RoleDoctor, entity.RolePatient)(next)
}
