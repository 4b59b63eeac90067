package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worklane/hrms-backend-go/internal/domain/employee"
	"github.com/worklane/hrms-backend-go/internal/handler/http/response"
)

func requireRole(role employee.Role, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, string(role)+" access required")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok || employee.Role(roleStr) != role {
			response.Forbidden(w, string(role)+" access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireManager requires the Manager role
func RequireManager(next http.Handler) http.Handler {
	return requireRole(employee.RoleManager, next)
}

// RequireHR requires the HR role
func RequireHR(next http.Handler) http.Handler {
	return requireRole(employee.RoleHR, next)
}
