package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/business-doctor-api/internal/domain"
	"github.com/vfg2006/business-doctor-api/pkg/apiErrors"
)

// RoleMiddleware restricts a route to the given role IDs. It expects the auth
// middleware to have placed the claims in the context already.
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				logrus.Warning("request reached a protected route without claims")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "user is not authenticated", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.UserRoleID == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("access denied for user ID=%d, Role=%d", userClaims.UserID, userClaims.UserRoleID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "you do not have permission to access this resource", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// OperatorOnly restricts a route to operator accounts.
func OperatorOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleOperator})
}

// AllRoles allows any authenticated account.
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleOperator, domain.RoleClient})
}
