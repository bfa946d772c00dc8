package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ruralcrm/taskboard/shared/domain"
	internal_errors "github.com/ruralcrm/taskboard/shared/errors"
	jwt_internal "github.com/ruralcrm/taskboard/shared/jwt"
	"github.com/ruralcrm/taskboard/shared/logger"
	"github.com/ruralcrm/taskboard/shared/utils"
)

// Key to store the resolved tenant in the request context
type key int

const TenantClaimsKey key = 0

// Auth holds dependencies for the tenant-resolution middleware. Token issuing
// lives in the external auth system; this side only verifies and extracts.
type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// RequireTenant returns middleware that rejects requests without a resolvable
// tenant identity.
func (a *Auth) RequireTenant() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tenant, err := a.extractTenant(r)
			if err != nil {
				switch err {
				case errNoToken:
					utils.WriteError(w, &internal_errors.ErrorWithStatusCode{Message: "Authentication required", StatusCode: http.StatusUnauthorized})
				case errInvalidClaims:
					logger.Log.Error("jwt token without tenant claims")
					utils.WriteError(w, &internal_errors.ErrorWithStatusCode{Message: "Invalid token", StatusCode: http.StatusUnauthorized})
				default:
					utils.WriteError(w, err)
				}
				return
			}

			ctx := context.WithValue(r.Context(), TenantClaimsKey, tenant)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractTenant extracts and validates the tenant from the JWT in the request.
func (a *Auth) extractTenant(r *http.Request) (*domain.Tenant, error) {
	// Cookie first (browser clients), then Authorization header (API clients)
	var tokenString string
	accessCookie, err := r.Cookie("accessToken")
	if err == nil {
		tokenString = accessCookie.Value
	} else if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		tokenString = token
	}

	if tokenString == "" {
		return nil, errNoToken
	}

	token, err := a.jwtService.DecodeToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errInvalidClaims
	}

	tenantId, ok := claims["tid"].(string)
	if !ok || tenantId == "" {
		return nil, errInvalidClaims
	}

	advisorId, _ := claims["sub"].(string)

	return &domain.Tenant{Id: tenantId, AdvisorId: advisorId}, nil
}

var (
	errNoToken       = errorString("no token")
	errInvalidClaims = errorString("invalid claims")
)

type errorString string

func (e errorString) Error() string { return string(e) }

// GetTenantFromContext retrieves the resolved tenant from the context
func GetTenantFromContext(r *http.Request) *domain.Tenant {
	tenant, ok := r.Context().Value(TenantClaimsKey).(*domain.Tenant)
	if !ok {
		return nil
	}
	return tenant
}
