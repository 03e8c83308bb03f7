// Package middleware carries the gin middleware shared by all routes.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resto_requests/internal/domain/entities"
	"resto_requests/internal/infrastructure/auth"
	"resto_requests/internal/infrastructure/logger"
	"resto_requests/internal/usecase"
	"resto_requests/pkg"
)

const profileContextKey = "currentProfile"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)

// Identity authenticates the request and injects the stored user profile
// into the gin context. The profile is resolved fresh on every request; role
// and active restaurant can change between requests and nothing here caches
// them.
func Identity(profiles usecase.IProfileUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims, err := auth.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		profile, err := profiles.ResolveIdentity(c.Request.Context(), claims.UID, claims.Email, claims.DisplayName)
		if err != nil {
			logger.Errorf("[identity][middleware] profile resolution failed uid=%s err=%v", claims.UID, err)
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(profileContextKey, profile)
		c.Next()
	}
}

// CurrentProfile returns the profile Identity stored for this request.
func CurrentProfile(c *gin.Context) (entities.UserProfile, bool) {
	v, ok := c.Get(profileContextKey)
	if !ok {
		return entities.UserProfile{}, false
	}
	profile, ok := v.(entities.UserProfile)
	return profile, ok
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
