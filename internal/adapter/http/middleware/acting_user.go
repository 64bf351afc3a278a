package middleware

import (
	"net/http"
	"strings"

	"workorder_engine/internal/domain/entities"
	"workorder_engine/internal/domain/permissions"
	"workorder_engine/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderUserEmail   = "X-User-Email"
	HeaderUserName    = "X-User-Name"
	HeaderUserRole    = "X-User-Role"
	HeaderUserCompany = "X-User-Company"
	HeaderClientRef   = "X-Client-Ref"

	actingUserKey = "acting_user"
)

var errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Acting user headers are missing", http.StatusUnauthorized)

// ActingUserMiddleware builds the acting user from the identity headers set by
// the gateway. An unknown role is kept as-is; it has no permissions.
func ActingUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(c.GetHeader(HeaderUserEmail))
		if email == "" {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		c.Set(actingUserKey, entities.ActingUser{
			Email:     email,
			Name:      strings.TrimSpace(c.GetHeader(HeaderUserName)),
			Role:      permissions.Role(strings.TrimSpace(c.GetHeader(HeaderUserRole))),
			Company:   strings.TrimSpace(c.GetHeader(HeaderUserCompany)),
			ClientRef: strings.TrimSpace(c.GetHeader(HeaderClientRef)),
		})
		c.Next()
	}
}

// ActingUser returns the user stored by ActingUserMiddleware.
func ActingUser(c *gin.Context) (entities.ActingUser, bool) {
	v, ok := c.Get(actingUserKey)
	if !ok {
		return entities.ActingUser{}, false
	}
	u, ok := v.(entities.ActingUser)
	return u, ok
}
