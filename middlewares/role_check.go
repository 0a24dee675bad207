package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-ordering/services"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

// Require gates a route on a capability that does not depend on a resource owner.
// Mount it after RequireAuth.
func Require(can services.Capability, denied string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := CurrentPrincipal(c)
		if !p.Authenticated() {
			AbortUnauthorized(c, "login required")
			return
		}
		if !can(p, 0) {
			utils.RespondError(c, http.StatusForbidden, errString(denied))
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return Require(services.AdminOnly, "admin access required")
}

type errString string

func (e errString) Error() string { return string(e) }
