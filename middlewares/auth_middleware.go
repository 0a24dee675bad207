package middlewares

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-ordering/services"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
	ctxToken  = "token"

	LoginPath = "/login"
)

// LoginRedirect is where an anonymous request is sent, with a way back to path.
func LoginRedirect(path string) string {
	return LoginPath + "?next=" + url.QueryEscape(path)
}

// AbortUnauthorized stops the chain with 401 and a login redirect.
func AbortUnauthorized(c *gin.Context, reason string) {
	utils.RespondRedirect(c, http.StatusUnauthorized, reason, LoginRedirect(c.Request.URL.RequestURI()), nil)
	c.Abort()
}

// RequireAuth accepts "Authorization: Bearer <jwt>" or a ?token= query parameter.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			AbortUnauthorized(c, "login required")
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			AbortUnauthorized(c, err.Error())
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Set(ctxToken, tokenString)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if !strings.HasPrefix(header, "Bearer ") {
			return ""
		}
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return c.Query("token")
}

// CurrentPrincipal returns the principal attached by RequireAuth, or the anonymous zero value.
func CurrentPrincipal(c *gin.Context) services.Principal {
	userID, _ := c.Get(ctxUserID)
	role, _ := c.Get(ctxRole)

	id, _ := userID.(uint)
	r, _ := role.(string)
	return services.Principal{UserID: id, Role: r}
}

// CurrentToken returns the raw token of an authenticated request.
func CurrentToken(c *gin.Context) string {
	return c.GetString(ctxToken)
}
