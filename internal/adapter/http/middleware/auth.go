package middleware

import (
	"net/http"
	"strings"

	"trade_credit/internal/domain/entities"
	"trade_credit/pkg"

	"github.com/gin-gonic/gin"
)

const callerKey = "caller"

var errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid bearer token", http.StatusUnauthorized)

// TokenValidator turns a bearer token into the caller identity.
type TokenValidator interface {
	ValidateToken(token string) (entities.Caller, error)
}

// Auth requires an "Authorization: Bearer <jwt>" header and stores the caller
// in the gin context.
func Auth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}

		caller, err := validator.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}

		SetCaller(c, caller)
		c.Next()
	}
}

func SetCaller(c *gin.Context, caller entities.Caller) {
	c.Set(callerKey, caller)
}

// CallerFrom returns the authenticated caller, or false outside Auth.
func CallerFrom(c *gin.Context) (entities.Caller, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return entities.Caller{}, false
	}
	caller, ok := v.(entities.Caller)
	return caller, ok
}
