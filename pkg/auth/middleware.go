package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// StaffNameKey is the gin context key under which the staff display name is
// stored when a valid identity token accompanies the request
const StaffNameKey = "staff_name"

// OptionalIdentity extracts the staff display name from a bearer token when
// one is present. Requests without a token (or with a bad one) proceed
// normally with no identity attached; nothing is ever rejected here.
func OptionalIdentity(tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokens == nil {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}

		claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err == nil && claims.Name != "" {
			c.Set(StaffNameKey, claims.Name)
		}
		c.Next()
	}
}
