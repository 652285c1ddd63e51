package middleware

import (
	"crypto/subtle"
	"strings"

	domainerr "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// APIToken admits only requests carrying "Authorization: Bearer <token>"
// An empty token admits nobody
func APIToken(token string) gin.HandlerFunc {
	expected := []byte(token)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if token == "" || !strings.HasPrefix(header, bearerPrefix) ||
			subtle.ConstantTimeCompare([]byte(strings.TrimPrefix(header, bearerPrefix)), expected) != 1 {
			_ = c.Error(domainerr.ErrUnauthenticated)
			c.Abort()
			return
		}
		c.Next()
	}
}
