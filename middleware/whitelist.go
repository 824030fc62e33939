package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// DomainWhitelistMiddleware rejects requests whose Host is not listed.
// An empty list allows every host.
func DomainWhitelistMiddleware(allowedDomains []string, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(allowedDomains) == 0 {
			c.Next()
			return
		}

		host := c.Request.Host
		for _, domain := range allowedDomains {
			if strings.EqualFold(domain, host) {
				c.Next()
				return
			}
		}

		logger.Warn().Str("host", host).Msg("host not allowed")
		c.AbortWithStatusJSON(http.StatusForbidden, Message{
			Status: "Request Failed",
			Error:  "Permission denied",
		})
	}
}
