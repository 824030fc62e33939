package middleware

import (
	"net/http"
	"time"

	"github.com/didip/tollbooth"
	"github.com/didip/tollbooth/limiter"
	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware allows maxRequests per minute per client IP.
// A non-positive maxRequests disables the limit.
func RateLimitMiddleware(maxRequests float64) gin.HandlerFunc {
	if maxRequests <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	perSecond := maxRequests / 60.0
	lmt := tollbooth.NewLimiter(perSecond, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Minute})
	lmt.SetBurst(int(maxRequests))
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})

	return func(c *gin.Context) {
		if httpError := tollbooth.LimitByRequest(lmt, c.Writer, c.Request); httpError != nil {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, Message{
				Status: "Request Failed",
				Error:  "The service is at capacity, try again later.",
			})
			return
		}
		c.Next()
	}
}

// Message is the JSON body of a rejected request. Error uses the same key as
// the compression endpoint so clients render it the same way.
type Message struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}
