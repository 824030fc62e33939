package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func do(r http.Handler, host string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if host != "" {
		req.Host = host
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitMiddleware(t *testing.T) {
	r := newEngine(RateLimitMiddleware(2))

	assert.Equal(t, http.StatusOK, do(r, "").Code)
	assert.Equal(t, http.StatusOK, do(r, "").Code)

	rec := do(r, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	r := newEngine(RateLimitMiddleware(0))
	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, do(r, "").Code)
	}
}

func TestDomainWhitelistMiddleware(t *testing.T) {
	r := newEngine(DomainWhitelistMiddleware([]string{"upload.example.org"}, zerolog.Nop()))

	assert.Equal(t, http.StatusOK, do(r, "UPLOAD.example.org").Code)
	assert.Equal(t, http.StatusForbidden, do(r, "evil.example.org").Code)

	open := newEngine(DomainWhitelistMiddleware(nil, zerolog.Nop()))
	assert.Equal(t, http.StatusOK, do(open, "anything").Code)
}

func TestLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	r := newEngine(LoggerMiddleware(zerolog.New(&buf)))

	do(r, "")

	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"method":"GET"`)
	assert.Contains(t, buf.String(), `"message":"HTTP request"`)
}
