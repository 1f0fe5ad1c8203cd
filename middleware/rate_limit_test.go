package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware_ShedsAfterBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.POST("/posts", func(ctx *gin.Context) { ctx.String(http.StatusOK, "ok") })

	allowed, limited := 0, 0
	for i := 0; i < 45; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/posts", nil))
		switch w.Code {
		case http.StatusOK:
			allowed++
		case http.StatusTooManyRequests:
			limited++
		}
	}

	// Default budget is 60/min with a burst of half that; a tight loop must
	// exhaust the bucket well before it refills.
	assert.GreaterOrEqual(t, allowed, 30)
	assert.GreaterOrEqual(t, limited, 1)
	assert.Equal(t, 45, allowed+limited)
}
