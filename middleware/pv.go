package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/naborly/naborly/store"
)

// PageViewRecorder records page views per day and path. Without a database
// the view is dropped; traffic counting never blocks a request.
func PageViewRecorder(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only record successful page views (2xx-3xx) for GET requests.
		if c.Request.Method != "GET" {
			return
		}
		status := c.Writer.Status()
		if status < 200 || status >= 400 {
			return
		}

		// Skip endpoints that would skew the counters.
		path := c.Request.URL.Path
		if path == "/health" || strings.Contains(path, "/stats") || strings.HasPrefix(path, "/static/") {
			return
		}

		_ = st.RecordPageView(path)
	}
}
