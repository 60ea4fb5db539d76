package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GinResolveSession adapts the net/http SessionMiddleware to Gin. It
// only attaches the session view; redirect decisions belong to the
// route guard.
func GinResolveSession(m *SessionMiddleware) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Bridge handler to allow net/http middleware execution
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			c.Next()
		})

		m.Resolve(next).ServeHTTP(c.Writer, c.Request)

		if c.Writer.Written() {
			c.Abort()
			return
		}
	}
}
