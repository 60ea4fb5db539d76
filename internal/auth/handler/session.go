package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/navidmo/cloud-based-oidc/internal/gate"
	"github.com/navidmo/cloud-based-oidc/internal/middleware"
)

// CurrentSession returns the externally visible session projection.
// An absent session is 401, never an empty-but-authenticated body.
func (h *Handler) CurrentSession(c *gin.Context) {
	view, ok := middleware.ViewFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "unauthenticated",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// Capabilities answers role-membership questions for client-side
// conditional UI. It runs the exact same predicates the server uses,
// so both sides branch identically. The answers are advisory: guarded
// routes re-check on every request.
func (h *Handler) Capabilities(c *gin.Context) {
	view, _ := middleware.ViewFromContext(c.Request.Context())

	roles := c.QueryArray("role")

	answers := make(map[string]bool, len(roles))
	for _, r := range roles {
		answers[r] = gate.HasRole(view, r)
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": view != nil,
		"roles":         answers,
		"any":           gate.HasAnyRole(view, roles),
	})
}
