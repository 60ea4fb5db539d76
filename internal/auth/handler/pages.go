package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/navidmo/cloud-based-oidc/internal/gate"
	"github.com/navidmo/cloud-based-oidc/internal/guard"
	"github.com/navidmo/cloud-based-oidc/internal/logger"
	"github.com/navidmo/cloud-based-oidc/internal/middleware"
	"github.com/navidmo/cloud-based-oidc/internal/session"
)

// RegisterPages wires the server-rendered page-data routes. Every page
// loader here goes through the guard; nothing else may serve these
// routes.
func (h *Handler) RegisterPages(r *gin.Engine) {
	r.GET("/dashboard", h.page(h.guard.Wrap(h.dashboardLoader)))
	r.GET("/admin/users", h.page(h.guard.Wrap(h.adminUsersLoader, "admin")))
	r.GET("/admin/roles", h.page(h.guard.Wrap(h.adminRolesLoader, "admin", "role_manager")))
}

// page bridges a guarded loader into gin: the session view resolved by
// the middleware is handed to the loader explicitly, and redirect
// directives become HTTP redirects.
func (h *Handler) page(loader guard.Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, _ := middleware.ViewFromContext(c.Request.Context())

		res, err := loader(c.Request.Context(), view)
		if err != nil {
			logger.Error("page loader failed", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "internal error",
			})
			return
		}

		if res.Redirect != "" {
			status := res.Status
			if status == 0 {
				status = http.StatusFound
			}
			c.Redirect(status, res.Redirect)
			return
		}

		status := res.Status
		if status == 0 {
			status = http.StatusOK
		}
		c.JSON(status, res.Data)
	}
}

func (h *Handler) dashboardLoader(_ context.Context, sess *session.View) (guard.Result, error) {
	return guard.Result{
		Data: gin.H{
			"user": sess.User,
			// The dashboard shows admin widgets only when the session
			// carries the role; the guard already ensured sign-in.
			"showAdminPanel": gate.HasRole(sess, "admin"),
			"showRoleTools":  gate.HasAnyRole(sess, []string{"admin", "role_manager"}),
		},
	}, nil
}

func (h *Handler) adminUsersLoader(_ context.Context, _ *session.View) (guard.Result, error) {
	return guard.Result{
		Data: gin.H{
			"users": h.directory.Users(),
		},
	}, nil
}

func (h *Handler) adminRolesLoader(_ context.Context, _ *session.View) (guard.Result, error) {
	return guard.Result{
		Data: gin.H{
			"roles": h.directory.Roles(),
		},
	}, nil
}
