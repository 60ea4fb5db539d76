package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/navidmo/cloud-based-oidc/internal/auth/provider"
	"github.com/navidmo/cloud-based-oidc/internal/config"
	"github.com/navidmo/cloud-based-oidc/internal/directory"
	"github.com/navidmo/cloud-based-oidc/internal/guard"
	"github.com/navidmo/cloud-based-oidc/internal/logger"
	"github.com/navidmo/cloud-based-oidc/internal/session"
)

type Handler struct {
	providers *provider.Registry
	store     session.Store
	enricher  *session.Enricher
	guard     *guard.Guard
	directory *directory.Directory
	cfg       config.Config
}

func NewHandler(
	registry *provider.Registry,
	store session.Store,
	enricher *session.Enricher,
	g *guard.Guard,
	dir *directory.Directory,
	cfg config.Config,
) *Handler {
	return &Handler{
		providers: registry,
		store:     store,
		enricher:  enricher,
		guard:     g,
		directory: dir,
		cfg:       cfg,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/oauth/login/:provider", h.login)
	r.GET("/oauth/callback/:provider", h.callback)
	r.POST("/auth/logout", h.Logout)

	r.GET("/api/session", h.CurrentSession)
	r.GET("/api/session/capabilities", h.Capabilities)

	r.GET("/unauthorized", h.Unauthorized)
}

func (h *Handler) login(c *gin.Context) {
	providerName := c.Param("provider")

	p, err := h.providers.Get(providerName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "unknown oidc provider",
		})
		return
	}

	state := generateState(c)
	_, codeChallenge := generatePKCE(c)

	authURL := p.AuthCodeURL(state, codeChallenge)
	c.Redirect(http.StatusFound, authURL)
}

// signInFailure sends the user back to the sign-in entry point with a
// generic marker. Internal failure detail stays in the logs.
func (h *Handler) signInFailure(c *gin.Context) {
	c.Redirect(http.StatusFound, h.cfg.SignInRoute+"?error=signin_failed")
}

func (h *Handler) callback(c *gin.Context) {
	providerName := c.Param("provider")
	reqID := uuid.NewString()

	p, err := h.providers.Get(providerName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "unknown oidc provider",
		})
		return
	}

	if !validateState(c) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "invalid state",
		})
		return
	}

	errParam := c.Query("error")
	if errParam != "" {
		logger.Warn("oidc callback returned error", map[string]any{
			"request_id": reqID,
			"provider":   providerName,
			"error":      errParam,
			"desc":       c.Query("error_description"),
		})
		h.signInFailure(c)
		return
	}

	code := c.Query("code")
	if code == "" {
		logger.Error("oidc callback missing code and error", map[string]any{
			"request_id": reqID,
		})
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	codeVerifier := getPKCEVerifier(c)
	if codeVerifier == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "missing pkce verifier",
		})
		return
	}

	grant, err := p.ExchangeCode(
		c.Request.Context(),
		code,
		codeVerifier,
	)
	if err != nil {
		// Exchange failure is an upstream problem; to the user it is
		// just a failed sign-in.
		logger.Error("code exchange failed", map[string]any{
			"request_id": reqID,
			"provider":   providerName,
			"error":      err.Error(),
		})
		h.signInFailure(c)
		return
	}

	rec, err := h.enricher.OnTokenIssued(nil, &grant.Profile, grant.Tokens)
	if err != nil || rec == nil {
		logger.Error("token issuance produced no durable record", map[string]any{
			"request_id": reqID,
			"provider":   providerName,
		})
		h.signInFailure(c)
		return
	}

	sessionID, err := session.GenerateID()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to create session",
		})
		return
	}

	expiresAt := grant.Tokens.Expiry
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(h.cfg.SessionTTL)
	}

	if err := h.store.Create(c.Request.Context(), sessionID, *rec, expiresAt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to persist session",
		})
		return
	}

	session.SetCookie(c.Writer, sessionID, expiresAt, session.CookieOptions{
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	logger.Info("sign-in complete", map[string]any{
		"request_id": reqID,
		"provider":   providerName,
		"user_id":    rec.User.ID,
		"roles":      len(rec.Roles),
		"ip":         c.ClientIP(),
	})

	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) Logout(c *gin.Context) {

	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		// Best-effort delete; the cookie is cleared either way.
		_ = h.store.Delete(c.Request.Context(), cookie.Value)

		logger.Info("logout", map[string]any{
			"ip": c.ClientIP(),
		})
	}

	session.ClearCookie(c.Writer, session.CookieOptions{
		Path:     "/",
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	// Idempotent response
	c.Status(http.StatusNoContent)
}

// Unauthorized is the fixed destination for guarded routes the session
// lacks roles for.
func (h *Handler) Unauthorized(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{
		"error": "you do not have access to this page",
	})
}
