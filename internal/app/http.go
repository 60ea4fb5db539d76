package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/navidmo/cloud-based-oidc/internal/auth/handler"
	"github.com/navidmo/cloud-based-oidc/internal/auth/provider"
	"github.com/navidmo/cloud-based-oidc/internal/auth/provider/appid"
	"github.com/navidmo/cloud-based-oidc/internal/config"
	"github.com/navidmo/cloud-based-oidc/internal/directory"
	"github.com/navidmo/cloud-based-oidc/internal/guard"
	"github.com/navidmo/cloud-based-oidc/internal/middleware"
	"github.com/navidmo/cloud-based-oidc/internal/session"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	recordStore := session.NewRedisStore(infra.Redis.Client)
	enricher := session.NewEnricher()

	appidProvider, err := appid.New(
		ctx,
		cfg.OIDCIssuer,
		cfg.OIDCClientID,
		cfg.OIDCClientSecret,
		cfg.OIDCRedirectURL,
	)
	if err != nil {
		return nil, nil, err
	}

	registry := provider.NewRegistry(
		appidProvider,
	)

	routeGuard := guard.New(guard.Routes{
		SignIn:       cfg.SignInRoute,
		Unauthorized: cfg.UnauthorizedRoute,
	})

	authHandler := handler.NewHandler(
		registry,
		recordStore,
		enricher,
		routeGuard,
		directory.New(),
		cfg,
	)

	sessionMiddleware := middleware.NewSessionMiddleware(recordStore, enricher)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	// Session resolution runs on every request; it attaches a view when
	// a valid record exists and otherwise leaves the request anonymous.
	// The guard, not the middleware, decides what anonymity means.
	router.Use(middleware.GinResolveSession(sessionMiddleware))

	authHandler.RegisterRoutes(router)
	authHandler.RegisterPages(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.Redis.Close()
	}, nil
}
