package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/tendant/chi-demo/app"
	"github.com/tendant/chi-demo/middleware"
	"github.com/tendant/simple-hero/pkg/hero/api"
	"github.com/tendant/simple-hero/pkg/hero/config"
)

// appConfig returns the chi-demo settings with the listen address taken from
// cfg. Metrics settings still come from the environment.
func appConfig(cfg *config.ServerConfig) (app.AppConfig, error) {
	port, err := cfg.ListenPort()
	if err != nil {
		return app.AppConfig{}, err
	}
	appCfg := app.DefaultAppConfig()
	appCfg.Server = app.Server{Host: cfg.Host, Port: port}
	return appCfg, nil
}

// newApp builds the server the way app.DefaultApp does, listening on the
// configured address.
func newApp(appCfg app.AppConfig) *app.App {
	return app.NewApp(
		app.WithAppConfig(appCfg),
		app.WithMetrics(true),
		app.WithCors(app.DefaultCorsOptions()),
		app.WithHttpin(true),
		app.WithReqLogger(app.DefaultHttpLogger()),
	)
}

// mountRoutes registers the hero API on r. Admin routes go through
// adminMiddleware.
func mountRoutes(r chi.Router, handler *api.Handler, adminMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/hero", handler.PublicRoutes())
		r.Group(func(r chi.Router) {
			r.Use(adminMiddleware)
			r.Mount("/admin", handler.AdminRoutes())
		})
	})
}

func main() {
	cfg, err := config.Load(config.WithEnv())
	if err != nil {
		slog.Error("Failed to read configuration", "err", err)
		os.Exit(1)
	}

	if cfg.DatabaseType == "postgres" {
		if err := config.PingPostgres(cfg.DatabaseURL, cfg.DBSchema); err != nil {
			slog.Error("Failed to connect to database", "err", err)
			os.Exit(1)
		}
	}

	svc, err := cfg.BuildService()
	if err != nil {
		slog.Error("Failed to build hero service", "err", err)
		os.Exit(1)
	}

	var handlerOpts []api.Option
	if iconFS := cfg.IconFS(); iconFS != nil {
		handlerOpts = append(handlerOpts, api.WithIconFS(iconFS))
	}
	handler := api.NewHandler(svc, handlerOpts...)

	if cfg.AdminAPIKeySHA256 == "" {
		slog.Error("ADMIN_API_KEY_SHA256 is required")
		os.Exit(1)
	}
	apiKeyMiddleware, err := middleware.ApiKeyMiddleware(middleware.ApiKeyConfig{
		APIKeys: map[string]string{
			"admin": cfg.AdminAPIKeySHA256,
		},
	})
	if err != nil {
		slog.Error("Failed initialize API Key middleware", "err", err)
		os.Exit(1)
	}

	appCfg, err := appConfig(cfg)
	if err != nil {
		slog.Error("Invalid listen address", "err", err)
		os.Exit(1)
	}
	server := newApp(appCfg)

	app.RoutesHealthz(server.R)
	app.RoutesHealthzReady(server.R)

	mountRoutes(server.R, handler, apiKeyMiddleware)

	slog.Info("Starting hero server",
		"environment", cfg.Environment,
		"database", cfg.DatabaseType,
		"asset_source", cfg.AssetSource)
	server.Run()
}
