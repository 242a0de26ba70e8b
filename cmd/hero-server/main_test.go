package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/chi-demo/app"
	"github.com/tendant/simple-hero/pkg/hero/api"
	"github.com/tendant/simple-hero/pkg/hero/config"
)

func TestServerSetup(t *testing.T) {
	cfg, err := config.Load(config.WithMemoryAssets([]string{"foo.png"}, []string{"foo.svg"}))
	require.NoError(t, err)

	svc, err := cfg.BuildService()
	require.NoError(t, err)

	denyAll := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-API-KEY") != "secret" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewRouter()
	mountRoutes(r, api.NewHandler(svc), denyAll)

	t.Run("public route is open", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/hero", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"primary":null,"secondary":null}`, w.Body.String())
	})

	t.Run("admin route needs key", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/choices/images", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/choices/images", nil)
		req.Header.Set("X-API-KEY", "secret")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"value":"foo.png","label":"foo.png"}]`, w.Body.String())
	})
}

func TestAppConfig(t *testing.T) {
	cfg, err := config.Load(config.WithHost("0.0.0.0"), config.WithPort("9000"))
	require.NoError(t, err)

	appCfg, err := appConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, app.Server{Host: "0.0.0.0", Port: 9000}, appCfg.Server)

	t.Run("environment PORT is ignored", func(t *testing.T) {
		t.Setenv("PORT", "4000")

		cfg, err := config.Load(config.WithPort("9100"))
		require.NoError(t, err)

		appCfg, err := appConfig(cfg)
		require.NoError(t, err)
		assert.Equal(t, 9100, appCfg.Port)
		assert.Equal(t, "localhost", appCfg.Host)
	})
}
