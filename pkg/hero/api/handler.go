package api

import (
	"encoding/json"
	"errors"
	iofs "io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/tendant/simple-hero/pkg/hero"
	"github.com/tendant/simple-hero/pkg/hero/widget"
)

// Handler serves the admin and public hero endpoints
type Handler struct {
	service hero.Service
	widgets map[string]widget.Renderer
	iconFS  iofs.FS
}

// Option configures a Handler
type Option func(*Handler)

// WithIconFS inlines .svg module icons read from fsys in the icon widget
func WithIconFS(fsys iofs.FS) Option {
	return func(h *Handler) {
		h.iconFS = fsys
	}
}

// NewHandler creates a new hero handler
func NewHandler(service hero.Service, opts ...Option) *Handler {
	h := &Handler{service: service}
	for _, opt := range opts {
		opt(h)
	}

	var iconOpts []widget.IconOption
	if h.iconFS != nil {
		iconOpts = append(iconOpts, widget.WithInlineSVG(h.iconFS))
	}
	urls := service.AssetURLs()
	h.widgets = map[string]widget.Renderer{
		"image":    widget.NewImageChoiceWidget(hero.ChoiceSourceFunc(service.ImageChoices), urls),
		"icon":     widget.NewIconChoiceWidget(hero.ChoiceSourceFunc(service.IconChoices), urls, iconOpts...),
		"gradient": widget.NewGradientChoiceWidget(),
	}
	return h
}

// AdminRoutes returns the routes for managing shelves
func (h *Handler) AdminRoutes() chi.Router {
	r := chi.NewRouter()

	r.Post("/addons", h.CreateAddon)
	r.Get("/addons", h.ListAddons)
	r.Get("/addons/{id}", h.GetAddon)
	r.Put("/addons/{id}", h.UpdateAddon)

	r.Post("/discovery-items", h.CreateDiscoveryItem)
	r.Get("/discovery-items/{id}", h.GetDiscoveryItem)
	r.Put("/discovery-items/{id}", h.UpdateDiscoveryItem)
	r.Delete("/discovery-items/{id}", h.DeleteDiscoveryItem)

	r.Post("/primary-heroes", h.CreatePrimaryHero)
	r.Get("/primary-heroes", h.ListPrimaryHeroes)
	r.Get("/primary-heroes/{id}", h.GetPrimaryHero)
	r.Put("/primary-heroes/{id}", h.UpdatePrimaryHero)
	r.Delete("/primary-heroes/{id}", h.DeletePrimaryHero)

	r.Post("/secondary-heroes", h.CreateSecondaryHero)
	r.Get("/secondary-heroes", h.ListSecondaryHeroes)
	r.Get("/secondary-heroes/{id}", h.GetSecondaryHero)
	r.Put("/secondary-heroes/{id}", h.UpdateSecondaryHero)
	r.Delete("/secondary-heroes/{id}", h.DeleteSecondaryHero)

	r.Post("/secondary-heroes/{id}/modules", h.CreateModule)
	r.Get("/secondary-heroes/{id}/modules", h.ListModules)
	r.Get("/modules/{id}", h.GetModule)
	r.Put("/modules/{id}", h.UpdateModule)
	r.Delete("/modules/{id}", h.DeleteModule)

	r.Get("/choices/{kind}", h.GetChoices)
	r.Get("/widgets/{kind}", h.RenderWidget)

	return r
}

// PublicRoutes returns the routes read by the site
func (h *Handler) PublicRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetShelves)
	return r
}

// ErrorResponse is the response body for a failed request
type ErrorResponse struct {
	Error  string                  `json:"error"`
	Errors []*hero.ValidationError `json:"errors,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs hero.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: hero.ErrValidation.Error(), Errors: verrs})
	case hero.IsNotFound(err):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, ErrorResponse{Error: rootError(err).Error()})
	case errors.Is(err, hero.ErrDuplicateDiscoveryItem):
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, ErrorResponse{Error: hero.ErrDuplicateDiscoveryItem.Error()})
	default:
		slog.Error("Request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, ErrorResponse{Error: "internal server error"})
	}
}

// rootError returns the innermost wrapped error
func rootError(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

func badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, ErrorResponse{Error: msg})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		badRequest(w, r, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		badRequest(w, r, "invalid id: "+raw)
		return uuid.Nil, false
	}
	return id, true
}

// parseUUID parses an optional id from a request body. An empty string is
// the zero id, which validation reports as a missing field.
func parseUUID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(raw)
}
