package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/tendant/simple-hero/pkg/hero"
)

// GetChoices lists the values of a choice field: images, icons or gradients
func (h *Handler) GetChoices(w http.ResponseWriter, r *http.Request) {
	var (
		choices []hero.Choice
		err     error
	)
	switch kind := chi.URLParam(r, "kind"); kind {
	case "images":
		choices, err = h.service.ImageChoices(r.Context())
	case "icons":
		choices, err = h.service.IconChoices(r.Context())
	case "gradients":
		choices = h.service.GradientChoices()
	default:
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, ErrorResponse{Error: "unknown choice field: " + kind})
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	if choices == nil {
		choices = []hero.Choice{}
	}
	render.JSON(w, r, choices)
}

// RenderWidget renders the radio select of a choice field as an HTML
// fragment. The name and value query parameters set the input name and the
// checked option.
func (h *Handler) RenderWidget(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	renderer, ok := h.widgets[kind]
	if !ok {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, ErrorResponse{Error: "unknown widget: " + kind})
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		name = defaultFieldName(kind)
	}

	out, err := renderer.Render(r.Context(), name, r.URL.Query().Get("value"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.HTML(w, r, out)
}

func defaultFieldName(kind string) string {
	if kind == "gradient" {
		return "gradient_color"
	}
	return kind
}

// GetShelves returns the shelves shown on the site
func (h *Handler) GetShelves(w http.ResponseWriter, r *http.Request) {
	shelves, err := h.service.Shelves(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, shelves)
}
