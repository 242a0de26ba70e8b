package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"
	"github.com/tendant/simple-hero/pkg/hero"
)

// PrimaryHeroRequest is the request body for creating or updating a primary shelf
type PrimaryHeroRequest struct {
	DiscoveryItemID string `json:"discovery_item_id"`
	Image           string `json:"image"`
	GradientColor   string `json:"gradient_color"`
	Enabled         bool   `json:"enabled"`
	IsExternal      bool   `json:"is_external"`
}

// SecondaryHeroRequest is the request body for creating or updating a secondary shelf
type SecondaryHeroRequest struct {
	Headline    string `json:"headline"`
	Description string `json:"description"`
	CTAURL      string `json:"cta_url"`
	CTAText     string `json:"cta_text"`
	Enabled     bool   `json:"enabled"`
}

// ModuleRequest is the request body for creating or updating a module
type ModuleRequest struct {
	Icon        string `json:"icon"`
	Description string `json:"description"`
	CTAURL      string `json:"cta_url"`
	CTAText     string `json:"cta_text"`
}

// enabledFilter reads the optional ?enabled= query parameter
func enabledFilter(w http.ResponseWriter, r *http.Request) (*bool, bool) {
	raw := r.URL.Query().Get("enabled")
	if raw == "" {
		return nil, true
	}
	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		badRequest(w, r, "invalid enabled: "+raw)
		return nil, false
	}
	return &enabled, true
}

// Primary shelves

// CreatePrimaryHero creates a primary shelf
func (h *Handler) CreatePrimaryHero(w http.ResponseWriter, r *http.Request) {
	var req PrimaryHeroRequest
	if !decode(w, r, &req) {
		return
	}
	itemID, err := parseUUID(req.DiscoveryItemID)
	if err != nil {
		badRequest(w, r, "invalid discovery_item_id: "+req.DiscoveryItemID)
		return
	}

	created, err := h.service.CreatePrimaryHero(r.Context(), hero.CreatePrimaryHeroRequest{
		DiscoveryItemID: itemID,
		Image:           req.Image,
		GradientColor:   req.GradientColor,
		Enabled:         req.Enabled,
		IsExternal:      req.IsExternal,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("Primary hero created", "primary_hero_id", created.ID.String())
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, created)
}

// ListPrimaryHeroes lists primary shelves, optionally filtered by ?enabled=
func (h *Handler) ListPrimaryHeroes(w http.ResponseWriter, r *http.Request) {
	enabled, ok := enabledFilter(w, r)
	if !ok {
		return
	}

	heroes, err := h.service.ListPrimaryHeroes(r.Context(), hero.PrimaryHeroFilter{Enabled: enabled})
	if err != nil {
		writeError(w, r, err)
		return
	}
	if heroes == nil {
		heroes = []*hero.PrimaryHero{}
	}
	render.JSON(w, r, heroes)
}

// GetPrimaryHero returns a primary shelf with its discovery item
func (h *Handler) GetPrimaryHero(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	found, err := h.service.GetPrimaryHero(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, found)
}

// UpdatePrimaryHero replaces the editable fields of a primary shelf
func (h *Handler) UpdatePrimaryHero(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req PrimaryHeroRequest
	if !decode(w, r, &req) {
		return
	}
	itemID, err := parseUUID(req.DiscoveryItemID)
	if err != nil {
		badRequest(w, r, "invalid discovery_item_id: "+req.DiscoveryItemID)
		return
	}

	updated := &hero.PrimaryHero{
		ID:              id,
		DiscoveryItemID: itemID,
		Image:           req.Image,
		GradientColor:   req.GradientColor,
		Enabled:         req.Enabled,
		IsExternal:      req.IsExternal,
	}
	if err := h.service.UpdatePrimaryHero(r.Context(), updated); err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, updated)
}

// DeletePrimaryHero deletes a primary shelf
func (h *Handler) DeletePrimaryHero(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeletePrimaryHero(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Secondary shelves

// CreateSecondaryHero creates a secondary shelf
func (h *Handler) CreateSecondaryHero(w http.ResponseWriter, r *http.Request) {
	var req SecondaryHeroRequest
	if !decode(w, r, &req) {
		return
	}

	created, err := h.service.CreateSecondaryHero(r.Context(), hero.CreateSecondaryHeroRequest{
		Headline:    req.Headline,
		Description: req.Description,
		CTAURL:      req.CTAURL,
		CTAText:     req.CTAText,
		Enabled:     req.Enabled,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("Secondary hero created", "secondary_hero_id", created.ID.String())
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, created)
}

// ListSecondaryHeroes lists secondary shelves, optionally filtered by ?enabled=
func (h *Handler) ListSecondaryHeroes(w http.ResponseWriter, r *http.Request) {
	enabled, ok := enabledFilter(w, r)
	if !ok {
		return
	}

	heroes, err := h.service.ListSecondaryHeroes(r.Context(), hero.SecondaryHeroFilter{Enabled: enabled})
	if err != nil {
		writeError(w, r, err)
		return
	}
	if heroes == nil {
		heroes = []*hero.SecondaryHero{}
	}
	render.JSON(w, r, heroes)
}

// GetSecondaryHero returns a secondary shelf with its modules
func (h *Handler) GetSecondaryHero(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	found, err := h.service.GetSecondaryHero(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, found)
}

// UpdateSecondaryHero replaces the editable fields of a secondary shelf
func (h *Handler) UpdateSecondaryHero(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req SecondaryHeroRequest
	if !decode(w, r, &req) {
		return
	}

	updated := &hero.SecondaryHero{
		ID:          id,
		Headline:    req.Headline,
		Description: req.Description,
		CTAURL:      req.CTAURL,
		CTAText:     req.CTAText,
		Enabled:     req.Enabled,
	}
	if err := h.service.UpdateSecondaryHero(r.Context(), updated); err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, updated)
}

// DeleteSecondaryHero deletes a secondary shelf and its modules
func (h *Handler) DeleteSecondaryHero(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteSecondaryHero(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Modules

// CreateModule adds a module to the secondary shelf in the path
func (h *Handler) CreateModule(w http.ResponseWriter, r *http.Request) {
	shelfID, ok := pathID(w, r)
	if !ok {
		return
	}
	var req ModuleRequest
	if !decode(w, r, &req) {
		return
	}

	created, err := h.service.CreateModule(r.Context(), hero.CreateModuleRequest{
		ShelfID:     shelfID,
		Icon:        req.Icon,
		Description: req.Description,
		CTAURL:      req.CTAURL,
		CTAText:     req.CTAText,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("Secondary hero module created", "module_id", created.ID.String(), "shelf_id", shelfID.String())
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, created)
}

// ListModules lists the modules of the secondary shelf in the path
func (h *Handler) ListModules(w http.ResponseWriter, r *http.Request) {
	shelfID, ok := pathID(w, r)
	if !ok {
		return
	}

	modules, err := h.service.ListModules(r.Context(), shelfID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if modules == nil {
		modules = []*hero.SecondaryHeroModule{}
	}
	render.JSON(w, r, modules)
}

// GetModule returns a module
func (h *Handler) GetModule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	found, err := h.service.GetModule(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, found)
}

// UpdateModule replaces the editable fields of a module. The module stays on
// its shelf.
func (h *Handler) UpdateModule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req ModuleRequest
	if !decode(w, r, &req) {
		return
	}

	existing, err := h.service.GetModule(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	updated := &hero.SecondaryHeroModule{
		ID:          id,
		ShelfID:     existing.ShelfID,
		Icon:        req.Icon,
		Description: req.Description,
		CTAURL:      req.CTAURL,
		CTAText:     req.CTAText,
	}
	if err := h.service.UpdateModule(r.Context(), updated); err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, updated)
}

// DeleteModule deletes a module
func (h *Handler) DeleteModule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteModule(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

