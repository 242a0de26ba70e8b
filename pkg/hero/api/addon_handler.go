package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/tendant/simple-hero/pkg/hero"
)

// AddonRequest is the request body for creating or updating an add-on
type AddonRequest struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Summary  string `json:"summary"`
	Homepage string `json:"homepage"`
}

// DiscoveryItemRequest is the request body for creating or updating a discovery item
type DiscoveryItemRequest struct {
	AddonID                string `json:"addon_id"`
	CustomDescription      string `json:"custom_description"`
	Recommendable          bool   `json:"recommendable"`
	RecommendationApproved bool   `json:"recommendation_approved"`
}

// CreateAddon registers an add-on
func (h *Handler) CreateAddon(w http.ResponseWriter, r *http.Request) {
	var req AddonRequest
	if !decode(w, r, &req) {
		return
	}

	addon, err := h.service.CreateAddon(r.Context(), hero.CreateAddonRequest{
		Name:     req.Name,
		Slug:     req.Slug,
		Summary:  req.Summary,
		Homepage: req.Homepage,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("Addon created", "addon_id", addon.ID.String())
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, addon)
}

// ListAddons lists every add-on
func (h *Handler) ListAddons(w http.ResponseWriter, r *http.Request) {
	addons, err := h.service.ListAddons(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if addons == nil {
		addons = []*hero.Addon{}
	}
	render.JSON(w, r, addons)
}

// GetAddon returns an add-on
func (h *Handler) GetAddon(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	addon, err := h.service.GetAddon(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, addon)
}

// UpdateAddon replaces the editable fields of an add-on
func (h *Handler) UpdateAddon(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req AddonRequest
	if !decode(w, r, &req) {
		return
	}

	addon, err := h.service.GetAddon(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	addon.Name = req.Name
	addon.Slug = req.Slug
	addon.Summary = req.Summary
	addon.Homepage = req.Homepage

	if err := h.service.UpdateAddon(r.Context(), addon); err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, addon)
}

// CreateDiscoveryItem promotes an add-on
func (h *Handler) CreateDiscoveryItem(w http.ResponseWriter, r *http.Request) {
	var req DiscoveryItemRequest
	if !decode(w, r, &req) {
		return
	}
	addonID, err := parseUUID(req.AddonID)
	if err != nil {
		badRequest(w, r, "invalid addon_id: "+req.AddonID)
		return
	}

	item, err := h.service.CreateDiscoveryItem(r.Context(), hero.CreateDiscoveryItemRequest{
		AddonID:                addonID,
		CustomDescription:      req.CustomDescription,
		Recommendable:          req.Recommendable,
		RecommendationApproved: req.RecommendationApproved,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("Discovery item created", "discovery_item_id", item.ID.String())
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, item)
}

// GetDiscoveryItem returns a discovery item with its add-on
func (h *Handler) GetDiscoveryItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.service.GetDiscoveryItem(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, item)
}

// UpdateDiscoveryItem replaces the editable fields of a discovery item
func (h *Handler) UpdateDiscoveryItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req DiscoveryItemRequest
	if !decode(w, r, &req) {
		return
	}
	addonID, err := parseUUID(req.AddonID)
	if err != nil {
		badRequest(w, r, "invalid addon_id: "+req.AddonID)
		return
	}

	item, err := h.service.GetDiscoveryItem(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	item.AddonID = addonID
	item.CustomDescription = req.CustomDescription
	item.Recommendable = req.Recommendable
	item.RecommendationApproved = req.RecommendationApproved
	item.Addon = nil

	if err := h.service.UpdateDiscoveryItem(r.Context(), item); err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, item)
}

// DeleteDiscoveryItem deletes a discovery item and its primary shelf
func (h *Handler) DeleteDiscoveryItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteDiscoveryItem(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
