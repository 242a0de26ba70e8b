package hero

import (
	"time"

	"github.com/google/uuid"
)

// RecommendedStatus is the recommendation state of a discovery item.
type RecommendedStatus string

const (
	RecommendedStatusNotRecommended RecommendedStatus = "unrecommended"
	RecommendedStatusPending        RecommendedStatus = "pending_recommendation"
	RecommendedStatusRecommended    RecommendedStatus = "recommended"
)

// Field length limits, counted in characters.
const (
	MaxImageLength             = 255
	MaxGradientColorLength     = 7
	MaxHeadlineLength          = 50
	MaxSecondaryDescLength     = 100
	MaxModuleDescriptionLength = 50
	MaxCTAURLLength            = 255
	MaxCTATextLength           = 20
)

// Addon is the promoted add-on a discovery item points at.
type Addon struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug,omitempty"`
	Summary   string    `json:"summary,omitempty"`
	Homepage  string    `json:"homepage,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DiscoveryItem is a promoted add-on entry. A PrimaryHero is linked to
// exactly one discovery item.
type DiscoveryItem struct {
	ID                uuid.UUID `json:"id"`
	AddonID           uuid.UUID `json:"addon_id"`
	CustomDescription string    `json:"custom_description,omitempty"`

	// Recommendable marks the item as a recommendation candidate.
	// RecommendationApproved tracks approval of the add-on's current version.
	Recommendable          bool `json:"recommendable"`
	RecommendationApproved bool `json:"recommendation_approved"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Populated by the service layer, not persisted with the item.
	Addon *Addon `json:"addon,omitempty"`
}

// RecommendedStatus reports whether the item is recommended, pending, or not
// recommended at all.
func (d *DiscoveryItem) RecommendedStatus() RecommendedStatus {
	switch {
	case d.Recommendable && d.RecommendationApproved:
		return RecommendedStatusRecommended
	case d.Recommendable:
		return RecommendedStatusPending
	default:
		return RecommendedStatusNotRecommended
	}
}

func (d *DiscoveryItem) String() string {
	if d.Addon != nil {
		return d.Addon.Name
	}
	return d.ID.String()
}

// PrimaryHero is the primary promotional slot.
type PrimaryHero struct {
	ID              uuid.UUID `json:"id"`
	DiscoveryItemID uuid.UUID `json:"discovery_item_id"`
	Image           string    `json:"image"`
	GradientColor   string    `json:"gradient_color"`
	Enabled         bool      `json:"enabled"`
	IsExternal      bool      `json:"is_external"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	DiscoveryItem *DiscoveryItem `json:"discovery_item,omitempty"`
}

// Gradient returns the background gradient of the shelf. The start color is
// shared by every primary shelf.
func (h *PrimaryHero) Gradient() Gradient {
	return Gradient{Start: GradientStartColor, End: h.GradientColor}
}

func (h *PrimaryHero) String() string {
	if h.DiscoveryItem != nil {
		return h.DiscoveryItem.String()
	}
	return h.DiscoveryItemID.String()
}

// Gradient is a two-stop background gradient.
type Gradient struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SecondaryHero is the secondary promotional shelf.
type SecondaryHero struct {
	ID          uuid.UUID `json:"id"`
	Headline    string    `json:"headline"`
	Description string    `json:"description"`
	CTAURL      string    `json:"cta_url,omitempty"`
	CTAText     string    `json:"cta_text,omitempty"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Modules []*SecondaryHeroModule `json:"modules,omitempty"`
}

func (h *SecondaryHero) String() string {
	return h.Headline
}

// SecondaryHeroModule is a child module of a SecondaryHero. Deleting the
// shelf deletes its modules.
type SecondaryHeroModule struct {
	ID          uuid.UUID `json:"id"`
	ShelfID     uuid.UUID `json:"shelf_id"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	CTAURL      string    `json:"cta_url,omitempty"`
	CTAText     string    `json:"cta_text,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (m *SecondaryHeroModule) String() string {
	return m.Description
}

// Choice is a single selectable value of a choice field.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// PrimaryHeroFilter narrows ListPrimaryHeroes. Nil fields match all rows.
type PrimaryHeroFilter struct {
	Enabled         *bool
	DiscoveryItemID *uuid.UUID
}

// SecondaryHeroFilter narrows ListSecondaryHeroes. A nil Enabled matches all rows.
type SecondaryHeroFilter struct {
	Enabled *bool
}

// Shelves is the public view of the hero area: one primary and one
// secondary shelf. Either is nil when no shelf of that kind is enabled.
type Shelves struct {
	Primary   *PrimaryShelf   `json:"primary"`
	Secondary *SecondaryShelf `json:"secondary"`
}

// PrimaryShelf is the public rendition of an enabled PrimaryHero.
type PrimaryShelf struct {
	ID          uuid.UUID `json:"id"`
	ImageURL    string    `json:"featured_image"`
	Gradient    Gradient  `json:"gradient"`
	Description string    `json:"description"`
	IsExternal  bool      `json:"is_external"`
	Addon       *Addon    `json:"addon"`
}

// SecondaryShelf is the public rendition of an enabled SecondaryHero.
type SecondaryShelf struct {
	ID          uuid.UUID     `json:"id"`
	Headline    string        `json:"headline"`
	Description string        `json:"description"`
	CTA         *CTA          `json:"cta"`
	Modules     []ModuleShelf `json:"modules"`
}

// ModuleShelf is the public rendition of a SecondaryHeroModule.
type ModuleShelf struct {
	ID          uuid.UUID `json:"id"`
	IconURL     string    `json:"icon"`
	Description string    `json:"description"`
	CTA         *CTA      `json:"cta"`
}

// CTA is a call to action link.
type CTA struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

func newCTA(url, text string) *CTA {
	if url == "" || text == "" {
		return nil
	}
	return &CTA{URL: url, Text: text}
}
