package hero

import "github.com/google/uuid"

// CreateAddonRequest contains parameters for registering an add-on
type CreateAddonRequest struct {
	Name     string
	Slug     string
	Summary  string
	Homepage string
}

// CreateDiscoveryItemRequest contains parameters for promoting an add-on
type CreateDiscoveryItemRequest struct {
	AddonID                uuid.UUID
	CustomDescription      string
	Recommendable          bool
	RecommendationApproved bool
}

// CreatePrimaryHeroRequest contains parameters for creating a primary shelf
type CreatePrimaryHeroRequest struct {
	DiscoveryItemID uuid.UUID
	Image           string
	GradientColor   string
	Enabled         bool
	IsExternal      bool
}

// CreateSecondaryHeroRequest contains parameters for creating a secondary shelf
type CreateSecondaryHeroRequest struct {
	Headline    string
	Description string
	CTAURL      string
	CTAText     string
	Enabled     bool
}

// CreateModuleRequest contains parameters for adding a module to a secondary shelf
type CreateModuleRequest struct {
	ShelfID     uuid.UUID
	Icon        string
	Description string
	CTAURL      string
	CTAText     string
}
