package hero

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the main interface for managing hero shelves
type Service interface {
	// Addon operations
	CreateAddon(ctx context.Context, req CreateAddonRequest) (*Addon, error)
	GetAddon(ctx context.Context, id uuid.UUID) (*Addon, error)
	UpdateAddon(ctx context.Context, addon *Addon) error
	ListAddons(ctx context.Context) ([]*Addon, error)

	// Discovery item operations
	CreateDiscoveryItem(ctx context.Context, req CreateDiscoveryItemRequest) (*DiscoveryItem, error)
	GetDiscoveryItem(ctx context.Context, id uuid.UUID) (*DiscoveryItem, error)
	UpdateDiscoveryItem(ctx context.Context, item *DiscoveryItem) error
	DeleteDiscoveryItem(ctx context.Context, id uuid.UUID) error

	// Primary shelf operations
	CreatePrimaryHero(ctx context.Context, req CreatePrimaryHeroRequest) (*PrimaryHero, error)
	GetPrimaryHero(ctx context.Context, id uuid.UUID) (*PrimaryHero, error)
	UpdatePrimaryHero(ctx context.Context, hero *PrimaryHero) error
	DeletePrimaryHero(ctx context.Context, id uuid.UUID) error
	ListPrimaryHeroes(ctx context.Context, filter PrimaryHeroFilter) ([]*PrimaryHero, error)
	CleanPrimaryHero(ctx context.Context, hero *PrimaryHero) error

	// Secondary shelf operations
	CreateSecondaryHero(ctx context.Context, req CreateSecondaryHeroRequest) (*SecondaryHero, error)
	GetSecondaryHero(ctx context.Context, id uuid.UUID) (*SecondaryHero, error)
	UpdateSecondaryHero(ctx context.Context, hero *SecondaryHero) error
	DeleteSecondaryHero(ctx context.Context, id uuid.UUID) error
	ListSecondaryHeroes(ctx context.Context, filter SecondaryHeroFilter) ([]*SecondaryHero, error)
	CleanSecondaryHero(ctx context.Context, hero *SecondaryHero) error

	// Secondary shelf module operations
	CreateModule(ctx context.Context, req CreateModuleRequest) (*SecondaryHeroModule, error)
	GetModule(ctx context.Context, id uuid.UUID) (*SecondaryHeroModule, error)
	UpdateModule(ctx context.Context, module *SecondaryHeroModule) error
	DeleteModule(ctx context.Context, id uuid.UUID) error
	ListModules(ctx context.Context, shelfID uuid.UUID) ([]*SecondaryHeroModule, error)
	CleanModule(ctx context.Context, module *SecondaryHeroModule) error

	// Choice operations
	ImageChoices(ctx context.Context) ([]Choice, error)
	IconChoices(ctx context.Context) ([]Choice, error)
	GradientChoices() []Choice

	// Asset URLs
	AssetURLs() AssetURLs
	ImageURL(hero *PrimaryHero) string
	IconURL(module *SecondaryHeroModule) string

	// Shelves returns one enabled primary and one enabled secondary shelf
	Shelves(ctx context.Context) (*Shelves, error)
}
