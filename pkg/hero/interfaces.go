package hero

import (
	"context"

	"github.com/google/uuid"
)

// ChoiceSource supplies the allowed values of a choice field
type ChoiceSource interface {
	// Choices lists the available values. Implementations read their backing
	// location on every call.
	Choices(ctx context.Context) ([]Choice, error)
}

// ChoiceSourceFunc adapts a function to the ChoiceSource interface
type ChoiceSourceFunc func(ctx context.Context) ([]Choice, error)

func (f ChoiceSourceFunc) Choices(ctx context.Context) ([]Choice, error) {
	return f(ctx)
}

// Repository defines the interface for shelf persistence
type Repository interface {
	// Addon operations
	CreateAddon(ctx context.Context, addon *Addon) error
	GetAddon(ctx context.Context, id uuid.UUID) (*Addon, error)
	UpdateAddon(ctx context.Context, addon *Addon) error
	ListAddons(ctx context.Context) ([]*Addon, error)

	// Discovery item operations
	CreateDiscoveryItem(ctx context.Context, item *DiscoveryItem) error
	GetDiscoveryItem(ctx context.Context, id uuid.UUID) (*DiscoveryItem, error)
	UpdateDiscoveryItem(ctx context.Context, item *DiscoveryItem) error
	// DeleteDiscoveryItem also deletes the primary shelf linked to the item
	DeleteDiscoveryItem(ctx context.Context, id uuid.UUID) error

	// Primary shelf operations
	CreatePrimaryHero(ctx context.Context, hero *PrimaryHero) error
	GetPrimaryHero(ctx context.Context, id uuid.UUID) (*PrimaryHero, error)
	UpdatePrimaryHero(ctx context.Context, hero *PrimaryHero) error
	DeletePrimaryHero(ctx context.Context, id uuid.UUID) error
	ListPrimaryHeroes(ctx context.Context, filter PrimaryHeroFilter) ([]*PrimaryHero, error)

	// Secondary shelf operations
	CreateSecondaryHero(ctx context.Context, hero *SecondaryHero) error
	GetSecondaryHero(ctx context.Context, id uuid.UUID) (*SecondaryHero, error)
	UpdateSecondaryHero(ctx context.Context, hero *SecondaryHero) error
	// DeleteSecondaryHero also deletes the modules of the shelf
	DeleteSecondaryHero(ctx context.Context, id uuid.UUID) error
	ListSecondaryHeroes(ctx context.Context, filter SecondaryHeroFilter) ([]*SecondaryHero, error)

	// Secondary shelf module operations
	CreateModule(ctx context.Context, module *SecondaryHeroModule) error
	GetModule(ctx context.Context, id uuid.UUID) (*SecondaryHeroModule, error)
	UpdateModule(ctx context.Context, module *SecondaryHeroModule) error
	DeleteModule(ctx context.Context, id uuid.UUID) error
	ListModules(ctx context.Context, shelfID uuid.UUID) ([]*SecondaryHeroModule, error)
}

// EventSink defines the interface for shelf lifecycle events
type EventSink interface {
	// PrimaryHeroSaved is fired after a primary shelf is created or updated
	PrimaryHeroSaved(ctx context.Context, hero *PrimaryHero) error

	// PrimaryHeroDeleted is fired after a primary shelf is deleted
	PrimaryHeroDeleted(ctx context.Context, id uuid.UUID) error

	// SecondaryHeroSaved is fired after a secondary shelf is created or updated
	SecondaryHeroSaved(ctx context.Context, hero *SecondaryHero) error

	// SecondaryHeroDeleted is fired after a secondary shelf is deleted
	SecondaryHeroDeleted(ctx context.Context, id uuid.UUID) error

	// ModuleSaved is fired after a module is created or updated
	ModuleSaved(ctx context.Context, module *SecondaryHeroModule) error

	// ModuleDeleted is fired after a module is deleted
	ModuleDeleted(ctx context.Context, id uuid.UUID) error
}
