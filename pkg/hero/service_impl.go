package hero

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// service implements the Service interface
type service struct {
	repository   Repository
	imageChoices ChoiceSource
	iconChoices  ChoiceSource
	assets       AssetURLs
	eventSink    EventSink
	logger       *slog.Logger
	pick         func(n int) int
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithRepository sets the repository for the service
func WithRepository(repo Repository) Option {
	return func(s *service) {
		s.repository = repo
	}
}

// WithImageChoices sets the source of featured image names
func WithImageChoices(source ChoiceSource) Option {
	return func(s *service) {
		s.imageChoices = source
	}
}

// WithIconChoices sets the source of module icon names
func WithIconChoices(source ChoiceSource) Option {
	return func(s *service) {
		s.iconChoices = source
	}
}

// WithAssetURLs sets the base URLs image and icon names are appended to
func WithAssetURLs(urls AssetURLs) Option {
	return func(s *service) {
		s.assets = urls
	}
}

// WithEventSink sets the event sink for the service
func WithEventSink(sink EventSink) Option {
	return func(s *service) {
		s.eventSink = sink
	}
}

// WithLogger sets the logger used for failures that do not fail the operation
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		s.logger = logger
	}
}

// WithPicker sets the function Shelves uses to pick one of n enabled shelves.
// It must return a value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(s *service) {
		s.pick = pick
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		assets: NewAssetURLs("/static/"),
		logger: slog.Default(),
		pick:   rand.IntN,
	}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}

	return s, nil
}

// Addon operations

func (s *service) CreateAddon(ctx context.Context, req CreateAddonRequest) (*Addon, error) {
	var errs ValidationErrors
	checkRequired(&errs, "name", req.Name, 255)
	if len(errs) > 0 {
		return nil, errs
	}

	now := time.Now().UTC()
	addon := &Addon{
		ID:        uuid.New(),
		Name:      req.Name,
		Slug:      req.Slug,
		Summary:   req.Summary,
		Homepage:  req.Homepage,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repository.CreateAddon(ctx, addon); err != nil {
		return nil, &ShelfError{Kind: "addon", ID: addon.ID, Op: "create", Err: err}
	}
	return addon, nil
}

func (s *service) GetAddon(ctx context.Context, id uuid.UUID) (*Addon, error) {
	return s.repository.GetAddon(ctx, id)
}

func (s *service) UpdateAddon(ctx context.Context, addon *Addon) error {
	var errs ValidationErrors
	checkRequired(&errs, "name", addon.Name, 255)
	if len(errs) > 0 {
		return errs
	}

	addon.UpdatedAt = time.Now().UTC()
	if err := s.repository.UpdateAddon(ctx, addon); err != nil {
		return &ShelfError{Kind: "addon", ID: addon.ID, Op: "update", Err: err}
	}
	return nil
}

func (s *service) ListAddons(ctx context.Context) ([]*Addon, error) {
	return s.repository.ListAddons(ctx)
}

// Discovery item operations

func (s *service) CreateDiscoveryItem(ctx context.Context, req CreateDiscoveryItemRequest) (*DiscoveryItem, error) {
	addon, err := s.repository.GetAddon(ctx, req.AddonID)
	if err != nil {
		if IsNotFound(err) {
			return nil, ValidationErrors{{Field: "addon_id", Message: MsgAddonNotFound}}
		}
		return nil, err
	}

	now := time.Now().UTC()
	item := &DiscoveryItem{
		ID:                     uuid.New(),
		AddonID:                req.AddonID,
		CustomDescription:      req.CustomDescription,
		Recommendable:          req.Recommendable,
		RecommendationApproved: req.RecommendationApproved,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := s.repository.CreateDiscoveryItem(ctx, item); err != nil {
		return nil, &ShelfError{Kind: "discovery item", ID: item.ID, Op: "create", Err: err}
	}
	item.Addon = addon
	return item, nil
}

func (s *service) GetDiscoveryItem(ctx context.Context, id uuid.UUID) (*DiscoveryItem, error) {
	item, err := s.repository.GetDiscoveryItem(ctx, id)
	if err != nil {
		return nil, err
	}
	addon, err := s.repository.GetAddon(ctx, item.AddonID)
	if err != nil {
		return nil, err
	}
	item.Addon = addon
	return item, nil
}

func (s *service) UpdateDiscoveryItem(ctx context.Context, item *DiscoveryItem) error {
	if _, err := s.repository.GetAddon(ctx, item.AddonID); err != nil {
		if IsNotFound(err) {
			return ValidationErrors{{Field: "addon_id", Message: MsgAddonNotFound}}
		}
		return err
	}

	item.UpdatedAt = time.Now().UTC()
	if err := s.repository.UpdateDiscoveryItem(ctx, item); err != nil {
		return &ShelfError{Kind: "discovery item", ID: item.ID, Op: "update", Err: err}
	}
	return nil
}

func (s *service) DeleteDiscoveryItem(ctx context.Context, id uuid.UUID) error {
	itemID := id
	linked, err := s.repository.ListPrimaryHeroes(ctx, PrimaryHeroFilter{DiscoveryItemID: &itemID})
	if err != nil {
		return err
	}

	if err := s.repository.DeleteDiscoveryItem(ctx, id); err != nil {
		return &ShelfError{Kind: "discovery item", ID: id, Op: "delete", Err: err}
	}

	if s.eventSink != nil {
		for _, h := range linked {
			if err := s.eventSink.PrimaryHeroDeleted(ctx, h.ID); err != nil {
				s.logger.WarnContext(ctx, "Event sink failed", "event", "primary_hero_deleted", "id", h.ID, "err", err)
			}
		}
	}
	return nil
}

// Primary shelf operations

func (s *service) CreatePrimaryHero(ctx context.Context, req CreatePrimaryHeroRequest) (*PrimaryHero, error) {
	now := time.Now().UTC()
	hero := &PrimaryHero{
		ID:              uuid.New(),
		DiscoveryItemID: req.DiscoveryItemID,
		Image:           req.Image,
		GradientColor:   req.GradientColor,
		Enabled:         req.Enabled,
		IsExternal:      req.IsExternal,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.validatePrimaryHero(ctx, hero); err != nil {
		return nil, err
	}

	if err := s.repository.CreatePrimaryHero(ctx, hero); err != nil {
		return nil, &ShelfError{Kind: "primary hero", ID: hero.ID, Op: "create", Err: err}
	}

	if s.eventSink != nil {
		if err := s.eventSink.PrimaryHeroSaved(ctx, hero); err != nil {
			s.logger.WarnContext(ctx, "Event sink failed", "event", "primary_hero_saved", "id", hero.ID, "err", err)
		}
	}
	return hero, nil
}

func (s *service) GetPrimaryHero(ctx context.Context, id uuid.UUID) (*PrimaryHero, error) {
	hero, err := s.repository.GetPrimaryHero(ctx, id)
	if err != nil {
		return nil, err
	}
	item, err := s.GetDiscoveryItem(ctx, hero.DiscoveryItemID)
	if err != nil {
		return nil, err
	}
	hero.DiscoveryItem = item
	return hero, nil
}

func (s *service) UpdatePrimaryHero(ctx context.Context, hero *PrimaryHero) error {
	existing, err := s.repository.GetPrimaryHero(ctx, hero.ID)
	if err != nil {
		return err
	}

	if err := s.validatePrimaryHero(ctx, hero); err != nil {
		return err
	}

	hero.CreatedAt = existing.CreatedAt
	hero.UpdatedAt = time.Now().UTC()
	if err := s.repository.UpdatePrimaryHero(ctx, hero); err != nil {
		return &ShelfError{Kind: "primary hero", ID: hero.ID, Op: "update", Err: err}
	}

	if s.eventSink != nil {
		if err := s.eventSink.PrimaryHeroSaved(ctx, hero); err != nil {
			s.logger.WarnContext(ctx, "Event sink failed", "event", "primary_hero_saved", "id", hero.ID, "err", err)
		}
	}
	return nil
}

func (s *service) DeletePrimaryHero(ctx context.Context, id uuid.UUID) error {
	if err := s.repository.DeletePrimaryHero(ctx, id); err != nil {
		return &ShelfError{Kind: "primary hero", ID: id, Op: "delete", Err: err}
	}

	if s.eventSink != nil {
		if err := s.eventSink.PrimaryHeroDeleted(ctx, id); err != nil {
			s.logger.WarnContext(ctx, "Event sink failed", "event", "primary_hero_deleted", "id", id, "err", err)
		}
	}
	return nil
}

func (s *service) ListPrimaryHeroes(ctx context.Context, filter PrimaryHeroFilter) ([]*PrimaryHero, error) {
	return s.repository.ListPrimaryHeroes(ctx, filter)
}

// Secondary shelf operations

func (s *service) CreateSecondaryHero(ctx context.Context, req CreateSecondaryHeroRequest) (*SecondaryHero, error) {
	now := time.Now().UTC()
	hero := &SecondaryHero{
		ID:          uuid.New(),
		Headline:    req.Headline,
		Description: req.Description,
		CTAURL:      req.CTAURL,
		CTAText:     req.CTAText,
		Enabled:     req.Enabled,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.validateSecondaryHero(ctx, hero); err != nil {
		return nil, err
	}

	if err := s.repository.CreateSecondaryHero(ctx, hero); err != nil {
		return nil, &ShelfError{Kind: "secondary hero", ID: hero.ID, Op: "create", Err: err}
	}

	if s.eventSink != nil {
		if err := s.eventSink.SecondaryHeroSaved(ctx, hero); err != nil {
			s.logger.WarnContext(ctx, "Event sink failed", "event", "secondary_hero_saved", "id", hero.ID, "err", err)
		}
	}
	return hero, nil
}

func (s *service) GetSecondaryHero(ctx context.Context, id uuid.UUID) (*SecondaryHero, error) {
	hero, err := s.repository.GetSecondaryHero(ctx, id)
	if err != nil {
		return nil, err
	}
	modules, err := s.repository.ListModules(ctx, id)
	if err != nil {
		return nil, err
	}
	hero.Modules = modules
	return hero, nil
}

func (s *service) UpdateSecondaryHero(ctx context.Context, hero *SecondaryHero) error {
	existing, err := s.repository.GetSecondaryHero(ctx, hero.ID)
	if err != nil {
		return err
	}

	if err := s.validateSecondaryHero(ctx, hero); err != nil {
		return err
	}

	hero.CreatedAt = existing.CreatedAt
	hero.UpdatedAt = time.Now().UTC()
	if err := s.repository.UpdateSecondaryHero(ctx, hero); err != nil {
		return &ShelfError{Kind: "secondary hero", ID: hero.ID, Op: "update", Err: err}
	}

	if s.eventSink != nil {
		if err := s.eventSink.SecondaryHeroSaved(ctx, hero); err != nil {
			s.logger.WarnContext(ctx, "Event sink failed", "event", "secondary_hero_saved", "id", hero.ID, "err", err)
		}
	}
	return nil
}

func (s *service) DeleteSecondaryHero(ctx context.Context, id uuid.UUID) error {
	if err := s.repository.DeleteSecondaryHero(ctx, id); err != nil {
		return &ShelfError{Kind: "secondary hero", ID: id, Op: "delete", Err: err}
	}

	if s.eventSink != nil {
		if err := s.eventSink.SecondaryHeroDeleted(ctx, id); err != nil {
			s.logger.WarnContext(ctx, "Event sink failed", "event", "secondary_hero_deleted", "id", id, "err", err)
		}
	}
	return nil
}

func (s *service) ListSecondaryHeroes(ctx context.Context, filter SecondaryHeroFilter) ([]*SecondaryHero, error) {
	return s.repository.ListSecondaryHeroes(ctx, filter)
}

// Secondary shelf module operations

func (s *service) CreateModule(ctx context.Context, req CreateModuleRequest) (*SecondaryHeroModule, error) {
	now := time.Now().UTC()
	module := &SecondaryHeroModule{
		ID:          uuid.New(),
		ShelfID:     req.ShelfID,
		Icon:        req.Icon,
		Description: req.Description,
		CTAURL:      req.CTAURL,
		CTAText:     req.CTAText,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.validateModule(ctx, module); err != nil {
		return nil, err
	}

	if err := s.repository.CreateModule(ctx, module); err != nil {
		return nil, &ShelfError{Kind: "secondary hero module", ID: module.ID, Op: "create", Err: err}
	}

	if s.eventSink != nil {
		if err := s.eventSink.ModuleSaved(ctx, module); err != nil {
			s.logger.WarnContext(ctx, "Event sink failed", "event", "module_saved", "id", module.ID, "err", err)
		}
	}
	return module, nil
}

func (s *service) GetModule(ctx context.Context, id uuid.UUID) (*SecondaryHeroModule, error) {
	return s.repository.GetModule(ctx, id)
}

func (s *service) UpdateModule(ctx context.Context, module *SecondaryHeroModule) error {
	existing, err := s.repository.GetModule(ctx, module.ID)
	if err != nil {
		return err
	}

	if err := s.validateModule(ctx, module); err != nil {
		return err
	}

	module.CreatedAt = existing.CreatedAt
	module.UpdatedAt = time.Now().UTC()
	if err := s.repository.UpdateModule(ctx, module); err != nil {
		return &ShelfError{Kind: "secondary hero module", ID: module.ID, Op: "update", Err: err}
	}

	if s.eventSink != nil {
		if err := s.eventSink.ModuleSaved(ctx, module); err != nil {
			s.logger.WarnContext(ctx, "Event sink failed", "event", "module_saved", "id", module.ID, "err", err)
		}
	}
	return nil
}

func (s *service) DeleteModule(ctx context.Context, id uuid.UUID) error {
	if err := s.repository.DeleteModule(ctx, id); err != nil {
		return &ShelfError{Kind: "secondary hero module", ID: id, Op: "delete", Err: err}
	}

	if s.eventSink != nil {
		if err := s.eventSink.ModuleDeleted(ctx, id); err != nil {
			s.logger.WarnContext(ctx, "Event sink failed", "event", "module_deleted", "id", id, "err", err)
		}
	}
	return nil
}

func (s *service) ListModules(ctx context.Context, shelfID uuid.UUID) ([]*SecondaryHeroModule, error) {
	if _, err := s.repository.GetSecondaryHero(ctx, shelfID); err != nil {
		return nil, err
	}
	return s.repository.ListModules(ctx, shelfID)
}

// Choice operations

func (s *service) ImageChoices(ctx context.Context) ([]Choice, error) {
	if s.imageChoices == nil {
		return nil, nil
	}
	return s.imageChoices.Choices(ctx)
}

func (s *service) IconChoices(ctx context.Context) ([]Choice, error) {
	if s.iconChoices == nil {
		return nil, nil
	}
	return s.iconChoices.Choices(ctx)
}

func (s *service) GradientChoices() []Choice {
	choices := make([]Choice, len(GradientChoices))
	copy(choices, GradientChoices)
	return choices
}

// Asset URLs

func (s *service) AssetURLs() AssetURLs {
	return s.assets
}

func (s *service) ImageURL(hero *PrimaryHero) string {
	return s.assets.ImageURL(hero)
}

func (s *service) IconURL(module *SecondaryHeroModule) string {
	return s.assets.IconURL(module)
}
