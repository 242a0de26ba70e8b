package hero

import (
	"context"
	"errors"
)

// Shelves picks one enabled primary and one enabled secondary shelf and
// renders them for public display.
func (s *service) Shelves(ctx context.Context) (*Shelves, error) {
	enabled := true

	primaries, err := s.repository.ListPrimaryHeroes(ctx, PrimaryHeroFilter{Enabled: &enabled})
	if err != nil {
		return nil, err
	}
	secondaries, err := s.repository.ListSecondaryHeroes(ctx, SecondaryHeroFilter{Enabled: &enabled})
	if err != nil {
		return nil, err
	}

	out := &Shelves{}
	if len(primaries) > 0 {
		out.Primary, err = s.primaryShelf(ctx, primaries[s.pick(len(primaries))])
		if err != nil {
			return nil, err
		}
	}
	if len(secondaries) > 0 {
		out.Secondary, err = s.secondaryShelf(ctx, secondaries[s.pick(len(secondaries))])
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *service) primaryShelf(ctx context.Context, h *PrimaryHero) (*PrimaryShelf, error) {
	item, err := s.GetDiscoveryItem(ctx, h.DiscoveryItemID)
	if err != nil {
		return nil, err
	}

	description := item.CustomDescription
	if description == "" {
		description = item.Addon.Summary
	}

	return &PrimaryShelf{
		ID:          h.ID,
		ImageURL:    s.assets.ImageURL(h),
		Gradient:    h.Gradient(),
		Description: description,
		IsExternal:  h.IsExternal,
		Addon:       item.Addon,
	}, nil
}

func (s *service) secondaryShelf(ctx context.Context, h *SecondaryHero) (*SecondaryShelf, error) {
	modules, err := s.repository.ListModules(ctx, h.ID)
	if err != nil {
		return nil, err
	}

	shelf := &SecondaryShelf{
		ID:          h.ID,
		Headline:    h.Headline,
		Description: h.Description,
		CTA:         newCTA(h.CTAURL, h.CTAText),
		Modules:     make([]ModuleShelf, 0, len(modules)),
	}
	for _, m := range modules {
		shelf.Modules = append(shelf.Modules, ModuleShelf{
			ID:          m.ID,
			IconURL:     s.assets.IconURL(m),
			Description: m.Description,
			CTA:         newCTA(m.CTAURL, m.CTAText),
		})
	}
	return shelf, nil
}

// IsNotFound reports whether err means a shelf, module, discovery item or
// add-on does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPrimaryHeroNotFound) ||
		errors.Is(err, ErrSecondaryHeroNotFound) ||
		errors.Is(err, ErrModuleNotFound) ||
		errors.Is(err, ErrDiscoveryItemNotFound) ||
		errors.Is(err, ErrAddonNotFound)
}
