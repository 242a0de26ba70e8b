package hero

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ctaBothOrNeither reports whether url and text are both set or both empty.
func ctaBothOrNeither(url, text string) bool {
	return (url == "") == (text == "")
}

func checkLength(errs *ValidationErrors, field, value string, limit int) bool {
	if n := utf8.RuneCountInString(value); n > limit {
		*errs = append(*errs, &ValidationError{Field: field, Message: fmt.Sprintf(MsgMaxLength, limit, n)})
		return false
	}
	return true
}

func checkRequired(errs *ValidationErrors, field, value string, limit int) bool {
	if value == "" {
		*errs = append(*errs, &ValidationError{Field: field, Message: MsgFieldRequired})
		return false
	}
	return checkLength(errs, field, value, limit)
}

// checkChoice validates value against the current values of source. A nil
// source accepts any value.
func checkChoice(ctx context.Context, errs *ValidationErrors, field, value string, source ChoiceSource) error {
	if source == nil {
		return nil
	}
	choices, err := source.Choices(ctx)
	if err != nil {
		return err
	}
	for _, c := range choices {
		if c.Value == value {
			return nil
		}
	}
	*errs = append(*errs, &ValidationError{Field: field, Message: fmt.Sprintf(MsgInvalidChoice, value)})
	return nil
}

func (s *service) primaryHeroFieldErrors(ctx context.Context, h *PrimaryHero) (ValidationErrors, error) {
	var errs ValidationErrors

	if h.DiscoveryItemID == uuid.Nil {
		errs = append(errs, &ValidationError{Field: "discovery_item_id", Message: MsgFieldRequired})
	} else if _, err := s.repository.GetDiscoveryItem(ctx, h.DiscoveryItemID); err != nil {
		if !errors.Is(err, ErrDiscoveryItemNotFound) {
			return nil, err
		}
		errs = append(errs, &ValidationError{Field: "discovery_item_id", Message: MsgDiscoveryItemNotFound})
	} else {
		itemID := h.DiscoveryItemID
		linked, err := s.repository.ListPrimaryHeroes(ctx, PrimaryHeroFilter{DiscoveryItemID: &itemID})
		if err != nil {
			return nil, err
		}
		for _, other := range linked {
			if other.ID != h.ID {
				errs = append(errs, &ValidationError{Field: "discovery_item_id", Message: MsgDiscoveryItemTaken})
				break
			}
		}
	}

	if checkRequired(&errs, "image", h.Image, MaxImageLength) {
		if err := checkChoice(ctx, &errs, "image", h.Image, s.imageChoices); err != nil {
			return nil, err
		}
	}

	if checkRequired(&errs, "gradient_color", h.GradientColor, MaxGradientColorLength) && !IsGradientChoice(h.GradientColor) {
		errs = append(errs, &ValidationError{Field: "gradient_color", Message: fmt.Sprintf(MsgInvalidChoice, h.GradientColor)})
	}

	return errs, nil
}

// CleanPrimaryHero runs the record-level checks of a primary shelf. The
// discovery item and add-on are read from the repository, not from the
// expanded fields of h.
func (s *service) CleanPrimaryHero(ctx context.Context, h *PrimaryHero) error {
	if !h.Enabled {
		return s.checkNotOnlyEnabledPrimary(ctx, h)
	}

	item, err := s.repository.GetDiscoveryItem(ctx, h.DiscoveryItemID)
	if err != nil {
		return err
	}

	if h.IsExternal {
		addon, err := s.repository.GetAddon(ctx, item.AddonID)
		if err != nil {
			return err
		}
		if addon.Homepage == "" {
			return newValidationError(MsgExternalNeedsHomepage)
		}
		return nil
	}

	if item.RecommendedStatus() != RecommendedStatusRecommended {
		return newValidationError(MsgOnlyRecommended)
	}
	return nil
}

func (s *service) checkNotOnlyEnabledPrimary(ctx context.Context, h *PrimaryHero) error {
	enabled := true
	heroes, err := s.repository.ListPrimaryHeroes(ctx, PrimaryHeroFilter{Enabled: &enabled})
	if err != nil {
		return err
	}
	if len(heroes) == 1 && heroes[0].ID == h.ID {
		return newValidationError(MsgOnlyEnabledPrimary)
	}
	return nil
}

func (s *service) validatePrimaryHero(ctx context.Context, h *PrimaryHero) error {
	errs, err := s.primaryHeroFieldErrors(ctx, h)
	if err != nil {
		return err
	}
	if len(errs) > 0 {
		return errs
	}
	return s.CleanPrimaryHero(ctx, h)
}

func secondaryHeroFieldErrors(h *SecondaryHero) ValidationErrors {
	var errs ValidationErrors
	checkRequired(&errs, "headline", h.Headline, MaxHeadlineLength)
	checkRequired(&errs, "description", h.Description, MaxSecondaryDescLength)
	checkLength(&errs, "cta_url", h.CTAURL, MaxCTAURLLength)
	checkLength(&errs, "cta_text", h.CTAText, MaxCTATextLength)
	return errs
}

// CleanSecondaryHero runs the record-level checks of a secondary shelf.
func (s *service) CleanSecondaryHero(ctx context.Context, h *SecondaryHero) error {
	if h.Enabled && !ctaBothOrNeither(h.CTAURL, h.CTAText) {
		return newValidationError(MsgCTABothOrNeither)
	}
	if h.Enabled {
		return nil
	}

	enabled := true
	heroes, err := s.repository.ListSecondaryHeroes(ctx, SecondaryHeroFilter{Enabled: &enabled})
	if err != nil {
		return err
	}
	if len(heroes) == 1 && heroes[0].ID == h.ID {
		return newValidationError(MsgOnlyEnabledSecondary)
	}
	return nil
}

func (s *service) validateSecondaryHero(ctx context.Context, h *SecondaryHero) error {
	if errs := secondaryHeroFieldErrors(h); len(errs) > 0 {
		return errs
	}
	return s.CleanSecondaryHero(ctx, h)
}

func (s *service) moduleFieldErrors(ctx context.Context, m *SecondaryHeroModule) (ValidationErrors, error) {
	var errs ValidationErrors

	if m.ShelfID == uuid.Nil {
		errs = append(errs, &ValidationError{Field: "shelf_id", Message: MsgFieldRequired})
	} else if _, err := s.repository.GetSecondaryHero(ctx, m.ShelfID); err != nil {
		if !errors.Is(err, ErrSecondaryHeroNotFound) {
			return nil, err
		}
		errs = append(errs, &ValidationError{Field: "shelf_id", Message: MsgSecondaryShelfNotFound})
	}

	if checkRequired(&errs, "icon", m.Icon, MaxImageLength) {
		if err := checkChoice(ctx, &errs, "icon", m.Icon, s.iconChoices); err != nil {
			return nil, err
		}
	}
	checkRequired(&errs, "description", m.Description, MaxModuleDescriptionLength)
	checkLength(&errs, "cta_url", m.CTAURL, MaxCTAURLLength)
	checkLength(&errs, "cta_text", m.CTAText, MaxCTATextLength)

	return errs, nil
}

// CleanModule runs the record-level checks of a module. Modules have no
// enabled flag, so the call to action rule always applies.
func (s *service) CleanModule(ctx context.Context, m *SecondaryHeroModule) error {
	if !ctaBothOrNeither(m.CTAURL, m.CTAText) {
		return newValidationError(MsgCTABothOrNeither)
	}
	return nil
}

func (s *service) validateModule(ctx context.Context, m *SecondaryHeroModule) error {
	errs, err := s.moduleFieldErrors(ctx, m)
	if err != nil {
		return err
	}
	if len(errs) > 0 {
		return errs
	}
	return s.CleanModule(ctx, m)
}
