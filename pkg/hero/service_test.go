package hero_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-hero/pkg/hero"
	"github.com/tendant/simple-hero/pkg/hero/choices/memory"
	memoryrepo "github.com/tendant/simple-hero/pkg/hero/repo/memory"
)

func TestServiceCreation(t *testing.T) {
	tests := []struct {
		name        string
		options     []hero.Option
		expectError bool
	}{
		{
			name:        "no options should fail",
			options:     []hero.Option{},
			expectError: true,
		},
		{
			name: "with repository should succeed",
			options: []hero.Option{
				hero.WithRepository(memoryrepo.New()),
			},
			expectError: false,
		},
		{
			name: "with repository and choice sources should succeed",
			options: []hero.Option{
				hero.WithRepository(memoryrepo.New()),
				hero.WithImageChoices(memory.New("foo.png")),
				hero.WithIconChoices(memory.New("foo.svg")),
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := hero.New(tt.options...)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, svc)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}
}

func setupTestService(t *testing.T) (hero.Service, hero.Repository) {
	repo := memoryrepo.New()

	svc, err := hero.New(
		hero.WithRepository(repo),
		hero.WithImageChoices(memory.New("foo.png", "bar.png")),
		hero.WithIconChoices(memory.New("foo.svg", "bar.svg")),
		hero.WithAssetURLs(hero.NewAssetURLs("http://testserver/static/")),
		hero.WithEventSink(hero.NewNoopEventSink()),
	)
	require.NoError(t, err)
	require.NotNil(t, svc)

	return svc, repo
}

// seedPrimaryHero stores a shelf straight through the repository, skipping
// validation, the way fixtures are usually loaded.
func seedPrimaryHero(t *testing.T, repo hero.Repository, h *hero.PrimaryHero) (*hero.PrimaryHero, *hero.DiscoveryItem, *hero.Addon) {
	t.Helper()
	ctx := context.Background()

	addon := &hero.Addon{ID: uuid.New(), Name: "Test Addon", Summary: "An add-on", CreatedAt: time.Now()}
	require.NoError(t, repo.CreateAddon(ctx, addon))

	item := &hero.DiscoveryItem{ID: uuid.New(), AddonID: addon.ID, CreatedAt: time.Now()}
	require.NoError(t, repo.CreateDiscoveryItem(ctx, item))

	h.ID = uuid.New()
	h.DiscoveryItemID = item.ID
	h.CreatedAt = time.Now()
	require.NoError(t, repo.CreatePrimaryHero(ctx, h))
	return h, item, addon
}

func approve(t *testing.T, repo hero.Repository, item *hero.DiscoveryItem) {
	t.Helper()
	item.Recommendable = true
	item.RecommendationApproved = true
	require.NoError(t, repo.UpdateDiscoveryItem(context.Background(), item))
}

func TestPrimaryHero_ImageURL(t *testing.T) {
	svc, repo := setupTestService(t)
	h, _, _ := seedPrimaryHero(t, repo, &hero.PrimaryHero{Image: "foo.png"})

	assert.Equal(t, "http://testserver/static/img/hero/featured/foo.png", svc.ImageURL(h))
}

func TestPrimaryHero_Gradient(t *testing.T) {
	h := &hero.PrimaryHero{GradientColor: "#112233"}
	assert.Equal(t, hero.Gradient{Start: "#20123A", End: "#112233"}, h.Gradient())
}

func TestPrimaryHero_Clean(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()
	h, item, _ := seedPrimaryHero(t, repo, &hero.PrimaryHero{})

	assert.False(t, h.Enabled)
	assert.NoError(t, svc.CleanPrimaryHero(ctx, h))

	h.Enabled = true
	err := svc.CleanPrimaryHero(ctx, h)
	require.Error(t, err)
	assert.True(t, errors.Is(err, hero.ErrValidation))
	var verrs hero.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, []string{hero.MsgOnlyRecommended}, verrs.Messages())

	// Pending is not enough
	item.Recommendable = true
	require.NoError(t, repo.UpdateDiscoveryItem(ctx, item))
	assert.Equal(t, hero.RecommendedStatusPending, item.RecommendedStatus())
	assert.Error(t, svc.CleanPrimaryHero(ctx, h))

	approve(t, repo, item)
	assert.Equal(t, hero.RecommendedStatusRecommended, item.RecommendedStatus())
	assert.NoError(t, svc.CleanPrimaryHero(ctx, h))
}

func TestPrimaryHero_CleanExternal(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()
	h, _, addon := seedPrimaryHero(t, repo, &hero.PrimaryHero{IsExternal: true})

	assert.False(t, h.Enabled)
	assert.NoError(t, svc.CleanPrimaryHero(ctx, h))

	h.Enabled = true
	err := svc.CleanPrimaryHero(ctx, h)
	require.Error(t, err)
	assert.Equal(t, hero.MsgExternalNeedsHomepage, err.Error())

	addon.Homepage = "https://foobar.com/"
	require.NoError(t, repo.UpdateAddon(ctx, addon))
	assert.NoError(t, svc.CleanPrimaryHero(ctx, h))
}

func TestPrimaryHero_CleanOnlyEnabled(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()
	h, item, _ := seedPrimaryHero(t, repo, &hero.PrimaryHero{Image: "foo.png", GradientColor: "#054096"})
	approve(t, repo, item)

	enabled := true
	existing, err := svc.ListPrimaryHeroes(ctx, hero.PrimaryHeroFilter{Enabled: &enabled})
	require.NoError(t, err)
	assert.Empty(t, existing)

	// Not changing the enabled state is fine with no enabled shelf around
	assert.NoError(t, svc.CleanPrimaryHero(ctx, h))

	h.Enabled = true
	assert.NoError(t, svc.CleanPrimaryHero(ctx, h))
	require.NoError(t, svc.UpdatePrimaryHero(ctx, h))

	h.Enabled = false
	err = svc.CleanPrimaryHero(ctx, h)
	require.Error(t, err)
	assert.Equal(t, hero.MsgOnlyEnabledPrimary, err.Error())

	seedPrimaryHero(t, repo, &hero.PrimaryHero{Enabled: true})
	assert.NoError(t, svc.CleanPrimaryHero(ctx, h))
}

func TestPrimaryHero_CreateValidatesFields(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()
	_, item, _ := seedPrimaryHero(t, repo, &hero.PrimaryHero{})

	_, err := svc.CreatePrimaryHero(ctx, hero.CreatePrimaryHeroRequest{
		DiscoveryItemID: item.ID,
		Image:           "missing.png",
		GradientColor:   "#112233",
	})
	require.Error(t, err)

	var verrs hero.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	fields := map[string]string{}
	for _, e := range verrs {
		fields[e.Field] = e.Message
	}
	assert.Equal(t, hero.MsgDiscoveryItemTaken, fields["discovery_item_id"])
	assert.Equal(t, "Select a valid choice. missing.png is not one of the available choices.", fields["image"])
	assert.Equal(t, "Select a valid choice. #112233 is not one of the available choices.", fields["gradient_color"])
}

func TestPrimaryHero_CreateAndGet(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	addon, err := svc.CreateAddon(ctx, hero.CreateAddonRequest{Name: "Dark Reader", Summary: "Dark mode everywhere"})
	require.NoError(t, err)
	item, err := svc.CreateDiscoveryItem(ctx, hero.CreateDiscoveryItemRequest{
		AddonID:                addon.ID,
		Recommendable:          true,
		RecommendationApproved: true,
	})
	require.NoError(t, err)

	created, err := svc.CreatePrimaryHero(ctx, hero.CreatePrimaryHeroRequest{
		DiscoveryItemID: item.ID,
		Image:           "foo.png",
		GradientColor:   "#068989",
		Enabled:         true,
	})
	require.NoError(t, err)

	got, err := svc.GetPrimaryHero(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DiscoveryItem)
	require.NotNil(t, got.DiscoveryItem.Addon)
	assert.Equal(t, "Dark Reader", got.String())

	_, err = svc.GetPrimaryHero(ctx, uuid.New())
	assert.True(t, errors.Is(err, hero.ErrPrimaryHeroNotFound))
}

func TestSecondaryHero_String(t *testing.T) {
	h := &hero.SecondaryHero{Headline: "Its a héadline!", Description: "description"}
	assert.Equal(t, "Its a héadline!", h.String())
}

func TestSecondaryHero_CleanCTA(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()
	h := &hero.SecondaryHero{ID: uuid.New()}

	assert.NoError(t, svc.CleanSecondaryHero(ctx, h))

	h.Enabled = true
	assert.NoError(t, svc.CleanSecondaryHero(ctx, h))

	h.CTAURL = "http://goo.gl/"
	assert.Error(t, svc.CleanSecondaryHero(ctx, h))
	h.CTAURL = ""
	h.CTAText = "click it!"
	err := svc.CleanSecondaryHero(ctx, h)
	require.Error(t, err)
	assert.Equal(t, hero.MsgCTABothOrNeither, err.Error())

	h.Enabled = false
	assert.NoError(t, svc.CleanSecondaryHero(ctx, h))

	h.Enabled = true
	h.CTAURL = "http://goo.gl"
	assert.NoError(t, svc.CleanSecondaryHero(ctx, h))
}

func TestSecondaryHero_CleanOnlyEnabled(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	h, err := svc.CreateSecondaryHero(ctx, hero.CreateSecondaryHeroRequest{
		Headline:    "Its a héadline!",
		Description: "description",
	})
	require.NoError(t, err)
	assert.False(t, h.Enabled)
	assert.NoError(t, svc.CleanSecondaryHero(ctx, h))

	h.Enabled = true
	assert.NoError(t, svc.CleanSecondaryHero(ctx, h))
	require.NoError(t, svc.UpdateSecondaryHero(ctx, h))

	h.Enabled = false
	err = svc.CleanSecondaryHero(ctx, h)
	require.Error(t, err)
	assert.Equal(t, hero.MsgOnlyEnabledSecondary, err.Error())
	assert.Error(t, svc.UpdateSecondaryHero(ctx, h))

	_, err = svc.CreateSecondaryHero(ctx, hero.CreateSecondaryHeroRequest{
		Headline:    "Its a héadline!",
		Description: "description",
		Enabled:     true,
	})
	require.NoError(t, err)
	assert.NoError(t, svc.CleanSecondaryHero(ctx, h))
}

func TestSecondaryHero_FieldLimits(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.CreateSecondaryHero(context.Background(), hero.CreateSecondaryHeroRequest{
		Headline:    "ééééééééééééééééééééééééééééééééééééééééééééééééééé",
		Description: "",
	})
	require.Error(t, err)

	var verrs hero.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 2)
	assert.Equal(t, "headline", verrs[0].Field)
	assert.Equal(t, "Ensure this value has at most 50 characters (it has 51).", verrs[0].Message)
	assert.Equal(t, "description", verrs[1].Field)
	assert.Equal(t, hero.MsgFieldRequired, verrs[1].Message)
}

func TestSecondaryHeroModule_String(t *testing.T) {
	m := &hero.SecondaryHeroModule{Description: "descríption"}
	assert.Equal(t, "descríption", m.String())
}

func TestSecondaryHeroModule_CleanCTA(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()
	m := &hero.SecondaryHeroModule{ID: uuid.New()}

	assert.NoError(t, svc.CleanModule(ctx, m))

	m.CTAURL = "http://goo.gl/"
	assert.Error(t, svc.CleanModule(ctx, m))
	m.CTAURL = ""
	m.CTAText = "click it!"
	assert.Error(t, svc.CleanModule(ctx, m))

	m.CTAURL = "http://goo.gl"
	assert.NoError(t, svc.CleanModule(ctx, m))
}

func TestSecondaryHeroModule_IconURL(t *testing.T) {
	svc, _ := setupTestService(t)
	m := &hero.SecondaryHeroModule{Icon: "foo.svg"}
	assert.Equal(t, "http://testserver/static/img/hero/icons/foo.svg", svc.IconURL(m))
}

func TestSecondaryHeroModule_Lifecycle(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	shelf, err := svc.CreateSecondaryHero(ctx, hero.CreateSecondaryHeroRequest{Headline: "Headline", Description: "description"})
	require.NoError(t, err)

	_, err = svc.CreateModule(ctx, hero.CreateModuleRequest{ShelfID: shelf.ID, Icon: "nope.svg", Description: "d"})
	assert.True(t, errors.Is(err, hero.ErrValidation))

	_, err = svc.CreateModule(ctx, hero.CreateModuleRequest{ShelfID: uuid.New(), Icon: "foo.svg", Description: "d"})
	var verrs hero.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, []string{hero.MsgSecondaryShelfNotFound}, verrs.Messages())

	m, err := svc.CreateModule(ctx, hero.CreateModuleRequest{ShelfID: shelf.ID, Icon: "foo.svg", Description: "d"})
	require.NoError(t, err)

	got, err := svc.GetSecondaryHero(ctx, shelf.ID)
	require.NoError(t, err)
	require.Len(t, got.Modules, 1)
	assert.Equal(t, m.ID, got.Modules[0].ID)

	require.NoError(t, svc.DeleteSecondaryHero(ctx, shelf.ID))
	_, err = svc.GetModule(ctx, m.ID)
	assert.True(t, errors.Is(err, hero.ErrModuleNotFound))
}

func TestShelves(t *testing.T) {
	repo := memoryrepo.New()
	svc, err := hero.New(
		hero.WithRepository(repo),
		hero.WithAssetURLs(hero.NewAssetURLs("http://testserver/static")),
		hero.WithPicker(func(n int) int { return n - 1 }),
	)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		shelves, err := svc.Shelves(ctx)
		require.NoError(t, err)
		assert.Nil(t, shelves.Primary)
		assert.Nil(t, shelves.Secondary)
	})

	_, _, addon := seedPrimaryHero(t, repo, &hero.PrimaryHero{Image: "foo.png", GradientColor: "#054096", Enabled: true})
	seedPrimaryHero(t, repo, &hero.PrimaryHero{Image: "bar.png", GradientColor: "#054096"})

	shelf, err := svc.CreateSecondaryHero(ctx, hero.CreateSecondaryHeroRequest{
		Headline:    "Headline",
		Description: "description",
		CTAURL:      "https://example.com",
		CTAText:     "Go",
		Enabled:     true,
	})
	require.NoError(t, err)
	_, err = svc.CreateModule(ctx, hero.CreateModuleRequest{ShelfID: shelf.ID, Icon: "foo.svg", Description: "module"})
	require.NoError(t, err)

	t.Run("Rendered", func(t *testing.T) {
		shelves, err := svc.Shelves(ctx)
		require.NoError(t, err)

		require.NotNil(t, shelves.Primary)
		assert.Equal(t, "http://testserver/static/img/hero/featured/foo.png", shelves.Primary.ImageURL)
		assert.Equal(t, hero.Gradient{Start: "#20123A", End: "#054096"}, shelves.Primary.Gradient)
		assert.Equal(t, addon.Summary, shelves.Primary.Description)

		require.NotNil(t, shelves.Secondary)
		assert.Equal(t, &hero.CTA{URL: "https://example.com", Text: "Go"}, shelves.Secondary.CTA)
		require.Len(t, shelves.Secondary.Modules, 1)
		assert.Equal(t, "http://testserver/static/img/hero/icons/foo.svg", shelves.Secondary.Modules[0].IconURL)
		assert.Nil(t, shelves.Secondary.Modules[0].CTA)
	})
}

func TestDeleteDiscoveryItemRemovesPrimaryHero(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()
	h, item, _ := seedPrimaryHero(t, repo, &hero.PrimaryHero{})

	require.NoError(t, svc.DeleteDiscoveryItem(ctx, item.ID))
	_, err := svc.GetPrimaryHero(ctx, h.ID)
	assert.True(t, errors.Is(err, hero.ErrPrimaryHeroNotFound))
}
