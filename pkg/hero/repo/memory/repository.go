package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tendant/simple-hero/pkg/hero"
)

// Repository implements hero.Repository using in-memory storage
type Repository struct {
	mu             sync.RWMutex
	addons         map[uuid.UUID]*hero.Addon
	discoveryItems map[uuid.UUID]*hero.DiscoveryItem
	primaries      map[uuid.UUID]*hero.PrimaryHero
	secondaries    map[uuid.UUID]*hero.SecondaryHero
	modules        map[uuid.UUID]*hero.SecondaryHeroModule
	primaryByItem  map[uuid.UUID]uuid.UUID // discovery_item_id -> primary_hero_id
}

// New creates a new in-memory repository
func New() hero.Repository {
	return &Repository{
		addons:         make(map[uuid.UUID]*hero.Addon),
		discoveryItems: make(map[uuid.UUID]*hero.DiscoveryItem),
		primaries:      make(map[uuid.UUID]*hero.PrimaryHero),
		secondaries:    make(map[uuid.UUID]*hero.SecondaryHero),
		modules:        make(map[uuid.UUID]*hero.SecondaryHeroModule),
		primaryByItem:  make(map[uuid.UUID]uuid.UUID),
	}
}

// Addon operations

func (r *Repository) CreateAddon(ctx context.Context, addon *hero.Addon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	addonCopy := *addon
	r.addons[addon.ID] = &addonCopy
	return nil
}

func (r *Repository) GetAddon(ctx context.Context, id uuid.UUID) (*hero.Addon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	addon, exists := r.addons[id]
	if !exists {
		return nil, hero.ErrAddonNotFound
	}
	addonCopy := *addon
	return &addonCopy, nil
}

func (r *Repository) UpdateAddon(ctx context.Context, addon *hero.Addon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.addons[addon.ID]; !exists {
		return hero.ErrAddonNotFound
	}
	addonCopy := *addon
	r.addons[addon.ID] = &addonCopy
	return nil
}

func (r *Repository) ListAddons(ctx context.Context) ([]*hero.Addon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*hero.Addon, 0, len(r.addons))
	for _, addon := range r.addons {
		addonCopy := *addon
		result = append(result, &addonCopy)
	}
	sortByCreated(result, func(a *hero.Addon) (time.Time, uuid.UUID) { return a.CreatedAt, a.ID })
	return result, nil
}

// Discovery item operations

func (r *Repository) CreateDiscoveryItem(ctx context.Context, item *hero.DiscoveryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.addons[item.AddonID]; !exists {
		return hero.ErrAddonNotFound
	}
	itemCopy := *item
	itemCopy.Addon = nil
	r.discoveryItems[item.ID] = &itemCopy
	return nil
}

func (r *Repository) GetDiscoveryItem(ctx context.Context, id uuid.UUID) (*hero.DiscoveryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.discoveryItems[id]
	if !exists {
		return nil, hero.ErrDiscoveryItemNotFound
	}
	itemCopy := *item
	return &itemCopy, nil
}

func (r *Repository) UpdateDiscoveryItem(ctx context.Context, item *hero.DiscoveryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.discoveryItems[item.ID]; !exists {
		return hero.ErrDiscoveryItemNotFound
	}
	if _, exists := r.addons[item.AddonID]; !exists {
		return hero.ErrAddonNotFound
	}
	itemCopy := *item
	itemCopy.Addon = nil
	r.discoveryItems[item.ID] = &itemCopy
	return nil
}

func (r *Repository) DeleteDiscoveryItem(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.discoveryItems[id]; !exists {
		return hero.ErrDiscoveryItemNotFound
	}
	if heroID, linked := r.primaryByItem[id]; linked {
		delete(r.primaries, heroID)
		delete(r.primaryByItem, id)
	}
	delete(r.discoveryItems, id)
	return nil
}

// Primary shelf operations

func (r *Repository) CreatePrimaryHero(ctx context.Context, h *hero.PrimaryHero) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.discoveryItems[h.DiscoveryItemID]; !exists {
		return hero.ErrDiscoveryItemNotFound
	}
	if _, taken := r.primaryByItem[h.DiscoveryItemID]; taken {
		return hero.ErrDuplicateDiscoveryItem
	}

	heroCopy := *h
	heroCopy.DiscoveryItem = nil
	r.primaries[h.ID] = &heroCopy
	r.primaryByItem[h.DiscoveryItemID] = h.ID
	return nil
}

func (r *Repository) GetPrimaryHero(ctx context.Context, id uuid.UUID) (*hero.PrimaryHero, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, exists := r.primaries[id]
	if !exists {
		return nil, hero.ErrPrimaryHeroNotFound
	}
	heroCopy := *h
	return &heroCopy, nil
}

func (r *Repository) UpdatePrimaryHero(ctx context.Context, h *hero.PrimaryHero) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.primaries[h.ID]
	if !exists {
		return hero.ErrPrimaryHeroNotFound
	}
	if existing.DiscoveryItemID != h.DiscoveryItemID {
		if _, exists := r.discoveryItems[h.DiscoveryItemID]; !exists {
			return hero.ErrDiscoveryItemNotFound
		}
		if _, taken := r.primaryByItem[h.DiscoveryItemID]; taken {
			return hero.ErrDuplicateDiscoveryItem
		}
		delete(r.primaryByItem, existing.DiscoveryItemID)
		r.primaryByItem[h.DiscoveryItemID] = h.ID
	}

	heroCopy := *h
	heroCopy.DiscoveryItem = nil
	r.primaries[h.ID] = &heroCopy
	return nil
}

func (r *Repository) DeletePrimaryHero(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, exists := r.primaries[id]
	if !exists {
		return hero.ErrPrimaryHeroNotFound
	}
	delete(r.primaryByItem, h.DiscoveryItemID)
	delete(r.primaries, id)
	return nil
}

func (r *Repository) ListPrimaryHeroes(ctx context.Context, filter hero.PrimaryHeroFilter) ([]*hero.PrimaryHero, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*hero.PrimaryHero
	for _, h := range r.primaries {
		if filter.Enabled != nil && h.Enabled != *filter.Enabled {
			continue
		}
		if filter.DiscoveryItemID != nil && h.DiscoveryItemID != *filter.DiscoveryItemID {
			continue
		}
		heroCopy := *h
		result = append(result, &heroCopy)
	}
	sortByCreated(result, func(h *hero.PrimaryHero) (time.Time, uuid.UUID) { return h.CreatedAt, h.ID })
	return result, nil
}

// Secondary shelf operations

func (r *Repository) CreateSecondaryHero(ctx context.Context, h *hero.SecondaryHero) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	heroCopy := *h
	heroCopy.Modules = nil
	r.secondaries[h.ID] = &heroCopy
	return nil
}

func (r *Repository) GetSecondaryHero(ctx context.Context, id uuid.UUID) (*hero.SecondaryHero, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, exists := r.secondaries[id]
	if !exists {
		return nil, hero.ErrSecondaryHeroNotFound
	}
	heroCopy := *h
	return &heroCopy, nil
}

func (r *Repository) UpdateSecondaryHero(ctx context.Context, h *hero.SecondaryHero) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.secondaries[h.ID]; !exists {
		return hero.ErrSecondaryHeroNotFound
	}
	heroCopy := *h
	heroCopy.Modules = nil
	r.secondaries[h.ID] = &heroCopy
	return nil
}

func (r *Repository) DeleteSecondaryHero(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.secondaries[id]; !exists {
		return hero.ErrSecondaryHeroNotFound
	}
	for moduleID, m := range r.modules {
		if m.ShelfID == id {
			delete(r.modules, moduleID)
		}
	}
	delete(r.secondaries, id)
	return nil
}

func (r *Repository) ListSecondaryHeroes(ctx context.Context, filter hero.SecondaryHeroFilter) ([]*hero.SecondaryHero, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*hero.SecondaryHero
	for _, h := range r.secondaries {
		if filter.Enabled != nil && h.Enabled != *filter.Enabled {
			continue
		}
		heroCopy := *h
		result = append(result, &heroCopy)
	}
	sortByCreated(result, func(h *hero.SecondaryHero) (time.Time, uuid.UUID) { return h.CreatedAt, h.ID })
	return result, nil
}

// Secondary shelf module operations

func (r *Repository) CreateModule(ctx context.Context, m *hero.SecondaryHeroModule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.secondaries[m.ShelfID]; !exists {
		return hero.ErrSecondaryHeroNotFound
	}
	moduleCopy := *m
	r.modules[m.ID] = &moduleCopy
	return nil
}

func (r *Repository) GetModule(ctx context.Context, id uuid.UUID) (*hero.SecondaryHeroModule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, exists := r.modules[id]
	if !exists {
		return nil, hero.ErrModuleNotFound
	}
	moduleCopy := *m
	return &moduleCopy, nil
}

func (r *Repository) UpdateModule(ctx context.Context, m *hero.SecondaryHeroModule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[m.ID]; !exists {
		return hero.ErrModuleNotFound
	}
	if _, exists := r.secondaries[m.ShelfID]; !exists {
		return hero.ErrSecondaryHeroNotFound
	}
	moduleCopy := *m
	r.modules[m.ID] = &moduleCopy
	return nil
}

func (r *Repository) DeleteModule(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[id]; !exists {
		return hero.ErrModuleNotFound
	}
	delete(r.modules, id)
	return nil
}

func (r *Repository) ListModules(ctx context.Context, shelfID uuid.UUID) ([]*hero.SecondaryHeroModule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*hero.SecondaryHeroModule
	for _, m := range r.modules {
		if m.ShelfID == shelfID {
			moduleCopy := *m
			result = append(result, &moduleCopy)
		}
	}
	sortByCreated(result, func(m *hero.SecondaryHeroModule) (time.Time, uuid.UUID) { return m.CreatedAt, m.ID })
	return result, nil
}

// sortByCreated sorts by created_at ascending, breaking ties by id
func sortByCreated[T any](items []T, key func(T) (time.Time, uuid.UUID)) {
	sort.Slice(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return idi.String() < idj.String()
	})
}
