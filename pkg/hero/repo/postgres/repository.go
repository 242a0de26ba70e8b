package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tendant/simple-hero/pkg/hero"
)

// DBTX is an interface that allows us to use either a database connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repository implements hero.Repository using PostgreSQL
type Repository struct {
	db DBTX
}

// New creates a new PostgreSQL repository
func New(db DBTX) hero.Repository {
	return &Repository{db: db}
}

// NewWithPool creates a new PostgreSQL repository with connection pool
func NewWithPool(pool *pgxpool.Pool) hero.Repository {
	return &Repository{db: pool}
}

// Migrate creates the hero tables if they do not exist
func Migrate(ctx context.Context, db DBTX) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create hero tables: %w", err)
	}
	return nil
}

// foreign key constraint -> error for the missing row
var missingReference = map[string]error{
	"hero_discovery_item_addon_fk":   hero.ErrAddonNotFound,
	"hero_primary_discovery_item_fk": hero.ErrDiscoveryItemNotFound,
	"hero_secondary_module_shelf_fk": hero.ErrSecondaryHeroNotFound,
}

// Error handling helper
func (r *Repository) handlePostgresError(operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if pgErr.ConstraintName == "hero_primary_discovery_item_key" {
				return hero.ErrDuplicateDiscoveryItem
			}
			return fmt.Errorf("duplicate entry in %s: %s", operation, pgErr.ConstraintName)
		case "23503": // foreign_key_violation
			if notFound, ok := missingReference[pgErr.ConstraintName]; ok {
				return notFound
			}
			return fmt.Errorf("referenced record not found")
		case "23502": // not_null_violation
			return fmt.Errorf("required field %s is missing", pgErr.ColumnName)
		case "42P01": // undefined_table
			return fmt.Errorf("table does not exist - database migration required")
		default:
			return fmt.Errorf("database error in %s: %s (code: %s)", operation, pgErr.Message, pgErr.Code)
		}
	}

	return fmt.Errorf("database error in %s: %w", operation, err)
}

// execOne runs a statement that must touch exactly one row
func (r *Repository) execOne(ctx context.Context, operation string, notFound error, query string, args ...interface{}) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return r.handlePostgresError(operation, err)
	}
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}

// Addon operations

const addonColumns = `id, name, slug, summary, homepage, created_at, updated_at`

func scanAddon(row pgx.Row) (*hero.Addon, error) {
	var a hero.Addon
	err := row.Scan(&a.ID, &a.Name, &a.Slug, &a.Summary, &a.Homepage, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *Repository) CreateAddon(ctx context.Context, addon *hero.Addon) error {
	query := `
		INSERT INTO hero_addon (` + addonColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		addon.ID, addon.Name, addon.Slug, addon.Summary, addon.Homepage,
		addon.CreatedAt, addon.UpdatedAt)
	if err != nil {
		return r.handlePostgresError("create addon", err)
	}
	return nil
}

func (r *Repository) GetAddon(ctx context.Context, id uuid.UUID) (*hero.Addon, error) {
	query := `SELECT ` + addonColumns + ` FROM hero_addon WHERE id = $1`

	addon, err := scanAddon(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, hero.ErrAddonNotFound
		}
		return nil, r.handlePostgresError("get addon", err)
	}
	return addon, nil
}

func (r *Repository) UpdateAddon(ctx context.Context, addon *hero.Addon) error {
	query := `
		UPDATE hero_addon SET
			name = $2, slug = $3, summary = $4, homepage = $5, updated_at = $6
		WHERE id = $1`

	return r.execOne(ctx, "update addon", hero.ErrAddonNotFound, query,
		addon.ID, addon.Name, addon.Slug, addon.Summary, addon.Homepage, addon.UpdatedAt)
}

func (r *Repository) ListAddons(ctx context.Context) ([]*hero.Addon, error) {
	query := `SELECT ` + addonColumns + ` FROM hero_addon ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, r.handlePostgresError("list addons", err)
	}
	defer rows.Close()

	var result []*hero.Addon
	for rows.Next() {
		addon, err := scanAddon(rows)
		if err != nil {
			return nil, r.handlePostgresError("scan addon", err)
		}
		result = append(result, addon)
	}
	return result, rows.Err()
}

// Discovery item operations

const discoveryItemColumns = `id, addon_id, custom_description, recommendable,
	recommendation_approved, created_at, updated_at`

func (r *Repository) CreateDiscoveryItem(ctx context.Context, item *hero.DiscoveryItem) error {
	query := `
		INSERT INTO hero_discovery_item (` + discoveryItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		item.ID, item.AddonID, item.CustomDescription, item.Recommendable,
		item.RecommendationApproved, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return r.handlePostgresError("create discovery item", err)
	}
	return nil
}

func (r *Repository) GetDiscoveryItem(ctx context.Context, id uuid.UUID) (*hero.DiscoveryItem, error) {
	query := `SELECT ` + discoveryItemColumns + ` FROM hero_discovery_item WHERE id = $1`

	var item hero.DiscoveryItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.AddonID, &item.CustomDescription, &item.Recommendable,
		&item.RecommendationApproved, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, hero.ErrDiscoveryItemNotFound
		}
		return nil, r.handlePostgresError("get discovery item", err)
	}
	return &item, nil
}

func (r *Repository) UpdateDiscoveryItem(ctx context.Context, item *hero.DiscoveryItem) error {
	query := `
		UPDATE hero_discovery_item SET
			addon_id = $2, custom_description = $3, recommendable = $4,
			recommendation_approved = $5, updated_at = $6
		WHERE id = $1`

	return r.execOne(ctx, "update discovery item", hero.ErrDiscoveryItemNotFound, query,
		item.ID, item.AddonID, item.CustomDescription, item.Recommendable,
		item.RecommendationApproved, item.UpdatedAt)
}

func (r *Repository) DeleteDiscoveryItem(ctx context.Context, id uuid.UUID) error {
	return r.execOne(ctx, "delete discovery item", hero.ErrDiscoveryItemNotFound,
		`DELETE FROM hero_discovery_item WHERE id = $1`, id)
}

// Primary shelf operations

const primaryColumns = `id, discovery_item_id, image, gradient_color, enabled,
	is_external, created_at, updated_at`

func scanPrimaryHero(row pgx.Row) (*hero.PrimaryHero, error) {
	var h hero.PrimaryHero
	err := row.Scan(&h.ID, &h.DiscoveryItemID, &h.Image, &h.GradientColor,
		&h.Enabled, &h.IsExternal, &h.CreatedAt, &h.UpdatedAt)
	return &h, err
}

func (r *Repository) CreatePrimaryHero(ctx context.Context, h *hero.PrimaryHero) error {
	query := `
		INSERT INTO hero_primary (` + primaryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		h.ID, h.DiscoveryItemID, h.Image, h.GradientColor, h.Enabled,
		h.IsExternal, h.CreatedAt, h.UpdatedAt)
	if err != nil {
		return r.handlePostgresError("create primary hero", err)
	}
	return nil
}

func (r *Repository) GetPrimaryHero(ctx context.Context, id uuid.UUID) (*hero.PrimaryHero, error) {
	query := `SELECT ` + primaryColumns + ` FROM hero_primary WHERE id = $1`

	h, err := scanPrimaryHero(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, hero.ErrPrimaryHeroNotFound
		}
		return nil, r.handlePostgresError("get primary hero", err)
	}
	return h, nil
}

func (r *Repository) UpdatePrimaryHero(ctx context.Context, h *hero.PrimaryHero) error {
	query := `
		UPDATE hero_primary SET
			discovery_item_id = $2, image = $3, gradient_color = $4,
			enabled = $5, is_external = $6, updated_at = $7
		WHERE id = $1`

	return r.execOne(ctx, "update primary hero", hero.ErrPrimaryHeroNotFound, query,
		h.ID, h.DiscoveryItemID, h.Image, h.GradientColor, h.Enabled,
		h.IsExternal, h.UpdatedAt)
}

func (r *Repository) DeletePrimaryHero(ctx context.Context, id uuid.UUID) error {
	return r.execOne(ctx, "delete primary hero", hero.ErrPrimaryHeroNotFound,
		`DELETE FROM hero_primary WHERE id = $1`, id)
}

func (r *Repository) ListPrimaryHeroes(ctx context.Context, filter hero.PrimaryHeroFilter) ([]*hero.PrimaryHero, error) {
	query := `
		SELECT ` + primaryColumns + ` FROM hero_primary
		WHERE ($1::boolean IS NULL OR enabled = $1)
		  AND ($2::uuid IS NULL OR discovery_item_id = $2)
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query, filter.Enabled, filter.DiscoveryItemID)
	if err != nil {
		return nil, r.handlePostgresError("list primary heroes", err)
	}
	defer rows.Close()

	var result []*hero.PrimaryHero
	for rows.Next() {
		h, err := scanPrimaryHero(rows)
		if err != nil {
			return nil, r.handlePostgresError("scan primary hero", err)
		}
		result = append(result, h)
	}
	return result, rows.Err()
}

// Secondary shelf operations

const secondaryColumns = `id, headline, description, cta_url, cta_text, enabled,
	created_at, updated_at`

func scanSecondaryHero(row pgx.Row) (*hero.SecondaryHero, error) {
	var h hero.SecondaryHero
	err := row.Scan(&h.ID, &h.Headline, &h.Description, &h.CTAURL, &h.CTAText,
		&h.Enabled, &h.CreatedAt, &h.UpdatedAt)
	return &h, err
}

func (r *Repository) CreateSecondaryHero(ctx context.Context, h *hero.SecondaryHero) error {
	query := `
		INSERT INTO hero_secondary (` + secondaryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		h.ID, h.Headline, h.Description, h.CTAURL, h.CTAText, h.Enabled,
		h.CreatedAt, h.UpdatedAt)
	if err != nil {
		return r.handlePostgresError("create secondary hero", err)
	}
	return nil
}

func (r *Repository) GetSecondaryHero(ctx context.Context, id uuid.UUID) (*hero.SecondaryHero, error) {
	query := `SELECT ` + secondaryColumns + ` FROM hero_secondary WHERE id = $1`

	h, err := scanSecondaryHero(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, hero.ErrSecondaryHeroNotFound
		}
		return nil, r.handlePostgresError("get secondary hero", err)
	}
	return h, nil
}

func (r *Repository) UpdateSecondaryHero(ctx context.Context, h *hero.SecondaryHero) error {
	query := `
		UPDATE hero_secondary SET
			headline = $2, description = $3, cta_url = $4, cta_text = $5,
			enabled = $6, updated_at = $7
		WHERE id = $1`

	return r.execOne(ctx, "update secondary hero", hero.ErrSecondaryHeroNotFound, query,
		h.ID, h.Headline, h.Description, h.CTAURL, h.CTAText, h.Enabled, h.UpdatedAt)
}

func (r *Repository) DeleteSecondaryHero(ctx context.Context, id uuid.UUID) error {
	return r.execOne(ctx, "delete secondary hero", hero.ErrSecondaryHeroNotFound,
		`DELETE FROM hero_secondary WHERE id = $1`, id)
}

func (r *Repository) ListSecondaryHeroes(ctx context.Context, filter hero.SecondaryHeroFilter) ([]*hero.SecondaryHero, error) {
	query := `
		SELECT ` + secondaryColumns + ` FROM hero_secondary
		WHERE ($1::boolean IS NULL OR enabled = $1)
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query, filter.Enabled)
	if err != nil {
		return nil, r.handlePostgresError("list secondary heroes", err)
	}
	defer rows.Close()

	var result []*hero.SecondaryHero
	for rows.Next() {
		h, err := scanSecondaryHero(rows)
		if err != nil {
			return nil, r.handlePostgresError("scan secondary hero", err)
		}
		result = append(result, h)
	}
	return result, rows.Err()
}

// Secondary shelf module operations

const moduleColumns = `id, shelf_id, icon, description, cta_url, cta_text,
	created_at, updated_at`

func scanModule(row pgx.Row) (*hero.SecondaryHeroModule, error) {
	var m hero.SecondaryHeroModule
	err := row.Scan(&m.ID, &m.ShelfID, &m.Icon, &m.Description, &m.CTAURL,
		&m.CTAText, &m.CreatedAt, &m.UpdatedAt)
	return &m, err
}

func (r *Repository) CreateModule(ctx context.Context, m *hero.SecondaryHeroModule) error {
	query := `
		INSERT INTO hero_secondary_module (` + moduleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		m.ID, m.ShelfID, m.Icon, m.Description, m.CTAURL, m.CTAText,
		m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return r.handlePostgresError("create secondary hero module", err)
	}
	return nil
}

func (r *Repository) GetModule(ctx context.Context, id uuid.UUID) (*hero.SecondaryHeroModule, error) {
	query := `SELECT ` + moduleColumns + ` FROM hero_secondary_module WHERE id = $1`

	m, err := scanModule(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, hero.ErrModuleNotFound
		}
		return nil, r.handlePostgresError("get secondary hero module", err)
	}
	return m, nil
}

func (r *Repository) UpdateModule(ctx context.Context, m *hero.SecondaryHeroModule) error {
	query := `
		UPDATE hero_secondary_module SET
			shelf_id = $2, icon = $3, description = $4, cta_url = $5,
			cta_text = $6, updated_at = $7
		WHERE id = $1`

	return r.execOne(ctx, "update secondary hero module", hero.ErrModuleNotFound, query,
		m.ID, m.ShelfID, m.Icon, m.Description, m.CTAURL, m.CTAText, m.UpdatedAt)
}

func (r *Repository) DeleteModule(ctx context.Context, id uuid.UUID) error {
	return r.execOne(ctx, "delete secondary hero module", hero.ErrModuleNotFound,
		`DELETE FROM hero_secondary_module WHERE id = $1`, id)
}

func (r *Repository) ListModules(ctx context.Context, shelfID uuid.UUID) ([]*hero.SecondaryHeroModule, error) {
	query := `
		SELECT ` + moduleColumns + ` FROM hero_secondary_module
		WHERE shelf_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query, shelfID)
	if err != nil {
		return nil, r.handlePostgresError("list secondary hero modules", err)
	}
	defer rows.Close()

	var result []*hero.SecondaryHeroModule
	for rows.Next() {
		m, err := scanModule(rows)
		if err != nil {
			return nil, r.handlePostgresError("scan secondary hero module", err)
		}
		result = append(result, m)
	}
	return result, rows.Err()
}
