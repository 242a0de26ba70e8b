package postgres

// Schema creates the hero tables. Table names are unqualified, so the
// connection's search_path selects the schema.
const Schema = `
CREATE TABLE IF NOT EXISTS hero_addon (
	id UUID PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	slug VARCHAR(255) NOT NULL DEFAULT '',
	summary TEXT NOT NULL DEFAULT '',
	homepage VARCHAR(255) NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS hero_discovery_item (
	id UUID PRIMARY KEY,
	addon_id UUID NOT NULL,
	custom_description TEXT NOT NULL DEFAULT '',
	recommendable BOOLEAN NOT NULL DEFAULT FALSE,
	recommendation_approved BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT hero_discovery_item_addon_fk FOREIGN KEY (addon_id)
		REFERENCES hero_addon(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS hero_primary (
	id UUID PRIMARY KEY,
	discovery_item_id UUID NOT NULL,
	image VARCHAR(255) NOT NULL,
	gradient_color VARCHAR(7) NOT NULL,
	enabled BOOLEAN NOT NULL DEFAULT FALSE,
	is_external BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT hero_primary_discovery_item_key UNIQUE (discovery_item_id),
	CONSTRAINT hero_primary_discovery_item_fk FOREIGN KEY (discovery_item_id)
		REFERENCES hero_discovery_item(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS hero_primary_enabled_idx ON hero_primary (enabled);

CREATE TABLE IF NOT EXISTS hero_secondary (
	id UUID PRIMARY KEY,
	headline VARCHAR(50) NOT NULL,
	description VARCHAR(100) NOT NULL,
	cta_url VARCHAR(255) NOT NULL DEFAULT '',
	cta_text VARCHAR(20) NOT NULL DEFAULT '',
	enabled BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS hero_secondary_enabled_idx ON hero_secondary (enabled);

CREATE TABLE IF NOT EXISTS hero_secondary_module (
	id UUID PRIMARY KEY,
	shelf_id UUID NOT NULL,
	icon VARCHAR(255) NOT NULL,
	description VARCHAR(50) NOT NULL,
	cta_url VARCHAR(255) NOT NULL DEFAULT '',
	cta_text VARCHAR(20) NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT hero_secondary_module_shelf_fk FOREIGN KEY (shelf_id)
		REFERENCES hero_secondary(id) ON DELETE CASCADE
);
`
