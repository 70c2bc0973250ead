package repository

// Schema creates the read-only reference tables. The importer applies it
// before loading data; the API never writes to these tables.
const Schema = `
	CREATE TABLE IF NOT EXISTS postal_codes (
		id BIGSERIAL PRIMARY KEY,
		postal_code VARCHAR(16) NOT NULL,
		name VARCHAR(255) NOT NULL,
		normalized_name VARCHAR(255) NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		latitude DOUBLE PRECISION NOT NULL
	);

	CREATE INDEX IF NOT EXISTS postal_codes_postal_code_idx ON postal_codes (postal_code);

	CREATE TABLE IF NOT EXISTS plz_radius (
		source_plz VARCHAR(16) NOT NULL,
		radius_km INTEGER NOT NULL,
		target_plzs TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (source_plz, radius_km)
	);

	CREATE TABLE IF NOT EXISTS jobs (
		row_id BIGSERIAL PRIMARY KEY,
		id TEXT,
		published_at TEXT,
		title TEXT,
		work_location TEXT,
		postal_code VARCHAR(16),
		city TEXT,
		country TEXT,
		workload_min INTEGER,
		workload_max INTEGER,
		contract_type TEXT,
		company TEXT,
		link TEXT,
		profession TEXT,
		salary TEXT
	);

	CREATE INDEX IF NOT EXISTS jobs_published_at_idx ON jobs (published_at DESC);
`
