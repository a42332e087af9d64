package repos

import (
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Products: every commerce field is TEXT on purpose, numeric-looking ones included.
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL UNIQUE,
  description TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT '',
  price TEXT NOT NULL DEFAULT '',
  sku TEXT NOT NULL DEFAULT '',
  product_type TEXT NOT NULL DEFAULT '',
  stock TEXT NOT NULL DEFAULT '',
  allow_backorders TEXT NOT NULL DEFAULT '',
  low_stock_threshold TEXT NOT NULL DEFAULT '',
  shipping_weight TEXT NOT NULL DEFAULT '',
  product_gallery TEXT NOT NULL DEFAULT '',
  attributes TEXT NOT NULL DEFAULT '',
  variations TEXT NOT NULL DEFAULT '',
  shipping_dimensions TEXT NOT NULL DEFAULT '',
  shipping_class TEXT NOT NULL DEFAULT '',
  tax_status TEXT NOT NULL DEFAULT '',
  tax_class TEXT NOT NULL DEFAULT '',
  published INTEGER,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);

CREATE TABLE IF NOT EXISTS product_attributes(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  slug TEXT NOT NULL,
  order_by TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);

-- Terms: product_id is the owning attribute's id (historical column name).
CREATE TABLE IF NOT EXISTS product_terms(
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL REFERENCES product_attributes(id),
  name TEXT NOT NULL,
  slug TEXT NOT NULL,
  description TEXT
);
CREATE INDEX IF NOT EXISTS idx_product_terms_owner ON product_terms(product_id);

-- Categories: lvl is a text-encoded depth, fixed at creation time.
CREATE TABLE IF NOT EXISTS product_categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  slug TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  display_type TEXT NOT NULL DEFAULT '',
  thumbnail TEXT NOT NULL DEFAULT '',
  lvl TEXT NOT NULL,
  parent TEXT NOT NULL,
  parent_id TEXT REFERENCES product_categories(id),
  count INTEGER NOT NULL DEFAULT 0,
  child_categories TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_product_categories_parent ON product_categories(parent_id);

CREATE TABLE IF NOT EXISTS notes(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL UNIQUE,
  content TEXT NOT NULL,
  category TEXT NOT NULL DEFAULT '',
  published INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
`
	_, err := db.Exec(schema)
	return err
}

// IsConflict reports whether err is the store's uniqueness-violation signal.
func IsConflict(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// scanOne drains an INSERT ... RETURNING result into a single struct.
func scanOne[T any](rows *sqlx.Rows) (T, error) {
	defer rows.Close()
	var out T
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return out, err
		}
		return out, sql.ErrNoRows
	}
	err := rows.StructScan(&out)
	return out, err
}
