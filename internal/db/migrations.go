package db

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS user_profile (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  age INTEGER NOT NULL CHECK(age >= 0),
  gender TEXT NOT NULL CHECK(gender IN ('male', 'female', 'other')),
  height_cm REAL NOT NULL CHECK(height_cm > 0),
  weight_kg REAL NOT NULL CHECK(weight_kg > 0),
  activity_level TEXT NOT NULL,
  weight_goal TEXT NOT NULL CHECK(weight_goal IN ('lose', 'maintain', 'gain')),
  goal_calories INTEGER NOT NULL CHECK(goal_calories >= 0),
  created_at DATETIME NOT NULL,
  updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS food_items (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  calories REAL NOT NULL CHECK(calories >= 0),
  serving_size REAL NOT NULL CHECK(serving_size > 0),
  serving_unit TEXT NOT NULL,
  protein_g REAL CHECK(protein_g >= 0),
  carbs_g REAL CHECK(carbs_g >= 0),
  fat_g REAL CHECK(fat_g >= 0),
  is_custom INTEGER NOT NULL DEFAULT 0,
  position INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_food_items_position ON food_items(position);

CREATE TABLE IF NOT EXISTS food_entries (
  id TEXT PRIMARY KEY,
  food_item_id TEXT NOT NULL,
  item_name TEXT NOT NULL,
  item_calories REAL NOT NULL CHECK(item_calories >= 0),
  item_serving_size REAL NOT NULL CHECK(item_serving_size > 0),
  item_serving_unit TEXT NOT NULL,
  item_protein_g REAL,
  item_carbs_g REAL,
  item_fat_g REAL,
  item_is_custom INTEGER NOT NULL DEFAULT 0,
  servings REAL NOT NULL CHECK(servings > 0),
  meal_type TEXT NOT NULL CHECK(meal_type IN ('breakfast', 'lunch', 'dinner', 'snack')),
  day TEXT NOT NULL,
  created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_food_entries_day ON food_entries(day);
`,
	},
	{
		version: 2,
		name:    "weight_tracking",
		sql: `
CREATE TABLE IF NOT EXISTS weight_entries (
  day TEXT PRIMARY KEY,
  weight_kg REAL NOT NULL CHECK(weight_kg > 0)
);
`,
	},
	{
		version: 3,
		name:    "app_config",
		sql: `
CREATE TABLE IF NOT EXISTS app_config (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
}

func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}

	return nil
}
