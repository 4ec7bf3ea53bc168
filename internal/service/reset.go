package service

import (
	"context"
	"database/sql"

	"github.com/j1me/burntrack/internal/model"
	"github.com/j1me/burntrack/internal/store"
)

// ResetApp wipes profile, entries, and the weight series, then re-runs
// catalog initialization from scratch so custom items are gone too.
func ResetApp(ctx context.Context, db *sql.DB, catalog *CatalogService) ([]model.FoodItem, error) {
	if err := store.ClearAll(db); err != nil {
		return nil, err
	}
	return catalog.Reset(ctx, db)
}
