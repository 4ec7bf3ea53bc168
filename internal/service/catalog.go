package service

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/j1me/burntrack/internal/model"
	"github.com/j1me/burntrack/internal/provider/foodsource"
	"github.com/j1me/burntrack/internal/store"
)

type CatalogState string

const (
	CatalogUninitialized CatalogState = "uninitialized"
	CatalogLoading       CatalogState = "loading"
	CatalogReady         CatalogState = "ready"
	CatalogFallback      CatalogState = "fallback"
)

// CatalogRow is one successfully parsed CSV row, before identity
// assignment.
type CatalogRow struct {
	Name        string
	Calories    float64
	ServingSize float64
	ServingUnit string
	ProteinG    *float64
	CarbsG      *float64
	FatG        *float64
	IsCustom    bool
}

// RowOutcome makes the skip/keep decision for each CSV line explicit: either
// Row is set, or SkipReason says why the line was dropped.
type RowOutcome struct {
	Line       int
	Row        *CatalogRow
	SkipReason string
}

// ParseCatalogCSV reads the tabular source by column position: name,
// calories, serving size, serving unit, then optional protein, carbs, fat,
// and an is_custom flag. The first line is a header and is not validated.
func ParseCatalogCSV(data []byte) []RowOutcome {
	lines := strings.Split(string(data), "\n")
	outcomes := make([]RowOutcome, 0, len(lines))
	for i := 1; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) < 4 {
			outcomes = append(outcomes, RowOutcome{Line: i + 1, SkipReason: fmt.Sprintf("expected at least 4 fields, got %d", len(fields))})
			continue
		}
		name := strings.TrimSpace(fields[0])
		if name == "" {
			outcomes = append(outcomes, RowOutcome{Line: i + 1, SkipReason: "empty name"})
			continue
		}
		calories, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil || calories < 0 {
			outcomes = append(outcomes, RowOutcome{Line: i + 1, SkipReason: fmt.Sprintf("invalid calories %q", fields[1])})
			continue
		}
		servingSize, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil || servingSize <= 0 {
			outcomes = append(outcomes, RowOutcome{Line: i + 1, SkipReason: fmt.Sprintf("invalid serving size %q", fields[2])})
			continue
		}
		row := &CatalogRow{
			Name:        name,
			Calories:    calories,
			ServingSize: servingSize,
			ServingUnit: strings.TrimSpace(fields[3]),
			ProteinG:    optionalFloatField(fields, 4),
			CarbsG:      optionalFloatField(fields, 5),
			FatG:        optionalFloatField(fields, 6),
		}
		// Catalog rows are expected to carry false here; a row claiming
		// true is passed through unchanged.
		if len(fields) > 7 {
			row.IsCustom = strings.TrimSpace(fields[7]) == "true"
		}
		outcomes = append(outcomes, RowOutcome{Line: i + 1, Row: row})
	}
	return outcomes
}

// optionalFloatField treats missing or non-numeric optional columns as
// unset, not zero.
func optionalFloatField(fields []string, idx int) *float64 {
	if idx >= len(fields) {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(fields[idx]), 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

// ReduceCatalogRows turns parse outcomes into catalog items with freshly
// generated identities, and returns the skipped outcomes for logging.
func ReduceCatalogRows(outcomes []RowOutcome) ([]model.FoodItem, []RowOutcome) {
	items := make([]model.FoodItem, 0, len(outcomes))
	skipped := make([]RowOutcome, 0)
	for _, o := range outcomes {
		if o.Row == nil {
			skipped = append(skipped, o)
			continue
		}
		items = append(items, model.FoodItem{
			ID:          NewID(),
			Name:        o.Row.Name,
			Calories:    o.Row.Calories,
			ServingSize: o.Row.ServingSize,
			ServingUnit: o.Row.ServingUnit,
			ProteinG:    o.Row.ProteinG,
			CarbsG:      o.Row.CarbsG,
			FatG:        o.Row.FatG,
			IsCustom:    o.Row.IsCustom,
		})
	}
	return items, skipped
}

// MergeCatalog discards previously persisted non-custom items and appends
// the surviving custom items after the fresh catalog rows. Catalog-first
// ordering is an observable contract for search and list display.
func MergeCatalog(fresh, existing []model.FoodItem) []model.FoodItem {
	merged := make([]model.FoodItem, 0, len(fresh)+len(existing))
	merged = append(merged, fresh...)
	for _, item := range existing {
		if item.IsCustom {
			merged = append(merged, item)
		}
	}
	return merged
}

// SearchFoodItems is a case-insensitive substring match on item names. An
// empty or whitespace-only query returns the catalog unfiltered, in catalog
// order.
func SearchFoodItems(items []model.FoodItem, query string) []model.FoodItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	out := make([]model.FoodItem, 0)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), q) {
			out = append(out, item)
		}
	}
	return out
}

// SeedFoodItems is the built-in reference set used when the external source
// is unreachable and nothing is persisted, so the app is never empty.
func SeedFoodItems() []model.FoodItem {
	seed := func(name string, calories, servingSize float64, servingUnit string, protein, carbs, fat float64) model.FoodItem {
		return model.FoodItem{
			ID:          NewID(),
			Name:        name,
			Calories:    calories,
			ServingSize: servingSize,
			ServingUnit: servingUnit,
			ProteinG:    &protein,
			CarbsG:      &carbs,
			FatG:        &fat,
		}
	}
	return []model.FoodItem{
		seed("Chapati", 120, 1, "piece", 3, 20, 2.7),
		seed("Dal Makhani", 230, 100, "g", 9, 20, 12),
		seed("Paneer Butter Masala", 350, 100, "g", 15, 10, 28),
		seed("Chicken Biryani", 250, 100, "g", 15, 30, 8),
		seed("Samosa", 260, 1, "piece", 4, 30, 14),
	}
}

// CatalogService owns catalog initialization and mutation. All writes go
// through the mutex so a reload cannot interleave with a custom-item add
// and drop it.
type CatalogService struct {
	mu     sync.Mutex
	state  CatalogState
	source *foodsource.Client
}

func NewCatalogService(source *foodsource.Client) *CatalogService {
	return &CatalogService{state: CatalogUninitialized, source: source}
}

func (s *CatalogService) State() CatalogState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Initialize loads the external catalog and merges it with whatever is
// persisted: fresh catalog rows replace old non-custom items, custom items
// survive. The merged list is written back as a full replace.
func (s *CatalogService) Initialize(ctx context.Context, db *sql.DB) ([]model.FoodItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, err := store.GetFoodItems(db)
	if err != nil {
		return nil, err
	}
	return s.initializeLocked(ctx, db, existing)
}

// Reset discards custom items too: it re-runs initialization against an
// empty persisted set.
func (s *CatalogService) Reset(ctx context.Context, db *sql.DB) ([]model.FoodItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initializeLocked(ctx, db, nil)
}

func (s *CatalogService) initializeLocked(ctx context.Context, db *sql.DB, existing []model.FoodItem) ([]model.FoodItem, error) {
	s.state = CatalogLoading

	data, err := s.source.FetchCatalog(ctx)
	if err != nil {
		items := existing
		if len(items) == 0 {
			items = SeedFoodItems()
		}
		if err := store.ReplaceFoodItems(db, items); err != nil {
			return nil, err
		}
		log.Printf("food source unavailable, keeping %d fallback items: %v", len(items), err)
		s.state = CatalogFallback
		return items, nil
	}

	fresh, skipped := ReduceCatalogRows(ParseCatalogCSV(data))
	for _, row := range skipped {
		log.Printf("skipping catalog row %d: %s", row.Line, row.SkipReason)
	}
	merged := MergeCatalog(fresh, existing)
	if err := store.ReplaceFoodItems(db, merged); err != nil {
		return nil, err
	}
	s.state = CatalogReady
	return merged, nil
}

type FoodItemInput struct {
	Name        string
	Calories    float64
	ServingSize float64
	ServingUnit string
	ProteinG    *float64
	CarbsG      *float64
	FatG        *float64
}

func validateFoodItemInput(in FoodItemInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("food name is required")
	}
	if err := validateNonNegativeFloat("calories", in.Calories); err != nil {
		return err
	}
	if err := validatePositiveFloat("serving size", in.ServingSize); err != nil {
		return err
	}
	for name, v := range map[string]*float64{"protein": in.ProteinG, "carbs": in.CarbsG, "fat": in.FatG} {
		if v != nil {
			if err := validateNonNegativeFloat(name, *v); err != nil {
				return err
			}
		}
	}
	return nil
}

// AddCustomItem appends a user-created item. Custom items are exempt from
// catalog-reload replacement.
func (s *CatalogService) AddCustomItem(db *sql.DB, in FoodItemInput) (model.FoodItem, error) {
	if err := validateFoodItemInput(in); err != nil {
		return model.FoodItem{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := store.GetFoodItems(db)
	if err != nil {
		return model.FoodItem{}, err
	}
	item := model.FoodItem{
		ID:          NewID(),
		Name:        strings.TrimSpace(in.Name),
		Calories:    in.Calories,
		ServingSize: in.ServingSize,
		ServingUnit: strings.TrimSpace(in.ServingUnit),
		ProteinG:    in.ProteinG,
		CarbsG:      in.CarbsG,
		FatG:        in.FatG,
		IsCustom:    true,
	}
	items = append(items, item)
	if err := store.ReplaceFoodItems(db, items); err != nil {
		return model.FoodItem{}, err
	}
	return item, nil
}

func (s *CatalogService) UpdateItem(db *sql.DB, id string, in FoodItemInput) (model.FoodItem, error) {
	if err := validateFoodItemInput(in); err != nil {
		return model.FoodItem{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := store.GetFoodItems(db)
	if err != nil {
		return model.FoodItem{}, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].Name = strings.TrimSpace(in.Name)
		items[i].Calories = in.Calories
		items[i].ServingSize = in.ServingSize
		items[i].ServingUnit = strings.TrimSpace(in.ServingUnit)
		items[i].ProteinG = in.ProteinG
		items[i].CarbsG = in.CarbsG
		items[i].FatG = in.FatG
		if err := store.ReplaceFoodItems(db, items); err != nil {
			return model.FoodItem{}, err
		}
		return items[i], nil
	}
	return model.FoodItem{}, fmt.Errorf("food item %s not found", id)
}

func (s *CatalogService) DeleteItem(db *sql.DB, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := store.GetFoodItems(db)
	if err != nil {
		return err
	}
	kept := make([]model.FoodItem, 0, len(items))
	found := false
	for _, item := range items {
		if item.ID == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return fmt.Errorf("food item %s not found", id)
	}
	return store.ReplaceFoodItems(db, kept)
}
