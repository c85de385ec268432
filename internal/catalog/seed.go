package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fjod/foodbay/internal/domain"
)

//go:embed catalog.json
var defaultSeed []byte

var (
	ErrDuplicateID     = errors.New("duplicate id in catalog seed")
	ErrUnknownCategory = errors.New("item references unknown category")
	ErrInvalidItem     = errors.New("invalid catalog item")
)

// Seed is the raw catalog data set.
type Seed struct {
	Categories []domain.Category `json:"categories"`
	Items      []domain.FoodItem `json:"items"`
	Reviews    []domain.Review   `json:"reviews"`
	Promos     []domain.Promo    `json:"promos"`
}

// LoadDefault returns a store over the catalog compiled into the binary.
func LoadDefault() (*MemoryStore, error) {
	seed, err := ParseSeed(defaultSeed)
	if err != nil {
		return nil, err
	}
	return NewMemoryStore(seed)
}

func ParseSeed(data []byte) (Seed, error) {
	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("unmarshal catalog seed failed: %w", err)
	}
	return seed, nil
}

// Validate checks the invariants every catalog item must hold.
func (s Seed) Validate() error {
	categories := make(map[string]struct{}, len(s.Categories))
	for _, c := range s.Categories {
		if _, dup := categories[c.ID]; dup {
			return fmt.Errorf("category %q: %w", c.ID, ErrDuplicateID)
		}
		categories[c.ID] = struct{}{}
	}

	items := make(map[string]struct{}, len(s.Items))
	for _, item := range s.Items {
		if _, dup := items[item.ID]; dup {
			return fmt.Errorf("item %q: %w", item.ID, ErrDuplicateID)
		}
		items[item.ID] = struct{}{}

		if _, ok := categories[item.CategoryID]; !ok {
			return fmt.Errorf("item %q category %q: %w", item.ID, item.CategoryID, ErrUnknownCategory)
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("item %q has negative price: %w", item.ID, ErrInvalidItem)
		}
		if item.SalePrice != nil && (item.SalePrice.IsNegative() || item.SalePrice.GreaterThan(item.Price)) {
			return fmt.Errorf("item %q sale price must be between 0 and price: %w", item.ID, ErrInvalidItem)
		}
		if item.Rating < 0 || item.Rating > 5 {
			return fmt.Errorf("item %q rating %v out of range: %w", item.ID, item.Rating, ErrInvalidItem)
		}
		if item.ReviewCount < 0 {
			return fmt.Errorf("item %q has negative review count: %w", item.ID, ErrInvalidItem)
		}
	}
	return nil
}
