package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/fjod/foodbay/internal/domain"
	"github.com/shopspring/decimal"
)

type SortOption string

const (
	SortPopular   SortOption = "popular"
	SortRating    SortOption = "rating"
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
	// SortRelevance keeps the order the items came in.
	SortRelevance SortOption = "relevance"
)

var ErrUnknownSort = errors.New("unknown sort option")

// ParseSortOption returns def for an empty string.
func ParseSortOption(s string, def SortOption) (SortOption, error) {
	if s == "" {
		return def, nil
	}
	switch opt := SortOption(s); opt {
	case SortPopular, SortRating, SortPriceLow, SortPriceHigh, SortRelevance:
		return opt, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownSort)
}

// PriceRange bounds are inclusive and apply to the effective price.
// An invalid (unset) bound leaves that side open.
type PriceRange struct {
	Min decimal.NullDecimal
	Max decimal.NullDecimal
}

// NewPriceRange returns a range closed on both ends.
func NewPriceRange(lo, hi decimal.Decimal) *PriceRange {
	return &PriceRange{
		Min: decimal.NewNullDecimal(lo),
		Max: decimal.NewNullDecimal(hi),
	}
}

func (r PriceRange) Contains(price decimal.Decimal) bool {
	if r.Min.Valid && price.LessThan(r.Min.Decimal) {
		return false
	}
	if r.Max.Valid && price.GreaterThan(r.Max.Decimal) {
		return false
	}
	return true
}

// Filters are combined with AND. Zero values disable a filter.
type Filters struct {
	Price     *PriceRange
	MinRating float64
	// Dietary passes an item that carries at least one of these tags.
	Dietary []string
}

func (f Filters) Match(item domain.FoodItem) bool {
	if f.Price != nil && !f.Price.Contains(item.EffectivePrice()) {
		return false
	}
	if item.Rating < f.MinRating {
		return false
	}
	if len(f.Dietary) == 0 {
		return true
	}
	for _, want := range f.Dietary {
		want = normalizeTag(want)
		for _, tag := range item.Tags {
			if normalizeTag(tag) == want {
				return true
			}
		}
	}
	return false
}

// normalizeTag folds case and treats "gluten-free" and "gluten free" alike.
func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(tag, "-", " ")))
}

// Apply filters then sorts items. The input slice is left untouched.
func Apply(items []domain.FoodItem, filters Filters, sortBy SortOption) []domain.FoodItem {
	result := make([]domain.FoodItem, 0, len(items))
	for _, item := range items {
		if filters.Match(item) {
			result = append(result, item)
		}
	}
	sortStable(result, sortBy)
	return result
}

func sortStable(items []domain.FoodItem, sortBy SortOption) {
	var compare func(a, b domain.FoodItem) int
	switch sortBy {
	case SortPopular:
		compare = func(a, b domain.FoodItem) int {
			return boolRank(b.IsPopular) - boolRank(a.IsPopular)
		}
	case SortRating:
		compare = func(a, b domain.FoodItem) int {
			return cmp.Compare(b.Rating, a.Rating)
		}
	case SortPriceLow:
		compare = func(a, b domain.FoodItem) int {
			return a.EffectivePrice().Cmp(b.EffectivePrice())
		}
	case SortPriceHigh:
		compare = func(a, b domain.FoodItem) int {
			return b.EffectivePrice().Cmp(a.EffectivePrice())
		}
	default:
		return
	}
	slices.SortStableFunc(items, compare)
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
