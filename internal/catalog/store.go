package catalog

import (
	"slices"
	"strings"

	"github.com/fjod/foodbay/internal/domain"
)

// DefaultTopRatedLimit is used by callers that do not pick their own limit.
const DefaultTopRatedLimit = 6

// Store defines the read-only catalog queries
type Store interface {
	// Categories returns all categories in seed order
	Categories() []domain.Category

	// CategoryByID returns the category and true, or false when it does not exist
	CategoryByID(id string) (domain.Category, bool)

	// ItemsByCategory returns the items of a category in seed order.
	// An unknown category yields an empty slice.
	ItemsByCategory(categoryID string) []domain.FoodItem

	// ItemCount counts the items that actually belong to a category
	ItemCount(categoryID string) int

	// ItemByID returns the item and true, or false when it does not exist
	ItemByID(id string) (domain.FoodItem, bool)

	PopularItems() []domain.FoodItem

	// TopRatedItems returns up to limit items ordered by rating descending,
	// ties keep seed order
	TopRatedItems(limit int) []domain.FoodItem

	SaleItems() []domain.FoodItem

	// Search matches the query case-insensitively against name, description,
	// cafe name and tags. A blank query matches nothing.
	Search(query string) []domain.FoodItem

	ReviewsByProductID(productID string) []domain.Review

	Promos() []domain.Promo
}

// MemoryStore implements Store over data held in memory.
// It is never mutated after construction so it needs no locking.
type MemoryStore struct {
	categories []domain.Category
	items      []domain.FoodItem
	reviews    []domain.Review
	promos     []domain.Promo

	itemIndex     map[string]int
	categoryIndex map[string]int
}

// NewMemoryStore validates the seed and builds the lookup indexes.
func NewMemoryStore(seed Seed) (*MemoryStore, error) {
	if err := seed.Validate(); err != nil {
		return nil, err
	}

	s := &MemoryStore{
		categories:    seed.Categories,
		items:         seed.Items,
		reviews:       seed.Reviews,
		promos:        seed.Promos,
		itemIndex:     make(map[string]int, len(seed.Items)),
		categoryIndex: make(map[string]int, len(seed.Categories)),
	}
	for i, c := range s.categories {
		s.categoryIndex[c.ID] = i
	}
	for i, item := range s.items {
		s.itemIndex[item.ID] = i
	}
	return s, nil
}

func (s *MemoryStore) Categories() []domain.Category {
	return slices.Clone(s.categories)
}

func (s *MemoryStore) CategoryByID(id string) (domain.Category, bool) {
	i, ok := s.categoryIndex[id]
	if !ok {
		return domain.Category{}, false
	}
	return s.categories[i], true
}

func (s *MemoryStore) ItemsByCategory(categoryID string) []domain.FoodItem {
	return s.filter(func(item domain.FoodItem) bool {
		return item.CategoryID == categoryID
	})
}

func (s *MemoryStore) ItemCount(categoryID string) int {
	n := 0
	for _, item := range s.items {
		if item.CategoryID == categoryID {
			n++
		}
	}
	return n
}

func (s *MemoryStore) ItemByID(id string) (domain.FoodItem, bool) {
	i, ok := s.itemIndex[id]
	if !ok {
		return domain.FoodItem{}, false
	}
	return s.items[i].Clone(), true
}

func (s *MemoryStore) PopularItems() []domain.FoodItem {
	return s.filter(func(item domain.FoodItem) bool {
		return item.IsPopular
	})
}

func (s *MemoryStore) TopRatedItems(limit int) []domain.FoodItem {
	if limit <= 0 {
		return []domain.FoodItem{}
	}
	items := s.filter(func(domain.FoodItem) bool { return true })
	sortStable(items, SortRating)
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

func (s *MemoryStore) SaleItems() []domain.FoodItem {
	return s.filter(func(item domain.FoodItem) bool {
		return item.IsOnSale
	})
}

func (s *MemoryStore) Search(query string) []domain.FoodItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []domain.FoodItem{}
	}
	return s.filter(func(item domain.FoodItem) bool {
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Description), q) ||
			strings.Contains(strings.ToLower(item.CafeName), q) {
			return true
		}
		return slices.ContainsFunc(item.Tags, func(tag string) bool {
			return strings.Contains(strings.ToLower(tag), q)
		})
	})
}

func (s *MemoryStore) ReviewsByProductID(productID string) []domain.Review {
	result := make([]domain.Review, 0)
	for _, r := range s.reviews {
		if r.ProductID == productID {
			result = append(result, r)
		}
	}
	return result
}

func (s *MemoryStore) Promos() []domain.Promo {
	return slices.Clone(s.promos)
}

// filter returns clones so callers can never reach the store's own items.
func (s *MemoryStore) filter(keep func(domain.FoodItem) bool) []domain.FoodItem {
	result := make([]domain.FoodItem, 0)
	for _, item := range s.items {
		if keep(item) {
			result = append(result, item.Clone())
		}
	}
	return result
}
