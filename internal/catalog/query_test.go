package catalog

import (
	"testing"

	"github.com/fjod/foodbay/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id string, price string, rating float64, popular bool, tags ...string) domain.FoodItem {
	return domain.FoodItem{
		ID:        id,
		Price:     decimal.RequireFromString(price),
		Rating:    rating,
		IsPopular: popular,
		Tags:      tags,
	}
}

func onSale(it domain.FoodItem, sale string) domain.FoodItem {
	sp := decimal.RequireFromString(sale)
	it.SalePrice = &sp
	it.IsOnSale = true
	return it
}

func TestApply_PopularSortIsStable(t *testing.T) {
	items := []domain.FoodItem{
		item("A", "1", 4, false),
		item("B", "1", 4, true),
		item("C", "1", 4, false),
		item("D", "1", 4, true),
	}

	got := Apply(items, Filters{}, SortPopular)
	assert.Equal(t, []string{"B", "D", "A", "C"}, ids(got))
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids(items), "input must not be reordered")
}

func TestApply_RatingSort(t *testing.T) {
	items := []domain.FoodItem{
		item("A", "1", 4.5, false),
		item("B", "1", 4.9, false),
		item("C", "1", 4.5, false),
		item("D", "1", 4.7, false),
	}

	assert.Equal(t, []string{"B", "D", "A", "C"}, ids(Apply(items, Filters{}, SortRating)))
}

func TestApply_PriceSortsUseEffectivePrice(t *testing.T) {
	items := []domain.FoodItem{
		item("A", "10", 4, false),
		onSale(item("B", "12", 4, false), "5"),
		item("C", "7", 4, false),
		item("D", "7", 4, false),
	}

	assert.Equal(t, []string{"B", "C", "D", "A"}, ids(Apply(items, Filters{}, SortPriceLow)))
	assert.Equal(t, []string{"A", "C", "D", "B"}, ids(Apply(items, Filters{}, SortPriceHigh)))
}

func TestApply_RelevanceKeepsOrder(t *testing.T) {
	items := []domain.FoodItem{
		item("C", "3", 1, false),
		item("A", "1", 5, true),
		item("B", "2", 3, false),
	}

	assert.Equal(t, []string{"C", "A", "B"}, ids(Apply(items, Filters{}, SortRelevance)))
}

func TestApply_PriceRangeInclusive(t *testing.T) {
	items := []domain.FoodItem{
		item("min", "5.00", 4, false),
		item("max", "10.00", 4, false),
		item("below", "4.99", 4, false),
		item("above", "10.01", 4, false),
		onSale(item("sale", "20.00", 4, false), "6.00"),
	}

	filters := Filters{Price: NewPriceRange(decimal.RequireFromString("5"), decimal.RequireFromString("10"))}

	assert.Equal(t, []string{"min", "max", "sale"}, ids(Apply(items, filters, SortRelevance)))
}

func TestPriceRange_OpenBounds(t *testing.T) {
	atLeast := PriceRange{Min: decimal.NewNullDecimal(decimal.RequireFromString("5"))}
	assert.True(t, atLeast.Contains(decimal.RequireFromString("1000")))
	assert.False(t, atLeast.Contains(decimal.RequireFromString("4.99")))

	atMost := PriceRange{Max: decimal.NewNullDecimal(decimal.RequireFromString("5"))}
	assert.True(t, atMost.Contains(decimal.Zero))
	assert.False(t, atMost.Contains(decimal.RequireFromString("5.01")))
}

func TestApply_MinRating(t *testing.T) {
	items := []domain.FoodItem{
		item("A", "1", 3.9, false),
		item("B", "1", 4.0, false),
		item("C", "1", 4.8, false),
	}

	assert.Equal(t, []string{"B", "C"}, ids(Apply(items, Filters{MinRating: 4}, SortRelevance)))
}

func TestApply_DietaryFilter(t *testing.T) {
	items := []domain.FoodItem{
		item("vegan", "1", 4, false, "Cold", "Vegan"),
		item("gf-space", "1", 4, false, "Gluten Free"),
		item("gf-dash", "1", 4, false, "gluten-free"),
		item("veggie", "1", 4, false, "Vegetarian"),
		item("none", "1", 4, false, "Beef"),
	}

	t.Run("no selection passes all", func(t *testing.T) {
		assert.Len(t, Apply(items, Filters{}, SortRelevance), 5)
	})

	t.Run("gluten-free matches both spellings", func(t *testing.T) {
		got := Apply(items, Filters{Dietary: []string{"gluten-free"}}, SortRelevance)
		assert.Equal(t, []string{"gf-space", "gf-dash"}, ids(got))
	})

	t.Run("any selected value matches", func(t *testing.T) {
		got := Apply(items, Filters{Dietary: []string{"vegan", "vegetarian"}}, SortRelevance)
		assert.Equal(t, []string{"vegan", "veggie"}, ids(got))
	})
}

func TestApply_FiltersCombineThenSort(t *testing.T) {
	store := setupStore(t)

	filters := Filters{
		Price:     NewPriceRange(decimal.Zero, decimal.RequireFromString("16")),
		MinRating: 4.6,
	}
	got := Apply(store.ItemsByCategory("meals"), filters, SortPopular)

	// meal-2 is 18.99 but on sale at 15.99; meal-3 is rated 4.5; meal-5 costs 19.99
	assert.Equal(t, []string{"meal-1", "meal-2", "meal-4"}, ids(got))
}

func TestParseSortOption(t *testing.T) {
	opt, err := ParseSortOption("", SortRelevance)
	require.NoError(t, err)
	assert.Equal(t, SortRelevance, opt)

	opt, err = ParseSortOption("price-high", SortPopular)
	require.NoError(t, err)
	assert.Equal(t, SortPriceHigh, opt)

	_, err = ParseSortOption("newest", SortPopular)
	assert.ErrorIs(t, err, ErrUnknownSort)
}
