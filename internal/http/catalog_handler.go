package http

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/fjod/foodbay/internal/catalog"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type CatalogHandler struct {
	store catalog.Store
}

func NewCatalogHandler(store catalog.Store) *CatalogHandler {
	return &CatalogHandler{store: store}
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.store.Categories()
	dtos := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, CategoryDTO{Category: c, ActualItemCount: h.store.ItemCount(c.ID)})
	}
	respondJSON(w, http.StatusOK, dtos)
}

func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "category_id")
	c, ok := h.store.CategoryByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "category not found")
		return
	}
	respondJSON(w, http.StatusOK, CategoryDTO{Category: c, ActualItemCount: h.store.ItemCount(c.ID)})
}

// CategoryItems lists a category filtered and sorted by the query string.
// An unknown category yields an empty list.
func (h *CatalogHandler) CategoryItems(w http.ResponseWriter, r *http.Request) {
	filters, sortBy, err := parseQuery(r, catalog.SortPopular)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_query", err.Error())
		return
	}

	items := h.store.ItemsByCategory(chi.URLParam(r, "category_id"))
	respondJSON(w, http.StatusOK, toItemList(catalog.Apply(items, filters, sortBy)))
}

func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	filters, sortBy, err := parseQuery(r, catalog.SortRelevance)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_query", err.Error())
		return
	}

	items := h.store.Search(r.URL.Query().Get("q"))
	respondJSON(w, http.StatusOK, toItemList(catalog.Apply(items, filters, sortBy)))
}

func (h *CatalogHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.store.ItemByID(chi.URLParam(r, "item_id"))
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "item not found")
		return
	}
	respondJSON(w, http.StatusOK, toItemDTO(item))
}

func (h *CatalogHandler) ItemReviews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "item_id")
	if _, ok := h.store.ItemByID(id); !ok {
		respondError(w, http.StatusNotFound, "not_found", "item not found")
		return
	}
	respondJSON(w, http.StatusOK, h.store.ReviewsByProductID(id))
}

func (h *CatalogHandler) PopularItems(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toItemList(h.store.PopularItems()))
}

func (h *CatalogHandler) SaleItems(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toItemList(h.store.SaleItems()))
}

func (h *CatalogHandler) TopRatedItems(w http.ResponseWriter, r *http.Request) {
	limit := catalog.DefaultTopRatedLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "invalid_limit", "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	respondJSON(w, http.StatusOK, toItemList(h.store.TopRatedItems(limit)))
}

func (h *CatalogHandler) Promos(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Promos())
}

// parseQuery reads min_price, max_price, min_rating, diet (repeatable) and sort.
func parseQuery(r *http.Request, defaultSort catalog.SortOption) (catalog.Filters, catalog.SortOption, error) {
	q := r.URL.Query()
	var filters catalog.Filters

	var priceRange catalog.PriceRange
	for _, bound := range []struct {
		key string
		dst *decimal.NullDecimal
	}{
		{"min_price", &priceRange.Min},
		{"max_price", &priceRange.Max},
	} {
		s := q.Get(bound.key)
		if s == "" {
			continue
		}
		d, err := decimal.NewFromString(s)
		if err != nil || d.IsNegative() {
			return filters, "", fmt.Errorf("%s must be a non-negative number", bound.key)
		}
		*bound.dst = decimal.NewNullDecimal(d)
	}
	if priceRange.Min.Valid && priceRange.Max.Valid && priceRange.Min.Decimal.GreaterThan(priceRange.Max.Decimal) {
		return filters, "", errors.New("min_price must not exceed max_price")
	}
	if priceRange.Min.Valid || priceRange.Max.Valid {
		filters.Price = &priceRange
	}

	if s := q.Get("min_rating"); s != "" {
		rating, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(rating) || rating < 0 || rating > 5 {
			return filters, "", errors.New("min_rating must be between 0 and 5")
		}
		filters.MinRating = rating
	}

	filters.Dietary = q["diet"]

	sortBy, err := catalog.ParseSortOption(q.Get("sort"), defaultSort)
	if err != nil {
		return filters, "", err
	}
	return filters, sortBy, nil
}
