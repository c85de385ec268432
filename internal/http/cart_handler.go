package http

import (
	"encoding/json"
	"net/http"

	"github.com/fjod/foodbay/internal/cart"
	"github.com/fjod/foodbay/internal/catalog"
	"github.com/go-chi/chi/v5"
)

const maxLineQuantity = 99

// SessionProvider hands out the cart ledger owned by a session.
type SessionProvider interface {
	Ledger(sessionID string) *cart.Ledger
}

type CartHandler struct {
	sessions SessionProvider
	catalog  catalog.Store
}

func NewCartHandler(sessions SessionProvider, store catalog.Store) *CartHandler {
	return &CartHandler{
		sessions: sessions,
		catalog:  store,
	}
}

type AddItemRequestDTO struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ledger, ok := h.ledger(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, cartDTO(ledger))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ledger, ok := h.ledger(w, r)
	if !ok {
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 || req.Quantity > maxLineQuantity {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	item, found := h.catalog.ItemByID(req.ItemID)
	if !found {
		respondError(w, http.StatusNotFound, "not_found", "item not found")
		return
	}

	if err := ledger.AddItem(item, req.Quantity); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_quantity", err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, cartDTO(ledger))
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ledger, ok := h.ledger(w, r)
	if !ok {
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity > maxLineQuantity {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must not exceed 99")
		return
	}

	ledger.UpdateQuantity(chi.URLParam(r, "item_id"), req.Quantity)
	respondJSON(w, http.StatusOK, cartDTO(ledger))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ledger, ok := h.ledger(w, r)
	if !ok {
		return
	}
	ledger.RemoveItem(chi.URLParam(r, "item_id"))
	respondJSON(w, http.StatusOK, cartDTO(ledger))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ledger, ok := h.ledger(w, r)
	if !ok {
		return
	}
	ledger.Clear()
	respondJSON(w, http.StatusOK, cartDTO(ledger))
}

func (h *CartHandler) ledger(w http.ResponseWriter, r *http.Request) (*cart.Ledger, bool) {
	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing shopping session")
		return nil, false
	}
	return h.sessions.Ledger(sessionID), true
}

func cartDTO(ledger *cart.Ledger) CartDTO {
	lines, totals := ledger.View()
	count := 0
	for _, l := range lines {
		count += l.Quantity
	}
	return CartDTO{
		Lines:     toLineDTOs(lines),
		ItemCount: count,
		TotalsDTO: toTotalsDTO(totals),
	}
}
