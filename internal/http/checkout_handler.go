package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/fjod/foodbay/internal/cart"
	"github.com/fjod/foodbay/internal/checkout"
	"github.com/fjod/foodbay/internal/domain"
	"github.com/go-chi/chi/v5"
)

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, sessionID string, ledger *cart.Ledger, info domain.DeliveryInfo, method domain.PaymentMethod) (*domain.OrderSnapshot, error)
	Receipt(ctx context.Context, sessionID, orderNumber string) (*domain.OrderSnapshot, error)
}

type CheckoutHandler struct {
	sessions SessionProvider
	orders   OrderPlacer
}

func NewCheckoutHandler(sessions SessionProvider, orders OrderPlacer) *CheckoutHandler {
	return &CheckoutHandler{
		sessions: sessions,
		orders:   orders,
	}
}

type PlaceOrderRequestDTO struct {
	Delivery      domain.DeliveryInfo  `json:"delivery"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
}

func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing shopping session")
		return
	}

	var req PlaceOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = domain.PaymentCard
	}
	if !req.PaymentMethod.IsValid() {
		respondError(w, http.StatusBadRequest, "invalid_payment_method", checkout.ErrInvalidPaymentMethod.Error())
		return
	}
	if fieldErrs := checkout.ValidateDeliveryInfo(req.Delivery); fieldErrs != nil {
		respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:  "delivery information is incomplete",
			Code:   "invalid_delivery",
			Fields: fieldErrs,
		})
		return
	}

	snapshot, err := h.orders.PlaceOrder(r.Context(), sessionID, h.sessions.Ledger(sessionID), req.Delivery, req.PaymentMethod)
	if errors.Is(err, checkout.ErrEmptyCart) {
		respondError(w, http.StatusConflict, "empty_cart", err.Error())
		return
	}
	if err != nil {
		log.Printf("place order error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, toOrderDTO(snapshot))
}

func (h *CheckoutHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.receipt(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, toOrderDTO(snapshot))
}

func (h *CheckoutHandler) GetOrderEmail(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.receipt(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, checkout.ComposeEmail(snapshot))
}

// receipt answers 404 for orders of other sessions, same as for unknown ones.
func (h *CheckoutHandler) receipt(w http.ResponseWriter, r *http.Request) (*domain.OrderSnapshot, bool) {
	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing shopping session")
		return nil, false
	}

	snapshot, err := h.orders.Receipt(r.Context(), sessionID, chi.URLParam(r, "order_number"))
	if errors.Is(err, checkout.ErrReceiptNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "order not found or expired")
		return nil, false
	}
	if err != nil {
		log.Printf("get receipt error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return nil, false
	}
	return snapshot, true
}
