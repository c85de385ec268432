package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires every handler under /api/v1.
func NewRouter(catalogHandler *CatalogHandler, cartHandler *CartHandler, checkoutHandler *CheckoutHandler, requestTimeout time.Duration) chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", catalogHandler.ListCategories)
		r.Get("/categories/{category_id}", catalogHandler.GetCategory)
		r.Get("/categories/{category_id}/items", catalogHandler.CategoryItems)

		r.Get("/items/popular", catalogHandler.PopularItems)
		r.Get("/items/top-rated", catalogHandler.TopRatedItems)
		r.Get("/items/sale", catalogHandler.SaleItems)
		r.Get("/items/{item_id}", catalogHandler.GetItem)
		r.Get("/items/{item_id}/reviews", catalogHandler.ItemReviews)

		r.Get("/search", catalogHandler.Search)
		r.Get("/promos", catalogHandler.Promos)

		r.Group(func(r chi.Router) {
			r.Use(SessionMiddleware)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.GetCart)
				r.Delete("/", cartHandler.ClearCart)
				r.Post("/items", cartHandler.AddItem)
				r.Put("/items/{item_id}", cartHandler.UpdateQuantity)
				r.Delete("/items/{item_id}", cartHandler.RemoveItem)
			})

			r.Post("/checkout", checkoutHandler.PlaceOrder)
			r.Get("/orders/{order_number}", checkoutHandler.GetOrder)
			r.Get("/orders/{order_number}/email", checkoutHandler.GetOrderEmail)
		})
	})

	return r
}
