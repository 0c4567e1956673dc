package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the full HTTP surface. Paths mirror the public API:
// top-level resources for books, and per-user sub-resources keyed by
// userId path segments.
func NewRouter(books *BookHandler, users *UserHandler, requestTimeout time.Duration) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/books", func(r chi.Router) {
		r.Post("/", books.Create)
		r.Get("/", books.List)
		r.Get("/category/{bookCategory}", books.ListByCategory)
		r.Get("/{bookId}", books.GetByID)
	})

	r.Post("/profile", users.Register)
	r.Get("/profile/{userId}", users.GetProfile)

	r.Route("/wishlist/{userId}", func(r chi.Router) {
		r.Get("/", users.GetWishlist)
		r.Post("/", users.AddToWishlist)
		r.Delete("/", users.RemoveFromWishlist)
	})

	r.Route("/cart/{userId}", func(r chi.Router) {
		r.Get("/", users.GetCart)
		r.Post("/", users.AdjustCart)
		r.Delete("/", users.RemoveCartItem)
	})

	r.Route("/address", func(r chi.Router) {
		r.Post("/update/{userId}/{addressId}", users.UpdateAddress)
		r.Post("/{userId}", users.AddAddress)
		r.Get("/{userId}", users.ListAddresses)
		r.Delete("/{userId}/{addressId}", users.RemoveAddress)
	})

	r.Post("/order-placed/{userId}", users.PlaceOrder)

	return r
}
