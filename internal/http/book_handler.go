package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ankitsahucodes/BookNest-Backend/internal/domain"
	"github.com/ankitsahucodes/BookNest-Backend/internal/service"
)

// CatalogService is what the book endpoints need from the service layer.
type CatalogService interface {
	CreateBook(ctx context.Context, in service.BookInput) (*domain.Book, error)
	ListBooks(ctx context.Context) ([]domain.Book, error)
	GetBook(ctx context.Context, id string) (*domain.Book, error)
	ListBooksByCategory(ctx context.Context, category string) ([]domain.Book, error)
}

type BookHandler struct {
	catalog CatalogService
	timeout time.Duration
}

func NewBookHandler(catalog CatalogService, timeout time.Duration) *BookHandler {
	return &BookHandler{
		catalog: catalog,
		timeout: timeout,
	}
}

type BookCreatedResponse struct {
	Message string       `json:"message"`
	Book    *domain.Book `json:"book"`
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var in service.BookInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	book, err := h.catalog.CreateBook(ctx, in)
	if err != nil {
		handleServiceError(w, err, "Failed to add book")
		return
	}

	respondJSON(w, http.StatusCreated, BookCreatedResponse{
		Message: "Book added successfully",
		Book:    book,
	})
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	books, err := h.catalog.ListBooks(ctx)
	if err != nil {
		handleServiceError(w, err, "Failed to fetch books.")
		return
	}

	// An empty catalog is reported as 404, while an empty category match
	// below is a 200 with []. Inherited behavior, kept deliberately.
	if len(books) == 0 {
		respondError(w, http.StatusNotFound, "No books found.")
		return
	}

	respondJSON(w, http.StatusOK, books)
}

func (h *BookHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	book, err := h.catalog.GetBook(ctx, chi.URLParam(r, "bookId"))
	if err != nil {
		handleServiceError(w, err, "Failed to fetch book.")
		return
	}

	respondJSON(w, http.StatusOK, book)
}

func (h *BookHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	books, err := h.catalog.ListBooksByCategory(ctx, chi.URLParam(r, "bookCategory"))
	if err != nil {
		handleServiceError(w, err, "Failed to fetch book.")
		return
	}

	respondJSON(w, http.StatusOK, books)
}
