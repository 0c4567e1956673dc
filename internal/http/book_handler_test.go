package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ankitsahucodes/BookNest-Backend/internal/domain"
	"github.com/ankitsahucodes/BookNest-Backend/internal/repository"
	"github.com/ankitsahucodes/BookNest-Backend/internal/service"
)

type catalogStub struct {
	books []domain.Book
	book  *domain.Book
	err   error
}

func (s catalogStub) CreateBook(context.Context, service.BookInput) (*domain.Book, error) {
	return s.book, s.err
}

func (s catalogStub) ListBooks(context.Context) ([]domain.Book, error) {
	return s.books, s.err
}

func (s catalogStub) GetBook(context.Context, string) (*domain.Book, error) {
	return s.book, s.err
}

func (s catalogStub) ListBooksByCategory(context.Context, string) ([]domain.Book, error) {
	return s.books, s.err
}

type usersStub struct {
	user      *domain.User
	wishlist  []string
	cart      []domain.CartItem
	addresses []domain.Address
	orders    []domain.Order
	err       error
}

func (s usersStub) Register(context.Context, service.RegisterInput) (*domain.User, error) {
	return s.user, s.err
}

func (s usersStub) GetProfile(context.Context, string) (*domain.User, error) {
	return s.user, s.err
}

func (s usersStub) GetWishlist(context.Context, string) ([]string, error) {
	return s.wishlist, s.err
}

func (s usersStub) AddToWishlist(context.Context, string, string) ([]string, error) {
	return s.wishlist, s.err
}

func (s usersStub) RemoveFromWishlist(context.Context, string, string) ([]string, error) {
	return s.wishlist, s.err
}

func (s usersStub) GetCart(context.Context, string) ([]domain.CartItem, error) {
	return s.cart, s.err
}

func (s usersStub) AdjustCartItem(context.Context, string, string, int) ([]domain.CartItem, error) {
	return s.cart, s.err
}

func (s usersStub) RemoveCartItem(context.Context, string, string) ([]domain.CartItem, error) {
	return s.cart, s.err
}

func (s usersStub) AddAddress(context.Context, string, service.AddressInput) ([]domain.Address, error) {
	return s.addresses, s.err
}

func (s usersStub) ListAddresses(context.Context, string) ([]domain.Address, error) {
	return s.addresses, s.err
}

func (s usersStub) RemoveAddress(context.Context, string, string) ([]domain.Address, error) {
	return s.addresses, s.err
}

func (s usersStub) UpdateAddress(context.Context, string, string, service.AddressPatch) ([]domain.Address, error) {
	return s.addresses, s.err
}

func (s usersStub) PlaceOrder(context.Context, string, service.OrderInput) ([]domain.Order, error) {
	return s.orders, s.err
}

func testRouter(catalog CatalogService, users UserProfileService) http.Handler {
	return NewRouter(
		NewBookHandler(catalog, 5*time.Second),
		NewUserHandler(users, 5*time.Second),
		30*time.Second,
	)
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func sampleBook() *domain.Book {
	return &domain.Book{
		ID:       primitive.NewObjectID(),
		Title:    "The Alchemist",
		Author:   []string{"Paulo Coelho"},
		Category: "Fiction",
		Rating:   4.2,
		Price:    269,
	}
}

func TestCreateBook_Returns201(t *testing.T) {
	router := testRouter(catalogStub{book: sampleBook()}, usersStub{})

	rec := doRequest(t, router, "POST", "/books", `{"title":"The Alchemist"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookCreatedResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Book added successfully", resp.Message)
	assert.Equal(t, "The Alchemist", resp.Book.Title)
}

func TestCreateBook_ValidationReturns400(t *testing.T) {
	stub := catalogStub{err: &service.ValidationError{Fields: map[string]string{"rating": "must be between 1 and 5"}}}
	router := testRouter(stub, usersStub{})

	rec := doRequest(t, router, "POST", "/books", `{"rating":9}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(t, resp.Fields, "rating")
}

func TestCreateBook_BadJSONReturns400(t *testing.T) {
	router := testRouter(catalogStub{}, usersStub{})

	rec := doRequest(t, router, "POST", "/books", `{"title":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListBooks_EmptyReturns404(t *testing.T) {
	router := testRouter(catalogStub{books: []domain.Book{}}, usersStub{})

	rec := doRequest(t, router, "GET", "/books", "")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "No books found.", resp.Error)
}

func TestListBooks_Returns200(t *testing.T) {
	router := testRouter(catalogStub{books: []domain.Book{*sampleBook()}}, usersStub{})

	rec := doRequest(t, router, "GET", "/books", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var books []domain.Book
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&books))
	assert.Len(t, books, 1)
}

func TestGetBook_NotFoundReturns404(t *testing.T) {
	router := testRouter(catalogStub{err: repository.ErrBookNotFound}, usersStub{})

	rec := doRequest(t, router, "GET", "/books/"+primitive.NewObjectID().Hex(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetBook_MalformedIDReturns400(t *testing.T) {
	router := testRouter(catalogStub{err: repository.ErrInvalidID}, usersStub{})

	rec := doRequest(t, router, "GET", "/books/garbage", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// An unmatched category keeps the 200 + empty list shape, unlike the
// 404 for a missing id above.
func TestListBooksByCategory_EmptyReturns200(t *testing.T) {
	router := testRouter(catalogStub{books: []domain.Book{}}, usersStub{})

	rec := doRequest(t, router, "GET", "/books/category/Notebook", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestListBooks_StoreErrorReturns500(t *testing.T) {
	router := testRouter(catalogStub{err: context.DeadlineExceeded}, usersStub{})

	rec := doRequest(t, router, "GET", "/books", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Failed to fetch books.", resp.Error)
}
