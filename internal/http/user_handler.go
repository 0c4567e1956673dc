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

// UserProfileService is what the profile endpoints need from the user
// service.
type UserProfileService interface {
	Register(ctx context.Context, in service.RegisterInput) (*domain.User, error)
	GetProfile(ctx context.Context, userID string) (*domain.User, error)

	GetWishlist(ctx context.Context, userID string) ([]string, error)
	AddToWishlist(ctx context.Context, userID, bookID string) ([]string, error)
	RemoveFromWishlist(ctx context.Context, userID, bookID string) ([]string, error)

	GetCart(ctx context.Context, userID string) ([]domain.CartItem, error)
	AdjustCartItem(ctx context.Context, userID, bookID string, delta int) ([]domain.CartItem, error)
	RemoveCartItem(ctx context.Context, userID, bookID string) ([]domain.CartItem, error)

	AddAddress(ctx context.Context, userID string, in service.AddressInput) ([]domain.Address, error)
	ListAddresses(ctx context.Context, userID string) ([]domain.Address, error)
	RemoveAddress(ctx context.Context, userID, addressID string) ([]domain.Address, error)
	UpdateAddress(ctx context.Context, userID, addressID string, patch service.AddressPatch) ([]domain.Address, error)

	PlaceOrder(ctx context.Context, userID string, in service.OrderInput) ([]domain.Order, error)
}

type UserHandler struct {
	users   UserProfileService
	timeout time.Duration
}

func NewUserHandler(users UserProfileService, timeout time.Duration) *UserHandler {
	return &UserHandler{
		users:   users,
		timeout: timeout,
	}
}

type UserCreatedResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// WishlistItemDTO and CartItemDTO are the bodies of the wishlist and
// cart mutation endpoints. The cart quantity is a signed delta.
type WishlistItemDTO struct {
	BookID string `json:"bookId"`
}

type CartItemDTO struct {
	BookID   string `json:"bookId"`
	Quantity int    `json:"quantity"`
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var in service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := h.users.Register(ctx, in)
	if err != nil {
		handleServiceError(w, err, "Failed to add user")
		return
	}

	respondJSON(w, http.StatusCreated, UserCreatedResponse{
		Message: "User added successfully",
		User:    user,
	})
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	user, err := h.users.GetProfile(ctx, chi.URLParam(r, "userId"))
	if err != nil {
		handleServiceError(w, err, "Failed to fetch user profile")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	wishlist, err := h.users.GetWishlist(ctx, chi.URLParam(r, "userId"))
	if err != nil {
		handleServiceError(w, err, "Failed to fetch wishlist")
		return
	}

	respondJSON(w, http.StatusOK, wishlist)
}

func (h *UserHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req WishlistItemDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	wishlist, err := h.users.AddToWishlist(ctx, chi.URLParam(r, "userId"), req.BookID)
	if err != nil {
		handleServiceError(w, err, "Failed to add to wishlist")
		return
	}

	respondJSON(w, http.StatusOK, wishlist)
}

func (h *UserHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req WishlistItemDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	wishlist, err := h.users.RemoveFromWishlist(ctx, chi.URLParam(r, "userId"), req.BookID)
	if err != nil {
		handleServiceError(w, err, "Failed to remove from wishlist")
		return
	}

	respondJSON(w, http.StatusOK, wishlist)
}

func (h *UserHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	cart, err := h.users.GetCart(ctx, chi.URLParam(r, "userId"))
	if err != nil {
		handleServiceError(w, err, "Failed to fetch cart")
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

func (h *UserHandler) AdjustCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req CartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	cart, err := h.users.AdjustCartItem(ctx, chi.URLParam(r, "userId"), req.BookID, req.Quantity)
	if err != nil {
		handleServiceError(w, err, "Failed to add to cart")
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

func (h *UserHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req WishlistItemDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	cart, err := h.users.RemoveCartItem(ctx, chi.URLParam(r, "userId"), req.BookID)
	if err != nil {
		handleServiceError(w, err, "Failed to remove from cart")
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

func (h *UserHandler) AddAddress(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var in service.AddressInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	addresses, err := h.users.AddAddress(ctx, chi.URLParam(r, "userId"), in)
	if err != nil {
		handleServiceError(w, err, "Failed to add address")
		return
	}

	respondJSON(w, http.StatusOK, addresses)
}

func (h *UserHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	addresses, err := h.users.ListAddresses(ctx, chi.URLParam(r, "userId"))
	if err != nil {
		handleServiceError(w, err, "Failed to fetch addresses")
		return
	}

	respondJSON(w, http.StatusOK, addresses)
}

func (h *UserHandler) RemoveAddress(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	addresses, err := h.users.RemoveAddress(ctx, chi.URLParam(r, "userId"), chi.URLParam(r, "addressId"))
	if err != nil {
		handleServiceError(w, err, "Failed to delete address")
		return
	}

	respondJSON(w, http.StatusOK, addresses)
}

func (h *UserHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var patch service.AddressPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	addresses, err := h.users.UpdateAddress(ctx, chi.URLParam(r, "userId"), chi.URLParam(r, "addressId"), patch)
	if err != nil {
		handleServiceError(w, err, "Failed to update address")
		return
	}

	respondJSON(w, http.StatusOK, addresses)
}

func (h *UserHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var in service.OrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	orders, err := h.users.PlaceOrder(ctx, chi.URLParam(r, "userId"), in)
	if err != nil {
		handleServiceError(w, err, "Failed to place order")
		return
	}

	respondJSON(w, http.StatusOK, orders)
}
