package repository

import (
	"context"

	"github.com/ankitsahucodes/BookNest-Backend/internal/domain"
)

// BookRepository defines catalog data operations. The service layer
// consumes this interface, not the MongoDB implementation.
type BookRepository interface {
	Insert(ctx context.Context, book *domain.Book) error
	FindAll(ctx context.Context) ([]domain.Book, error)
	FindByID(ctx context.Context, id string) (*domain.Book, error)
	FindByCategory(ctx context.Context, category string) ([]domain.Book, error)
	Count(ctx context.Context) (int64, error)
}

// UserRepository defines profile data operations. Every mutation is a
// single-document update keyed by user id; each returns the embedded
// collection it touched, read back from the updated document.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)

	AddToWishlist(ctx context.Context, userID, bookID string) ([]string, error)
	RemoveFromWishlist(ctx context.Context, userID, bookID string) ([]string, error)

	AdjustCartItem(ctx context.Context, userID, bookID string, delta int) ([]domain.CartItem, error)
	RemoveCartItem(ctx context.Context, userID, bookID string) ([]domain.CartItem, error)

	AddAddress(ctx context.Context, userID string, addr domain.Address) ([]domain.Address, error)
	RemoveAddress(ctx context.Context, userID, addressID string) ([]domain.Address, error)
	UpdateAddress(ctx context.Context, userID, addressID string, fields map[string]string) ([]domain.Address, error)

	AppendOrder(ctx context.Context, userID string, order domain.Order) ([]domain.Order, error)
}
