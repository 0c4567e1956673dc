package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ankitsahucodes/BookNest-Backend/internal/domain"
	"github.com/ankitsahucodes/BookNest-Backend/internal/repository"
	"github.com/ankitsahucodes/BookNest-Backend/internal/validator"
)

// RegisterInput is the payload for creating a profile.
type RegisterInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// AddressInput is the payload for adding a shipping address. Country is
// accepted but ignored; the stored value is always domain.DefaultCountry.
type AddressInput struct {
	HouseNumber string `json:"houseNumber"`
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Country     string `json:"country"`
}

// AddressPatch is a partial address update. Nil fields are left alone.
// Country is deliberately absent from the merge: it cannot be changed.
type AddressPatch struct {
	HouseNumber *string `json:"houseNumber"`
	Street      *string `json:"street"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Pincode     *string `json:"pincode"`
	Country     *string `json:"country"`
}

// OrderInput is the payload for placing an order. Items, totals and the
// address are stored as supplied; the service does not recompute totals
// or check stock.
type OrderInput struct {
	Items       []OrderItemInput `json:"items"`
	TotalItems  int              `json:"totalItems"`
	TotalAmount float64          `json:"totalAmount"`
	Date        *time.Time       `json:"date"`
	Status      string           `json:"status"`
	Address     AddressInput     `json:"address"`
}

type OrderItemInput struct {
	BookID   string  `json:"bookId"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register validates the input and stores a profile with empty embedded
// collections. Email uniqueness is enforced by the store's unique index.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	v := validator.New()
	v.Check(in.Name != "", "name", "must be provided")
	v.Check(in.Email != "", "email", "must be provided")
	if in.Email != "" {
		v.Check(validator.Matches(in.Email, validator.EmailRX), "email", "must be a valid email address")
	}
	v.Check(in.PhoneNumber != "", "phoneNumber", "must be provided")
	if !v.Valid() {
		return nil, failValidation(v.Errors)
	}

	user := &domain.User{
		Name:        in.Name,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
	}
	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *UserService) GetWishlist(ctx context.Context, userID string) ([]string, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return emptyIfNil(user.Wishlist), nil
}

func (s *UserService) AddToWishlist(ctx context.Context, userID, bookID string) ([]string, error) {
	if bookID == "" {
		return nil, failValidation(map[string]string{"bookId": "must be provided"})
	}
	list, err := s.repo.AddToWishlist(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}
	return emptyIfNil(list), nil
}

func (s *UserService) RemoveFromWishlist(ctx context.Context, userID, bookID string) ([]string, error) {
	if bookID == "" {
		return nil, failValidation(map[string]string{"bookId": "must be provided"})
	}
	list, err := s.repo.RemoveFromWishlist(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}
	return emptyIfNil(list), nil
}

func (s *UserService) GetCart(ctx context.Context, userID string) ([]domain.CartItem, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return emptyIfNil(user.Cart), nil
}

// AdjustCartItem applies a signed quantity delta to the user's cart:
// "add n" and "remove n" are the same operation. A line whose quantity
// drops below 1 is removed outright.
func (s *UserService) AdjustCartItem(ctx context.Context, userID, bookID string, delta int) ([]domain.CartItem, error) {
	if bookID == "" {
		return nil, failValidation(map[string]string{"bookId": "must be provided"})
	}
	cart, err := s.repo.AdjustCartItem(ctx, userID, bookID, delta)
	if err != nil {
		return nil, err
	}
	return emptyIfNil(cart), nil
}

func (s *UserService) RemoveCartItem(ctx context.Context, userID, bookID string) ([]domain.CartItem, error) {
	if bookID == "" {
		return nil, failValidation(map[string]string{"bookId": "must be provided"})
	}
	cart, err := s.repo.RemoveCartItem(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}
	return emptyIfNil(cart), nil
}

func (s *UserService) AddAddress(ctx context.Context, userID string, in AddressInput) ([]domain.Address, error) {
	addr := domain.Address{
		ID:          uuid.NewString(),
		HouseNumber: in.HouseNumber,
		Street:      in.Street,
		City:        in.City,
		State:       in.State,
		Pincode:     in.Pincode,
		Country:     domain.DefaultCountry,
	}
	list, err := s.repo.AddAddress(ctx, userID, addr)
	if err != nil {
		return nil, err
	}
	return emptyIfNil(list), nil
}

func (s *UserService) ListAddresses(ctx context.Context, userID string) ([]domain.Address, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return emptyIfNil(user.Addresses), nil
}

func (s *UserService) RemoveAddress(ctx context.Context, userID, addressID string) ([]domain.Address, error) {
	list, err := s.repo.RemoveAddress(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}
	return emptyIfNil(list), nil
}

func (s *UserService) UpdateAddress(ctx context.Context, userID, addressID string, patch AddressPatch) ([]domain.Address, error) {
	fields := map[string]string{}
	if patch.HouseNumber != nil {
		fields["houseNumber"] = *patch.HouseNumber
	}
	if patch.Street != nil {
		fields["street"] = *patch.Street
	}
	if patch.City != nil {
		fields["city"] = *patch.City
	}
	if patch.State != nil {
		fields["state"] = *patch.State
	}
	if patch.Pincode != nil {
		fields["pincode"] = *patch.Pincode
	}
	// patch.Country is intentionally dropped on the floor.

	list, err := s.repo.UpdateAddress(ctx, userID, addressID, fields)
	if err != nil {
		return nil, err
	}
	return emptyIfNil(list), nil
}

// PlaceOrder appends the supplied order snapshot and clears the cart in
// one store update.
func (s *UserService) PlaceOrder(ctx context.Context, userID string, in OrderInput) ([]domain.Order, error) {
	status := domain.OrderStatus(in.Status)
	if in.Status == "" {
		status = domain.StatusPlaced
	} else if !domain.ValidStatus(status) {
		return nil, failValidation(map[string]string{"status": "must be one of Placed, Shipped, Delivered, Cancelled"})
	}

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}

	items := make([]domain.OrderItem, len(in.Items))
	for i, item := range in.Items {
		items[i] = domain.OrderItem{
			BookID:   item.BookID,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	order := domain.Order{
		ID:          uuid.NewString(),
		Items:       items,
		TotalItems:  in.TotalItems,
		TotalAmount: in.TotalAmount,
		Date:        date,
		Status:      status,
		Address: domain.Address{
			HouseNumber: in.Address.HouseNumber,
			Street:      in.Address.Street,
			City:        in.Address.City,
			State:       in.Address.State,
			Pincode:     in.Address.Pincode,
			Country:     in.Address.Country,
		},
	}

	orders, err := s.repo.AppendOrder(ctx, userID, order)
	if err != nil {
		return nil, err
	}
	return emptyIfNil(orders), nil
}

// emptyIfNil keeps JSON responses rendering embedded collections as []
// rather than null.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
