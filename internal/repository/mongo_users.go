package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ankitsahucodes/BookNest-Backend/internal/domain"
)

const usersCollection = "users"

type mongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{
		collection: db.Collection(usersCollection),
	}
}

func (r *mongoUserRepository) Insert(ctx context.Context, user *domain.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	// A fresh profile always carries empty embedded collections rather
	// than nulls, so reads can return them as-is.
	if user.Wishlist == nil {
		user.Wishlist = []string{}
	}
	if user.Cart == nil {
		user.Cart = []domain.CartItem{}
	}
	if user.Addresses == nil {
		user.Addresses = []domain.Address{}
	}
	if user.Orders == nil {
		user.Orders = []domain.Order{}
	}

	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var user domain.User
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *mongoUserRepository) AddToWishlist(ctx context.Context, userID, bookID string) ([]string, error) {
	oid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	// $addToSet makes repeated adds of the same bookId a no-op.
	user, err := r.updateAndReturn(ctx, bson.M{"_id": oid}, bson.M{
		"$addToSet": bson.M{"wishlist": bookID},
		"$set":      bson.M{"updatedAt": time.Now()},
	}, nil)
	if err != nil {
		return nil, err
	}
	return user.Wishlist, nil
}

func (r *mongoUserRepository) RemoveFromWishlist(ctx context.Context, userID, bookID string) ([]string, error) {
	oid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	user, err := r.updateAndReturn(ctx, bson.M{"_id": oid}, bson.M{
		"$pull": bson.M{"wishlist": bookID},
		"$set":  bson.M{"updatedAt": time.Now()},
	}, nil)
	if err != nil {
		return nil, err
	}
	return user.Wishlist, nil
}

func (r *mongoUserRepository) AdjustCartItem(ctx context.Context, userID, bookID string, delta int) ([]domain.CartItem, error) {
	oid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}
	now := time.Now()

	// Bump the existing line first; the positional operator needs the
	// line to be part of the filter.
	var user domain.User
	res := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "cart.bookId": bookID},
		bson.M{
			"$inc": bson.M{"cart.$.quantity": delta},
			"$set": bson.M{"updatedAt": now},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	err = res.Decode(&user)
	if err == nil {
		for _, item := range user.Cart {
			if item.Quantity < 1 {
				return r.dropEmptyCartLines(ctx, oid)
			}
		}
		return user.Cart, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to adjust cart item: %w", err)
	}

	// No matching line. A positive delta opens a new one; anything else
	// is a no-op against the current cart.
	if delta > 0 {
		u, err := r.updateAndReturn(ctx, bson.M{"_id": oid}, bson.M{
			"$push": bson.M{"cart": domain.CartItem{BookID: bookID, Quantity: delta}},
			"$set":  bson.M{"updatedAt": now},
		}, nil)
		if err != nil {
			return nil, err
		}
		return u.Cart, nil
	}

	u, err := r.findByObjectID(ctx, oid)
	if err != nil {
		return nil, err
	}
	return u.Cart, nil
}

func (r *mongoUserRepository) RemoveCartItem(ctx context.Context, userID, bookID string) ([]domain.CartItem, error) {
	oid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	user, err := r.updateAndReturn(ctx, bson.M{"_id": oid}, bson.M{
		"$pull": bson.M{"cart": bson.M{"bookId": bookID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}, nil)
	if err != nil {
		return nil, err
	}
	return user.Cart, nil
}

func (r *mongoUserRepository) AddAddress(ctx context.Context, userID string, addr domain.Address) ([]domain.Address, error) {
	oid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	user, err := r.updateAndReturn(ctx, bson.M{"_id": oid}, bson.M{
		"$push": bson.M{"addresses": addr},
		"$set":  bson.M{"updatedAt": time.Now()},
	}, nil)
	if err != nil {
		return nil, err
	}
	return user.Addresses, nil
}

func (r *mongoUserRepository) RemoveAddress(ctx context.Context, userID, addressID string) ([]domain.Address, error) {
	oid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	user, err := r.updateAndReturn(ctx, bson.M{"_id": oid}, bson.M{
		"$pull": bson.M{"addresses": bson.M{"_id": addressID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}, nil)
	if err != nil {
		return nil, err
	}
	return user.Addresses, nil
}

func (r *mongoUserRepository) UpdateAddress(ctx context.Context, userID, addressID string, fields map[string]string) ([]domain.Address, error) {
	oid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"addresses.$[elem].country": domain.DefaultCountry,
		"updatedAt":                 time.Now(),
	}
	for k, v := range fields {
		if k == "country" {
			continue
		}
		set["addresses.$[elem]."+k] = v
	}

	arrayFilters := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{
				bson.M{"elem._id": addressID},
			},
		})

	user, err := r.updateAndReturn(ctx,
		bson.M{"_id": oid, "addresses._id": addressID},
		bson.M{"$set": set},
		arrayFilters,
	)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// The combined filter cannot tell a missing user from a
			// missing address; look the user up to find out which.
			if _, lookupErr := r.findByObjectID(ctx, oid); lookupErr == nil {
				return nil, ErrAddressNotFound
			}
		}
		return nil, err
	}
	return user.Addresses, nil
}

func (r *mongoUserRepository) AppendOrder(ctx context.Context, userID string, order domain.Order) ([]domain.Order, error) {
	oid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	// Appending the order and emptying the cart ride the same document
	// update, so no request can observe one without the other.
	user, err := r.updateAndReturn(ctx, bson.M{"_id": oid}, bson.M{
		"$push": bson.M{"orders": order},
		"$set": bson.M{
			"cart":      []domain.CartItem{},
			"updatedAt": time.Now(),
		},
	}, nil)
	if err != nil {
		return nil, err
	}
	return user.Orders, nil
}

func (r *mongoUserRepository) dropEmptyCartLines(ctx context.Context, oid primitive.ObjectID) ([]domain.CartItem, error) {
	user, err := r.updateAndReturn(ctx, bson.M{"_id": oid}, bson.M{
		"$pull": bson.M{"cart": bson.M{"quantity": bson.M{"$lt": 1}}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}, nil)
	if err != nil {
		return nil, err
	}
	return user.Cart, nil
}

// updateAndReturn runs FindOneAndUpdate and decodes the post-update
// document, mapping a miss on the filter to ErrUserNotFound.
func (r *mongoUserRepository) updateAndReturn(ctx context.Context, filter, update bson.M, opts *options.FindOneAndUpdateOptions) (*domain.User, error) {
	if opts == nil {
		opts = options.FindOneAndUpdate()
	}
	opts.SetReturnDocument(options.After)

	var user domain.User
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}

func (r *mongoUserRepository) findByObjectID(ctx context.Context, oid primitive.ObjectID) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
