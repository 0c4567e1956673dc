package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ankitsahucodes/BookNest-Backend/internal/domain"
)

const booksCollection = "books"

type mongoBookRepository struct {
	collection *mongo.Collection
}

func NewMongoBookRepository(db *mongo.Database) BookRepository {
	return &mongoBookRepository{
		collection: db.Collection(booksCollection),
	}
}

func (r *mongoBookRepository) Insert(ctx context.Context, book *domain.Book) error {
	now := time.Now()
	book.CreatedAt = now
	book.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, book)
	if err != nil {
		return fmt.Errorf("failed to insert book: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		book.ID = oid
	}
	return nil
}

func (r *mongoBookRepository) FindAll(ctx context.Context) ([]domain.Book, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	books := []domain.Book{}
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("failed to decode books: %w", err)
	}
	return books, nil
}

func (r *mongoBookRepository) FindByID(ctx context.Context, id string) (*domain.Book, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var book domain.Book
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&book)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return &book, nil
}

func (r *mongoBookRepository) FindByCategory(ctx context.Context, category string) ([]domain.Book, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"category": category})
	if err != nil {
		return nil, fmt.Errorf("failed to list books by category: %w", err)
	}

	books := []domain.Book{}
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("failed to decode books: %w", err)
	}
	return books, nil
}

func (r *mongoBookRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return n, nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
