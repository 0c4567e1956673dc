package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categories is the closed set of values accepted for Book.Category.
var Categories = []string{
	"Fiction",
	"Non-Fiction",
	"Romance",
	"Psychology",
	"Spirituality",
	"Fantasy",
	"Biography",
	"Business & Finance",
	"Self-Help",
	"History",
	"Notebook",
}

// ValidCategory reports whether c is a member of Categories.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Rating bounds for a book listing.
const (
	MinRating = 1.0
	MaxRating = 5.0
)

// Book is a single catalog listing. Listings are immutable once stored;
// there are no update or delete operations on the catalog.
type Book struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title         string             `bson:"title" json:"title"`
	Author        []string           `bson:"author" json:"author"`
	PublishedYear int                `bson:"publishedYear" json:"publishedYear"`
	Category      string             `bson:"category" json:"category"`
	ImageURL      string             `bson:"imageUrl" json:"imageUrl"`
	Rating        float64            `bson:"rating" json:"rating"`
	MRP           float64            `bson:"mrp" json:"mrp"`
	Price         float64            `bson:"price" json:"price"`
	Pages         int                `bson:"pages" json:"pages"`
	Summary       string             `bson:"summary" json:"summary"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
