package service

import (
	"context"
	"fmt"
	"log"

	"github.com/ankitsahucodes/BookNest-Backend/internal/domain"
	"github.com/ankitsahucodes/BookNest-Backend/internal/repository"
	"github.com/ankitsahucodes/BookNest-Backend/internal/validator"
)

// BookInput is the payload for creating a catalog listing. The same
// shape is used by the startup seeder, so the json tags double as the
// seed file schema.
type BookInput struct {
	Title         string   `json:"title"`
	Author        []string `json:"author"`
	PublishedYear int      `json:"publishedYear"`
	Category      string   `json:"category"`
	ImageURL      string   `json:"imageUrl"`
	Rating        float64  `json:"rating"`
	MRP           float64  `json:"mrp"`
	Price         float64  `json:"price"`
	Pages         int      `json:"pages"`
	Summary       string   `json:"summary"`
}

type CatalogService struct {
	repo repository.BookRepository
}

func NewCatalogService(repo repository.BookRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// CreateBook validates the input, stores it and returns the stored
// listing with its assigned id and timestamps.
func (s *CatalogService) CreateBook(ctx context.Context, in BookInput) (*domain.Book, error) {
	v := validator.New()
	v.Check(in.Title != "", "title", "must be provided")
	v.Check(len(in.Author) > 0, "author", "must list at least one author")
	for _, a := range in.Author {
		v.Check(a != "", "author", "must not contain empty names")
	}
	v.Check(in.PublishedYear > 0, "publishedYear", "must be a positive year")
	v.Check(domain.ValidCategory(in.Category), "category", "must be a known category")
	v.Check(in.ImageURL != "", "imageUrl", "must be provided")
	v.Check(in.Rating >= domain.MinRating && in.Rating <= domain.MaxRating, "rating", "must be between 1 and 5")
	v.Check(in.MRP > 0, "mrp", "must be a positive amount")
	v.Check(in.Price > 0, "price", "must be a positive amount")
	v.Check(in.Pages > 0, "pages", "must be a positive count")
	v.Check(in.Summary != "", "summary", "must be provided")
	if !v.Valid() {
		return nil, failValidation(v.Errors)
	}

	book := &domain.Book{
		Title:         in.Title,
		Author:        in.Author,
		PublishedYear: in.PublishedYear,
		Category:      in.Category,
		ImageURL:      in.ImageURL,
		Rating:        in.Rating,
		MRP:           in.MRP,
		Price:         in.Price,
		Pages:         in.Pages,
		Summary:       in.Summary,
	}
	if err := s.repo.Insert(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *CatalogService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	return s.repo.FindAll(ctx)
}

func (s *CatalogService) GetBook(ctx context.Context, id string) (*domain.Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogService) ListBooksByCategory(ctx context.Context, category string) ([]domain.Book, error) {
	return s.repo.FindByCategory(ctx, category)
}

// Seed inserts the given listings best-effort: bad records are logged
// and skipped, never aborting the batch. A non-empty catalog skips the
// whole run, so seeding on every start stays idempotent.
func (s *CatalogService) Seed(ctx context.Context, inputs []BookInput) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check catalog before seeding: %w", err)
	}
	if n > 0 {
		log.Printf("catalog already has %d books, skipping seed", n)
		return nil
	}

	inserted := 0
	for _, in := range inputs {
		if _, err := s.CreateBook(ctx, in); err != nil {
			log.Printf("skipping seed record %q: %v", in.Title, err)
			continue
		}
		inserted++
	}
	log.Printf("seeded %d of %d books", inserted, len(inputs))
	return nil
}
