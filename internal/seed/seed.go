// Package seed loads the static catalog dataset and feeds it to the
// catalog service on startup.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/ankitsahucodes/BookNest-Backend/internal/service"
)

// Load reads an ordered list of book records from a JSON file.
func Load(path string) ([]service.BookInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var books []service.BookInput
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return books, nil
}

// Run loads path and seeds the catalog with it. It is meant to run in
// its own goroutine: the server does not wait for it, and every failure
// is logged rather than returned.
func Run(ctx context.Context, catalog *service.CatalogService, path string) {
	books, err := Load(path)
	if err != nil {
		log.Printf("seeding skipped: %v", err)
		return
	}

	if err := catalog.Seed(ctx, books); err != nil {
		log.Printf("seeding failed: %v", err)
	}
}
