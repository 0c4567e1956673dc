package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ankitsahucodes/BookNest-Backend/internal/config"
	bh "github.com/ankitsahucodes/BookNest-Backend/internal/http"
	"github.com/ankitsahucodes/BookNest-Backend/internal/repository"
	"github.com/ankitsahucodes/BookNest-Backend/internal/seed"
	"github.com/ankitsahucodes/BookNest-Backend/internal/service"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	db, err := repository.ConnectMongoDB(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Printf("Connected to MongoDB at %s", cfg.Mongo.URI)

	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	bookRepo := repository.NewMongoBookRepository(db)
	userRepo := repository.NewMongoUserRepository(db)

	catalog := service.NewCatalogService(bookRepo)
	users := service.NewUserService(userRepo)

	bookHandler := bh.NewBookHandler(catalog, cfg.Server.RequestTimeout)
	userHandler := bh.NewUserHandler(users, cfg.Server.RequestTimeout)

	router := bh.NewRouter(bookHandler, userHandler, cfg.Server.RequestTimeout)

	// Fire-and-forget: serving starts without waiting for the seed, so
	// early requests may see a partially filled catalog.
	if cfg.Seed.Enabled {
		go seed.Run(ctx, catalog, cfg.Seed.File)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("Server is running on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	if err := db.Client().Disconnect(ctx); err != nil {
		log.Printf("failed to disconnect MongoDB client: %v", err)
	}
	log.Println("server exited")
}
