package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bookshelf/internal/auth"
	"bookshelf/internal/config"
	apphttp "bookshelf/internal/http"
	"bookshelf/internal/repository/sqlite"
	"bookshelf/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		logger.Fatalf("auth jwt secret is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	userRepo := sqlite.NewUserRepository(db)
	bookRepo := sqlite.NewBookRepository(db)

	if err := userRepo.Init(ctx); err != nil {
		logger.Fatalf("init user repository: %v", err)
	}
	if err := bookRepo.Init(ctx); err != nil {
		logger.Fatalf("init book repository: %v", err)
	}

	tokenIssuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
	userService := service.NewUserService(userRepo, tokenIssuer)
	bookService := service.NewBookService(bookRepo)

	if err := seedCatalog(ctx, bookService, logger); err != nil {
		logger.Fatalf("seed catalog: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), apphttp.RequestLogger(logger))
	router.LoadHTMLGlob(filepath.Join(cfg.Server.TemplatesDir, "*.html"))

	handler := apphttp.NewHandler(userService, bookService)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

// seedCatalog fills an empty catalog with a handful of classics so the home
// page has something to show on first run.
func seedCatalog(ctx context.Context, books service.BookService, logger *logrus.Logger) error {
	existing, err := books.ListBooks(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	seeds := []struct {
		title, author, description string
	}{
		{"The Great Gatsby", "F. Scott Fitzgerald", "The story of the fabulously wealthy Jay Gatsby and his love for the beautiful Daisy Buchanan."},
		{"The Catcher in the Rye", "J.D. Salinger", "The story of a young teenager named Holden Caulfield who struggles with his own disillusionment."},
		{"To Kill a Mockingbird", "Harper Lee", "The story of a young female narrator and her brother growing up in the South during the Great Depression."},
		{"1984", "George Orwell", "The story of a dystopian future where critical thought is suppressed by a totalitarian regime."},
		{"Pride and Prejudice", "Jane Austen", "The story of the Bennet family and their five unmarried daughters."},
	}

	for _, seed := range seeds {
		if _, err := books.CreateBook(ctx, seed.title, seed.author, seed.description); err != nil {
			return err
		}
	}
	logger.Infof("seeded catalog with %d books", len(seeds))
	return nil
}
