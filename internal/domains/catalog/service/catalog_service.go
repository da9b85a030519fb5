package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"library-backend/internal/domains/catalog/model"
	"library-backend/internal/domains/catalog/repository"
	"library-backend/internal/shared"
	"library-backend/pkg/cache"
	"library-backend/pkg/logger"
)

const (
	catalogCacheKey = "catalog:books:all"
	catalogCacheTTL = 5 * time.Minute
)

type catalogService struct {
	repo  repository.Repository
	cache cache.Cache
}

// NewService builds the catalog service. cache may be nil (tests, dev
// without Redis); all reads then go straight to the store.
func NewService(repo repository.Repository, cache cache.Cache) Service {
	return &catalogService{repo: repo, cache: cache}
}

// AddBook validates the request, enforces ISBN uniqueness and persists the
// new book with available_copies = total_copies.
func (s *catalogService) AddBook(ctx context.Context, req model.AddBookRequest) (shared.Result, error) {
	// Step 1: Field validation
	if err := req.Validate(); err != nil {
		return shared.Fail(shared.KindValidation, err.Error()), nil
	}

	// Step 2: ISBN uniqueness
	_, err := s.repo.GetByISBN(ctx, req.ISBN)
	if err == nil {
		return shared.Fail(shared.KindConflict, model.ErrISBNAlreadyExists.Error()), nil
	}
	if !errors.Is(err, model.ErrBookNotFound) {
		return shared.Result{}, fmt.Errorf("isbn lookup failed: %w", err)
	}

	// Step 3: Persist with every copy available
	book := &model.Book{
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		TotalCopies:     req.TotalCopies,
		AvailableCopies: req.TotalCopies,
	}
	if err := s.repo.Insert(ctx, book); err != nil {
		if errors.Is(err, model.ErrISBNAlreadyExists) {
			// Lost the race against a concurrent add
			return shared.Fail(shared.KindConflict, model.ErrISBNAlreadyExists.Error()), nil
		}
		return shared.Result{}, err
	}

	s.invalidateCatalogCache(ctx)

	logger.Info("book added to catalog", map[string]interface{}{
		"book_id": book.ID,
		"isbn":    book.ISBN,
	})

	return shared.OK(fmt.Sprintf("Book '%s' successfully added to catalog.", book.Title)), nil
}

// SearchBooks never fails on an empty result; an empty query returns the
// whole catalog.
func (s *catalogService) SearchBooks(ctx context.Context, req model.SearchBooksRequest) ([]model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Search(ctx, req.Field, req.Query)
}

func (s *catalogService) GetAllBooks(ctx context.Context) ([]model.Book, error) {
	if s.cache != nil {
		var cached []model.Book
		found, err := s.cache.Get(ctx, catalogCacheKey, &cached)
		if err != nil {
			logger.Error("catalog cache read failed", err)
		} else if found {
			logger.Debug("catalog served from cache")
			return cached, nil
		}
	}

	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, catalogCacheKey, books, catalogCacheTTL); err != nil {
			logger.Error("catalog cache write failed", err)
		}
	}

	return books, nil
}

func (s *catalogService) invalidateCatalogCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, catalogCacheKey); err != nil {
		logger.Error("catalog cache invalidation failed", err)
	}
}
