package service

import (
	"context"
	"errors"

	"bookshelf/internal/domain"
	"bookshelf/internal/repository"
)

// ErrBookNotFound is returned when a catalog entry does not exist.
var ErrBookNotFound = errors.New("book not found")

// BookService coordinates catalog operations backed by the book repository.
// Authorization happens before any of these are reached; callers pass in an
// already-authenticated user.
type BookService interface {
	CreateBook(ctx context.Context, title, author, description string) (*domain.Book, error)
	GetBook(ctx context.Context, id int64) (*domain.Book, error)
	ListBooks(ctx context.Context) ([]domain.Book, error)
	UpdateBook(ctx context.Context, id int64, title, author, description string) (*domain.Book, error)
	DeleteBook(ctx context.Context, id int64) (*domain.Book, error)
}

type bookService struct {
	books repository.BookRepository
}

func NewBookService(books repository.BookRepository) BookService {
	return &bookService{books: books}
}

func (s *bookService) CreateBook(ctx context.Context, title, author, description string) (*domain.Book, error) {
	if title == "" {
		return nil, errors.New("title is required")
	}
	if author == "" {
		return nil, errors.New("author is required")
	}

	book := &domain.Book{
		Title:       title,
		Author:      author,
		Description: description,
	}
	if _, err := s.books.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *bookService) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := s.books.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}

func (s *bookService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	return s.books.List(ctx)
}

func (s *bookService) UpdateBook(ctx context.Context, id int64, title, author, description string) (*domain.Book, error) {
	if title == "" {
		return nil, errors.New("title is required")
	}
	if author == "" {
		return nil, errors.New("author is required")
	}

	book, err := s.books.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	book.Title = title
	book.Author = author
	book.Description = description

	if err := s.books.Update(ctx, book); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}

func (s *bookService) DeleteBook(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := s.books.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	if err := s.books.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}
