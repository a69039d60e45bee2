package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/domain"
	"bookshelf/internal/repository"
)

type fakeBookRepo struct {
	books  map[int64]*domain.Book
	nextID int64
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[int64]*domain.Book), nextID: 1}
}

func (f *fakeBookRepo) Init(ctx context.Context) error { return nil }

func (f *fakeBookRepo) Create(ctx context.Context, book *domain.Book) (int64, error) {
	book.ID = f.nextID
	f.nextID++
	now := time.Now().UTC()
	book.CreatedAt = now
	book.UpdatedAt = now
	clone := *book
	f.books[book.ID] = &clone
	return book.ID, nil
}

func (f *fakeBookRepo) Get(ctx context.Context, id int64) (*domain.Book, error) {
	book, ok := f.books[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *book
	return &clone, nil
}

func (f *fakeBookRepo) List(ctx context.Context) ([]domain.Book, error) {
	var out []domain.Book
	for id := int64(1); id < f.nextID; id++ {
		if book, ok := f.books[id]; ok {
			out = append(out, *book)
		}
	}
	return out, nil
}

func (f *fakeBookRepo) Update(ctx context.Context, book *domain.Book) error {
	if _, ok := f.books[book.ID]; !ok {
		return repository.ErrNotFound
	}
	clone := *book
	f.books[book.ID] = &clone
	return nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.books[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.books, id)
	return nil
}

func TestBookCRUD(t *testing.T) {
	svc := NewBookService(newFakeBookRepo())
	ctx := context.Background()

	book, err := svc.CreateBook(ctx, "1984", "George Orwell", "Dystopia")
	require.NoError(t, err)
	require.NotZero(t, book.ID)

	got, err := svc.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "1984", got.Title)

	updated, err := svc.UpdateBook(ctx, book.ID, "Animal Farm", "George Orwell", "Fable")
	require.NoError(t, err)
	assert.Equal(t, "Animal Farm", updated.Title)

	deleted, err := svc.DeleteBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Animal Farm", deleted.Title)

	_, err = svc.GetBook(ctx, book.ID)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestListBooksOrdered(t *testing.T) {
	svc := NewBookService(newFakeBookRepo())
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.CreateBook(ctx, title, "author", "")
		require.NoError(t, err)
	}

	books, err := svc.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 3)
	assert.Equal(t, "first", books[0].Title)
	assert.Equal(t, "third", books[2].Title)
}

func TestBookNotFound(t *testing.T) {
	svc := NewBookService(newFakeBookRepo())
	ctx := context.Background()

	_, err := svc.GetBook(ctx, 42)
	assert.ErrorIs(t, err, ErrBookNotFound)

	_, err = svc.UpdateBook(ctx, 42, "t", "a", "")
	assert.ErrorIs(t, err, ErrBookNotFound)

	_, err = svc.DeleteBook(ctx, 42)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestCreateBookValidation(t *testing.T) {
	svc := NewBookService(newFakeBookRepo())
	ctx := context.Background()

	_, err := svc.CreateBook(ctx, "", "author", "")
	assert.Error(t, err)

	_, err = svc.CreateBook(ctx, "title", "", "")
	assert.Error(t, err)
}
