package blog

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"blog_service/internal/models"
	"blog_service/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBlogStore struct {
	nextID int64
	blogs  map[int64]models.Blog
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{blogs: map[int64]models.Blog{}}
}

func (f *fakeBlogStore) SaveBlog(ctx context.Context, title, content, category string, accountID int64) (models.Blog, error) {
	f.nextID++
	b := models.Blog{
		ID:        f.nextID,
		Title:     title,
		Content:   content,
		Category:  category,
		AccountID: accountID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.blogs[b.ID] = b

	return b, nil
}

func (f *fakeBlogStore) UpdateBlog(ctx context.Context, b models.Blog) error {
	if _, ok := f.blogs[b.ID]; !ok {
		return storage.ErrBlogNotFound
	}
	f.blogs[b.ID] = b

	return nil
}

func (f *fakeBlogStore) DeleteBlog(ctx context.Context, id int64) error {
	if _, ok := f.blogs[id]; !ok {
		return storage.ErrBlogNotFound
	}
	delete(f.blogs, id)

	return nil
}

func (f *fakeBlogStore) BlogByID(ctx context.Context, id int64) (models.Blog, error) {
	b, ok := f.blogs[id]
	if !ok {
		return models.Blog{}, storage.ErrBlogNotFound
	}

	return b, nil
}

func (f *fakeBlogStore) BlogsByAccount(ctx context.Context, accountID int64) ([]models.Blog, error) {
	var out []models.Blog
	for _, b := range f.blogs {
		if b.AccountID == accountID {
			out = append(out, b)
		}
	}

	return out, nil
}

func (f *fakeBlogStore) AllBlogs(ctx context.Context) ([]models.Blog, error) {
	var out []models.Blog
	for _, b := range f.blogs {
		out = append(out, b)
	}

	return out, nil
}

func newTestService(store *fakeBlogStore) *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(log, store, store)
}

func TestCreate_RejectsUnknownCategory(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeBlogStore())

	_, err := svc.Create(context.Background(), "t", "c", "Astrology", 1)
	require.ErrorIs(t, err, ErrInvalidCategory)
}

func TestEdit_OwnerPartialUpdate(t *testing.T) {
	t.Parallel()

	store := newFakeBlogStore()
	svc := newTestService(store)

	b, err := svc.Create(context.Background(), "old title", "old content", "Tech", 1)
	require.NoError(t, err)

	got, err := svc.Edit(context.Background(), b.ID, 1, models.RoleUser, "new title", "", "")
	require.NoError(t, err)

	assert.Equal(t, "new title", got.Title)
	assert.Equal(t, "old content", got.Content)
	assert.Equal(t, "Tech", got.Category)
}

func TestEdit_NonOwnerDenied(t *testing.T) {
	t.Parallel()

	store := newFakeBlogStore()
	svc := newTestService(store)

	b, err := svc.Create(context.Background(), "t", "c", "Tech", 1)
	require.NoError(t, err)

	_, err = svc.Edit(context.Background(), b.ID, 2, models.RoleUser, "hijacked", "", "")
	require.ErrorIs(t, err, ErrNotOwner)

	got, err := svc.Blog(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "t", got.Title)
}

func TestEdit_AdminMayEditAnyPost(t *testing.T) {
	t.Parallel()

	store := newFakeBlogStore()
	svc := newTestService(store)

	b, err := svc.Create(context.Background(), "t", "c", "Tech", 1)
	require.NoError(t, err)

	got, err := svc.Edit(context.Background(), b.ID, 2, models.RoleAdmin, "moderated", "", "")
	require.NoError(t, err)
	assert.Equal(t, "moderated", got.Title)
}

func TestDelete_OwnershipRule(t *testing.T) {
	t.Parallel()

	store := newFakeBlogStore()
	svc := newTestService(store)

	b, err := svc.Create(context.Background(), "t", "c", "Tech", 1)
	require.NoError(t, err)

	_, err = svc.Delete(context.Background(), b.ID, 2, models.RoleUser)
	require.ErrorIs(t, err, ErrNotOwner)

	deleted, err := svc.Delete(context.Background(), b.ID, 1, models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, b.ID, deleted.ID)

	_, err = svc.Blog(context.Background(), b.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeBlogStore())

	_, err := svc.Delete(context.Background(), 404, 1, models.RoleUser)
	require.ErrorIs(t, err, ErrNotFound)
}
