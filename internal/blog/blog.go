package blog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sl "blog_service/internal/lib/logger"
	"blog_service/internal/models"
	"blog_service/internal/storage"
)

var (
	ErrNotFound        = errors.New("blog not found")
	ErrNotOwner        = errors.New("not the blog owner")
	ErrInvalidCategory = errors.New("unknown category")
)

type Service struct {
	log      *slog.Logger
	saver    Saver
	provider Provider
}

type Saver interface {
	SaveBlog(ctx context.Context, title, content, category string, accountID int64) (models.Blog, error)
	UpdateBlog(ctx context.Context, b models.Blog) error
	DeleteBlog(ctx context.Context, id int64) error
}

type Provider interface {
	BlogByID(ctx context.Context, id int64) (models.Blog, error)
	BlogsByAccount(ctx context.Context, accountID int64) ([]models.Blog, error)
	AllBlogs(ctx context.Context) ([]models.Blog, error)
}

func New(log *slog.Logger, saver Saver, provider Provider) *Service {
	return &Service{
		log:      log,
		saver:    saver,
		provider: provider,
	}
}

func (s *Service) Create(
	ctx context.Context,
	title, content, category string,
	authorID int64,
) (models.Blog, error) {
	const op = "blog.Create"

	log := s.log.With(slog.String("op", op))

	if !models.ValidCategory(category) {
		return models.Blog{}, ErrInvalidCategory
	}

	b, err := s.saver.SaveBlog(ctx, title, content, category, authorID)
	if err != nil {
		log.Error("failed to save blog", sl.Err(err))
		return models.Blog{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("blog created", slog.Int64("id", b.ID), slog.Int64("author", authorID))

	return b, nil
}

func (s *Service) Blog(ctx context.Context, id int64) (models.Blog, error) {
	const op = "blog.Blog"

	b, err := s.provider.BlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrBlogNotFound) {
			return models.Blog{}, ErrNotFound
		}

		s.log.Error("failed to load blog", slog.String("op", op), sl.Err(err))

		return models.Blog{}, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (s *Service) ByAuthor(ctx context.Context, accountID int64) ([]models.Blog, error) {
	const op = "blog.ByAuthor"

	blogs, err := s.provider.BlogsByAccount(ctx, accountID)
	if err != nil {
		s.log.Error("failed to list blogs", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return blogs, nil
}

func (s *Service) All(ctx context.Context) ([]models.Blog, error) {
	const op = "blog.All"

	blogs, err := s.provider.AllBlogs(ctx)
	if err != nil {
		s.log.Error("failed to list blogs", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return blogs, nil
}

// Edit applies a partial update: empty fields keep their old value. Only the
// owner or an admin may edit a post.
func (s *Service) Edit(
	ctx context.Context,
	id int64,
	callerID int64,
	callerRole models.Role,
	title, content, category string,
) (models.Blog, error) {
	const op = "blog.Edit"

	log := s.log.With(slog.String("op", op), slog.Int64("id", id))

	b, err := s.Blog(ctx, id)
	if err != nil {
		return models.Blog{}, err
	}

	if b.AccountID != callerID && callerRole != models.RoleAdmin {
		log.Warn("edit denied", slog.Int64("caller", callerID))
		return models.Blog{}, ErrNotOwner
	}

	if title != "" {
		b.Title = title
	}
	if content != "" {
		b.Content = content
	}
	if category != "" {
		if !models.ValidCategory(category) {
			return models.Blog{}, ErrInvalidCategory
		}
		b.Category = category
	}
	b.UpdatedAt = time.Now()

	if err := s.saver.UpdateBlog(ctx, b); err != nil {
		if errors.Is(err, storage.ErrBlogNotFound) {
			return models.Blog{}, ErrNotFound
		}

		log.Error("failed to update blog", sl.Err(err))

		return models.Blog{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("blog edited")

	return b, nil
}

// Delete removes a post under the same ownership rule as Edit and returns
// the deleted record.
func (s *Service) Delete(
	ctx context.Context,
	id int64,
	callerID int64,
	callerRole models.Role,
) (models.Blog, error) {
	const op = "blog.Delete"

	log := s.log.With(slog.String("op", op), slog.Int64("id", id))

	b, err := s.Blog(ctx, id)
	if err != nil {
		return models.Blog{}, err
	}

	if b.AccountID != callerID && callerRole != models.RoleAdmin {
		log.Warn("delete denied", slog.Int64("caller", callerID))
		return models.Blog{}, ErrNotOwner
	}

	if err := s.saver.DeleteBlog(ctx, id); err != nil {
		if errors.Is(err, storage.ErrBlogNotFound) {
			return models.Blog{}, ErrNotFound
		}

		log.Error("failed to delete blog", sl.Err(err))

		return models.Blog{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("blog deleted")

	return b, nil
}
