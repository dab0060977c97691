package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"blog_service/internal/config"
	"blog_service/internal/models"
	"blog_service/internal/storage"
	"blog_service/internal/storage/postgres/migrations"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepo struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, cfg *config.Config) (*PostgresRepo, error) {
	const op = "storage.postgres.New"

	dsn := dsn(cfg)

	if err := runMigrations(ctx, dsn); err != nil {
		return nil, fmt.Errorf("%s: failed to run migrations: %w", op, err)
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse config: %w", op, err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create pool: %w", op, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: failed to ping database: %w", op, err)
	}

	return &PostgresRepo{pool: pool}, nil
}

func (r *PostgresRepo) SaveAccount(
	ctx context.Context,
	fullName, email string,
	passHash []byte,
	role models.Role,
) (int64, error) {
	const op = "storage.postgres.SaveAccount"

	query := `
		INSERT INTO accounts (full_name, email, pass_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`

	var id int64

	err := r.pool.QueryRow(ctx, query, fullName, email, string(passHash), string(role)).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, storage.ErrAccountExists
		}

		return 0, fmt.Errorf("%s: failed to save account: %w", op, err)
	}

	return id, nil
}

func (r *PostgresRepo) AccountByEmail(ctx context.Context, email string) (models.Account, error) {
	query := `
		SELECT id, full_name, email, pass_hash, role, created_at
		FROM accounts
		WHERE email = $1;
	`

	return r.scanAccount(r.pool.QueryRow(ctx, query, email))
}

func (r *PostgresRepo) AccountByID(ctx context.Context, id int64) (models.Account, error) {
	query := `
		SELECT id, full_name, email, pass_hash, role, created_at
		FROM accounts
		WHERE id = $1;
	`

	return r.scanAccount(r.pool.QueryRow(ctx, query, id))
}

func (r *PostgresRepo) scanAccount(row pgx.Row) (models.Account, error) {
	var a models.Account
	err := row.Scan(
		&a.ID,
		&a.FullName,
		&a.Email,
		&a.PassHash,
		&a.Role,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Account{}, storage.ErrAccountNotFound
		}

		return models.Account{}, err
	}

	return a, nil
}

func (r *PostgresRepo) SaveBlog(
	ctx context.Context,
	title, content, category string,
	accountID int64,
) (models.Blog, error) {
	const op = "storage.postgres.SaveBlog"

	query := `
		INSERT INTO blogs (title, content, category, account_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, content, category, account_id, created_at, updated_at;
	`

	b, err := r.scanBlog(r.pool.QueryRow(ctx, query, title, content, category, accountID))
	if err != nil {
		return models.Blog{}, fmt.Errorf("%s: failed to save blog: %w", op, err)
	}

	return b, nil
}

func (r *PostgresRepo) BlogByID(ctx context.Context, id int64) (models.Blog, error) {
	query := `
		SELECT id, title, content, category, account_id, created_at, updated_at
		FROM blogs
		WHERE id = $1;
	`

	return r.scanBlog(r.pool.QueryRow(ctx, query, id))
}

func (r *PostgresRepo) BlogsByAccount(ctx context.Context, accountID int64) ([]models.Blog, error) {
	query := `
		SELECT id, title, content, category, account_id, created_at, updated_at
		FROM blogs
		WHERE account_id = $1
		ORDER BY created_at DESC;
	`

	return r.queryBlogs(ctx, query, accountID)
}

func (r *PostgresRepo) AllBlogs(ctx context.Context) ([]models.Blog, error) {
	query := `
		SELECT id, title, content, category, account_id, created_at, updated_at
		FROM blogs
		ORDER BY created_at DESC;
	`

	return r.queryBlogs(ctx, query)
}

func (r *PostgresRepo) UpdateBlog(ctx context.Context, b models.Blog) error {
	const op = "storage.postgres.UpdateBlog"

	query := `
		UPDATE blogs
		SET title = $1, content = $2, category = $3, updated_at = $4
		WHERE id = $5;
	`

	tag, err := r.pool.Exec(ctx, query, b.Title, b.Content, b.Category, b.UpdatedAt, b.ID)
	if err != nil {
		return fmt.Errorf("%s: failed to update blog: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrBlogNotFound
	}

	return nil
}

func (r *PostgresRepo) DeleteBlog(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteBlog"

	query := `DELETE FROM blogs WHERE id = $1;`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: failed to delete blog: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrBlogNotFound
	}

	return nil
}

func (r *PostgresRepo) queryBlogs(ctx context.Context, query string, args ...any) ([]models.Blog, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []models.Blog

	for rows.Next() {
		b, err := r.scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return blogs, nil
}

func (r *PostgresRepo) scanBlog(row pgx.Row) (models.Blog, error) {
	var b models.Blog
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Content,
		&b.Category,
		&b.AccountID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Blog{}, storage.ErrBlogNotFound
		}

		return models.Blog{}, err
	}

	return b, nil
}

func (r *PostgresRepo) Close() {
	r.pool.Close()
}

func runMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

// * dsn формирует конфигурацию базы данных.
func dsn(cfg *config.Config) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s database=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.DBName,
		cfg.Postgres.SSLMode,
	)
}
