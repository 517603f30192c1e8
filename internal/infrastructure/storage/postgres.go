package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"CryptoPulse/internal/domain"
	"CryptoPulse/internal/ports"
)

// Open connects to Postgres, tunes the pool and verifies the connection
// with a bounded ping.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ArticleRepository persists articles in Postgres. The slug column carries
// a unique index; slug probing relies on it.
type ArticleRepository struct {
	db *sql.DB
}

var _ ports.ArticleRepository = (*ArticleRepository)(nil)

// NewArticleRepository wires a sql.DB implementation.
func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

const articleColumns = "id, slug, title, content, category, sentiment, image_url, published, author_id, created_at"

func scanArticle(row sq.RowScanner) (domain.Article, error) {
	var (
		a        domain.Article
		imageURL sql.NullString
	)
	err := row.Scan(&a.ID, &a.Slug, &a.Title, &a.Content, &a.Category,
		&a.Sentiment, &imageURL, &a.Published, &a.AuthorID, &a.CreatedAt)
	if err != nil {
		return domain.Article{}, err
	}
	a.ImageURL = imageURL.String
	return a, nil
}

// List returns a page of published-and-unpublished articles plus the total
// count matching the filter, newest first.
func (r *ArticleRepository) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int, error) {
	countQ := builder.Select("COUNT(*)").From("articles")
	listQ := builder.Select(articleColumns).From("articles").OrderBy("created_at DESC")

	if filter.Category != "" {
		countQ = countQ.Where(sq.Eq{"category": filter.Category})
		listQ = listQ.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Limit > 0 {
		listQ = listQ.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		listQ = listQ.Offset(uint64(filter.Offset))
	}

	query, args, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	query, args, err = listQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration: %w", err)
	}

	return articles, total, nil
}

// GetByID loads a single article or ErrNotFound.
func (r *ArticleRepository) GetByID(ctx context.Context, id string) (domain.Article, error) {
	query, args, err := builder.Select(articleColumns).From("articles").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return domain.Article{}, fmt.Errorf("build get query: %w", err)
	}

	article, err := scanArticle(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Article{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Article{}, fmt.Errorf("get article: %w", err)
	}
	return article, nil
}

// SlugExists checks the unique slug index.
func (r *ArticleRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	query, args, err := builder.Select("1").From("articles").Where(sq.Eq{"slug": slug}).Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("build slug query: %w", err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return true, nil
}

// Create inserts a new article row.
func (r *ArticleRepository) Create(ctx context.Context, article domain.Article) error {
	query, args, err := builder.Insert("articles").
		Columns("id", "slug", "title", "content", "category", "sentiment",
			"image_url", "published", "author_id", "created_at").
		Values(article.ID, article.Slug, article.Title, article.Content,
			article.Category, article.Sentiment, nullable(article.ImageURL),
			article.Published, article.AuthorID, article.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// Update overwrites the mutable columns of an existing row. The slug is
// never touched; it is fixed at creation.
func (r *ArticleRepository) Update(ctx context.Context, article domain.Article) error {
	query, args, err := builder.Update("articles").
		Set("title", article.Title).
		Set("content", article.Content).
		Set("category", article.Category).
		Set("sentiment", article.Sentiment).
		Set("image_url", nullable(article.ImageURL)).
		Set("published", article.Published).
		Where(sq.Eq{"id": article.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes an article row.
func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	query, args, err := builder.Delete("articles").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// AdminRepository looks up author accounts.
type AdminRepository struct {
	db *sql.DB
}

var _ ports.AdminRepository = (*AdminRepository)(nil)

// NewAdminRepository wires a sql.DB implementation.
func NewAdminRepository(db *sql.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) get(ctx context.Context, pred sq.Eq) (domain.Admin, error) {
	query, args, err := builder.Select("id, name, email, password_hash").
		From("admins").Where(pred).ToSql()
	if err != nil {
		return domain.Admin{}, fmt.Errorf("build admin query: %w", err)
	}

	var admin domain.Admin
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&admin.ID, &admin.Name, &admin.Email, &admin.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Admin{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Admin{}, fmt.Errorf("get admin: %w", err)
	}
	return admin, nil
}

// GetByEmail loads an admin for login.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (domain.Admin, error) {
	return r.get(ctx, sq.Eq{"email": email})
}

// GetByID loads an admin for token verification.
func (r *AdminRepository) GetByID(ctx context.Context, id string) (domain.Admin, error) {
	return r.get(ctx, sq.Eq{"id": id})
}
