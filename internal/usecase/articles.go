package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"CryptoPulse/internal/domain"
	"CryptoPulse/internal/ports"
	"CryptoPulse/internal/ratelimit"
	"CryptoPulse/internal/sanitize"
	"CryptoPulse/internal/slug"
)

// CreateLimit caps article creation per admin identity.
type CreateLimit struct {
	Limit  int
	Window time.Duration
}

// ArticleDeps wires the collaborators of the authenticated write path.
type ArticleDeps struct {
	Repository  ports.ArticleRepository
	Limiter     *ratelimit.Limiter
	CreateLimit CreateLimit
	Logger      *slog.Logger
	Now         func() time.Time
	NewID       func() string
}

// ArticleService implements the public read path and the admin-gated
// create/update/delete path.
type ArticleService struct {
	repo        ports.ArticleRepository
	limiter     *ratelimit.Limiter
	createLimit CreateLimit
	logger      *slog.Logger
	now         func() time.Time
	newID       func() string
}

// NewArticleService constructs the service.
func NewArticleService(deps ArticleDeps) *ArticleService {
	s := &ArticleService{
		repo:        deps.Repository,
		limiter:     deps.Limiter,
		createLimit: deps.CreateLimit,
		logger:      deps.Logger,
		now:         deps.Now,
		newID:       deps.NewID,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if s.createLimit.Limit <= 0 {
		s.createLimit = CreateLimit{Limit: 10, Window: time.Minute}
	}
	return s
}

// List returns a page of articles plus the total matching the filter.
// Limit defaults to 20 and is capped at 100.
func (s *ArticleService) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	articles, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}
	return articles, total, nil
}

// Get loads one article by id.
func (s *ArticleService) Get(ctx context.Context, id string) (domain.Article, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateInput is a human-authored article submission.
type CreateInput struct {
	Title     string
	Content   string
	Category  string
	ImageURL  string
	Sentiment domain.Sentiment
}

// Create runs the admin write pipeline: rate limit, validate, sanitize,
// resolve a unique slug, persist. No side effects before the limiter and
// validator both pass.
func (s *ArticleService) Create(ctx context.Context, adminID string, in CreateInput) (domain.Article, error) {
	if s.limiter != nil {
		res := s.limiter.Check("create:"+adminID, s.createLimit.Limit, s.createLimit.Window)
		if !res.Allowed {
			return domain.Article{}, domain.ErrRateLimited
		}
	}

	if err := sanitize.CheckArticle(in.Title, in.Content, in.Category); err != nil {
		return domain.Article{}, err
	}

	title := sanitize.Clean(in.Title)
	content := sanitize.Clean(in.Content)
	category := sanitize.Clean(in.Category)

	sent := in.Sentiment
	if !sent.Valid() {
		sent = domain.SentimentNeutral
	}

	uniqueSlug, err := slug.Unique(ctx, title, s.repo.SlugExists)
	if err != nil {
		return domain.Article{}, fmt.Errorf("resolve slug: %w", err)
	}

	article := domain.Article{
		ID:        s.newID(),
		Slug:      uniqueSlug,
		Title:     title,
		Content:   content,
		Category:  category,
		Sentiment: sent,
		ImageURL:  in.ImageURL,
		Published: true,
		AuthorID:  adminID,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, article); err != nil {
		return domain.Article{}, fmt.Errorf("persist article: %w", err)
	}

	s.info("article created", "id", article.ID, "slug", article.Slug, "author", adminID)
	return article, nil
}

// Update overwrites only the fields present in the patch, re-validating
// and re-sanitizing just the changed subset. The slug is never recomputed.
func (s *ArticleService) Update(ctx context.Context, id string, patch domain.ArticlePatch) (domain.Article, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Article{}, err
	}

	if patch.Title != nil {
		title := *patch.Title
		if err := sanitize.CheckArticle(title, article.Content, article.Category); err != nil {
			return domain.Article{}, err
		}
		article.Title = sanitize.Clean(title)
	}
	if patch.Content != nil {
		content := *patch.Content
		if err := sanitize.CheckArticle(article.Title, content, article.Category); err != nil {
			return domain.Article{}, err
		}
		article.Content = sanitize.Clean(content)
	}
	if patch.Category != nil {
		category := *patch.Category
		if err := sanitize.CheckArticle(article.Title, article.Content, category); err != nil {
			return domain.Article{}, err
		}
		article.Category = sanitize.Clean(category)
	}
	if patch.Sentiment != nil {
		if !patch.Sentiment.Valid() {
			return domain.Article{}, domain.Validation("sentiment must be positive, negative or neutral")
		}
		article.Sentiment = *patch.Sentiment
	}
	if patch.ImageURL != nil {
		article.ImageURL = sanitize.Clean(*patch.ImageURL)
	}
	if patch.Published != nil {
		article.Published = *patch.Published
	}

	if err := s.repo.Update(ctx, article); err != nil {
		return domain.Article{}, fmt.Errorf("update article: %w", err)
	}

	s.info("article updated", "id", article.ID)
	return article, nil
}

// Delete removes an article.
func (s *ArticleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	s.info("article deleted", "id", id)
	return nil
}

func (s *ArticleService) info(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}
