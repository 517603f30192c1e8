package usecase

import (
	"context"
	"fmt"
	"sync"

	"CryptoPulse/internal/domain"
)

// memArticleRepo is an in-memory ArticleRepository for tests.
type memArticleRepo struct {
	mu       sync.Mutex
	articles map[string]domain.Article
	failNext error
}

func newMemArticleRepo() *memArticleRepo {
	return &memArticleRepo{articles: map[string]domain.Article{}}
}

func (r *memArticleRepo) takeErr() error {
	err := r.failNext
	r.failNext = nil
	return err
}

func (r *memArticleRepo) List(_ context.Context, filter domain.ArticleFilter) ([]domain.Article, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.takeErr(); err != nil {
		return nil, 0, err
	}

	var all []domain.Article
	for _, a := range r.articles {
		if filter.Category != "" && a.Category != filter.Category {
			continue
		}
		all = append(all, a)
	}
	return all, len(all), nil
}

func (r *memArticleRepo) GetByID(_ context.Context, id string) (domain.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.takeErr(); err != nil {
		return domain.Article{}, err
	}

	a, ok := r.articles[id]
	if !ok {
		return domain.Article{}, domain.ErrNotFound
	}
	return a, nil
}

func (r *memArticleRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.articles {
		if a.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *memArticleRepo) Create(_ context.Context, article domain.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.takeErr(); err != nil {
		return err
	}

	for _, a := range r.articles {
		if a.Slug == article.Slug {
			return fmt.Errorf("slug %s already taken", article.Slug)
		}
	}
	r.articles[article.ID] = article
	return nil
}

func (r *memArticleRepo) Update(_ context.Context, article domain.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.articles[article.ID]; !ok {
		return domain.ErrNotFound
	}
	r.articles[article.ID] = article
	return nil
}

func (r *memArticleRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.articles, id)
	return nil
}

func (r *memArticleRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.articles)
}

func (r *memArticleRepo) single() domain.Article {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.articles {
		return a
	}
	return domain.Article{}
}

// memAdminRepo is an in-memory AdminRepository for tests.
type memAdminRepo struct {
	admins []domain.Admin
}

func (r *memAdminRepo) GetByEmail(_ context.Context, email string) (domain.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return domain.Admin{}, domain.ErrNotFound
}

func (r *memAdminRepo) GetByID(_ context.Context, id string) (domain.Admin, error) {
	for _, a := range r.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Admin{}, domain.ErrNotFound
}

// staticTokens maps every admin id to a fixed token string.
type staticTokens struct{}

func (staticTokens) Issue(adminID string) (string, error) { return "token-for-" + adminID, nil }

func (staticTokens) Verify(token string) (string, error) {
	const prefix = "token-for-"
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return "", domain.ErrTokenInvalid
	}
	return token[len(prefix):], nil
}

// staticMedia resolves every file id to the same URL, or fails.
type staticMedia struct {
	url string
	err error
}

func (m staticMedia) ResolveURL(context.Context, string) (string, error) {
	return m.url, m.err
}
