package ports

import (
	"context"

	"CryptoPulse/internal/domain"
)

// ArticleRepository persists articles in a durable store with a unique
// slug index.
type ArticleRepository interface {
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int, error)
	GetByID(ctx context.Context, id string) (domain.Article, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, article domain.Article) error
	Update(ctx context.Context, article domain.Article) error
	Delete(ctx context.Context, id string) error
}

// AdminRepository looks up author accounts for login and token checks.
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (domain.Admin, error)
	GetByID(ctx context.Context, id string) (domain.Admin, error)
}

// TokenService issues and verifies opaque admin credentials.
type TokenService interface {
	Issue(adminID string) (string, error)
	Verify(token string) (string, error)
}

// MediaResolver turns an inbound attachment reference into a fetchable URL.
type MediaResolver interface {
	ResolveURL(ctx context.Context, fileID string) (string, error)
}

// PriceSource fetches quotes from the public market-data feed.
type PriceSource interface {
	Fetch(ctx context.Context) ([]domain.Price, error)
}
