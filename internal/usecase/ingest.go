package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"CryptoPulse/internal/domain"
	"CryptoPulse/internal/infrastructure/telegram"
	"CryptoPulse/internal/ports"
	"CryptoPulse/internal/sentiment"
	"CryptoPulse/internal/slug"
)

const (
	minIngestTextLen = 10
	maxIngestTitle   = 100
	fallbackTitle    = "Crypto News Update"
)

// IngestDeps wires the collaborators of the anonymous ingestion channel.
type IngestDeps struct {
	Repository ports.ArticleRepository
	Media      ports.MediaResolver
	Logger     *slog.Logger
	Now        func() time.Time
	NewID      func() string
}

// Ingestor turns inbound webhook messages into published articles. Its
// contract is "never fail visibly": the upstream sender always gets an
// acknowledgement, so internal faults are logged and swallowed here, at
// the top level, rather than handled ad hoc inside the pipeline.
type Ingestor struct {
	repo   ports.ArticleRepository
	media  ports.MediaResolver
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// NewIngestor constructs the ingestion pipeline.
func NewIngestor(deps IngestDeps) *Ingestor {
	i := &Ingestor{
		repo:   deps.Repository,
		media:  deps.Media,
		logger: deps.Logger,
		now:    deps.Now,
		newID:  deps.NewID,
	}
	if i.now == nil {
		i.now = time.Now
	}
	if i.newID == nil {
		i.newID = uuid.NewString
	}
	return i
}

// Ingest processes one webhook update. It never returns an error.
func (i *Ingestor) Ingest(ctx context.Context, update *telegram.Update) {
	defer func() {
		if r := recover(); r != nil {
			i.warn("ingest panic swallowed", "panic", r)
		}
	}()

	if err := i.process(ctx, update); err != nil {
		i.warn("ingest failed, acknowledged anyway", "error", err)
	}
}

func (i *Ingestor) process(ctx context.Context, update *telegram.Update) error {
	msg := update.Content()
	if msg == nil {
		i.debug("update carries no message, discarding")
		return nil
	}

	text := strings.TrimSpace(msg.BodyText())
	if len(text) < minIngestTextLen {
		i.debug("message too short, discarding", "length", len(text))
		return nil
	}

	now := i.now().UTC()
	title := deriveTitle(text)

	article := domain.Article{
		ID:        i.newID(),
		Slug:      slug.Timestamped(title, now),
		Title:     title,
		Content:   text,
		Category:  domain.BotCategory,
		Sentiment: sentiment.Classify(text),
		Published: true,
		AuthorID:  domain.BotAuthorID,
		CreatedAt: now,
	}

	if photo, ok := msg.LargestPhoto(); ok && i.media != nil {
		imageURL, err := i.media.ResolveURL(ctx, photo.FileID)
		if err != nil {
			// The image is decoration; the article still ships.
			i.warn("media resolution failed, dropping image", "error", err)
		} else {
			article.ImageURL = imageURL
		}
	}

	if err := i.repo.Create(ctx, article); err != nil {
		return fmt.Errorf("persist ingested article: %w", err)
	}

	i.info("article ingested", "id", article.ID, "slug", article.Slug, "sentiment", article.Sentiment)
	return nil
}

// deriveTitle takes the first line of the text, truncated to 100 runes,
// with a fixed fallback when that line is empty.
func deriveTitle(text string) string {
	firstLine, _, _ := strings.Cut(text, "\n")
	firstLine = strings.TrimSpace(firstLine)
	if firstLine == "" {
		return fallbackTitle
	}
	runes := []rune(firstLine)
	if len(runes) > maxIngestTitle {
		return string(runes[:maxIngestTitle])
	}
	return firstLine
}

func (i *Ingestor) info(msg string, args ...any) {
	if i.logger != nil {
		i.logger.Info(msg, args...)
	}
}

func (i *Ingestor) warn(msg string, args ...any) {
	if i.logger != nil {
		i.logger.Warn(msg, args...)
	}
}

func (i *Ingestor) debug(msg string, args ...any) {
	if i.logger != nil {
		i.logger.Debug(msg, args...)
	}
}
