package domain

import "time"

// Sentiment is a coarse positive/negative/neutral tag attached to an article.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Valid reports whether s is one of the three known sentiment values.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// BotAuthorID marks articles created through the anonymous ingestion
// channel. It is a sentinel, not a row in the admins table.
const BotAuthorID = "telegram-bot"

// BotCategory is the fixed category assigned to ingested articles.
const BotCategory = "Crypto News"

// Article is the core entity published on the site. Slug is derived from
// the title once at creation and never recomputed on rename.
type Article struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Sentiment Sentiment `json:"sentiment"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Published bool      `json:"published"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ArticlePatch carries a partial update; nil fields are left untouched.
type ArticlePatch struct {
	Title     *string
	Content   *string
	Category  *string
	Sentiment *Sentiment
	ImageURL  *string
	Published *bool
}

// ArticleFilter narrows listing queries.
type ArticleFilter struct {
	Category string
	Limit    int
	Offset   int
}

// Admin is an author account allowed to manage articles.
type Admin struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Price is a single cached quote from the public market feed.
type Price struct {
	Symbol    string  `json:"symbol"`
	USD       float64 `json:"usd"`
	Change24h float64 `json:"change24h"`
}
