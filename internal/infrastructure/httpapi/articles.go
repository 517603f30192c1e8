package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"CryptoPulse/internal/domain"
	"CryptoPulse/internal/usecase"
)

// ArticleHandler serves the public feed and the admin write path.
type ArticleHandler struct {
	articles *usecase.ArticleService
	logger   *slog.Logger
}

// NewArticleHandler creates the handler.
func NewArticleHandler(articles *usecase.ArticleService, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{articles: articles, logger: logger}
}

type articleListResponse struct {
	Articles []domain.Article `json:"articles"`
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// List handles GET /articles.
func (h *ArticleHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	filter := domain.ArticleFilter{
		Category: c.QueryParam("category"),
		Limit:    limit,
		Offset:   offset,
	}

	articles, total, err := h.articles.List(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, articleListResponse{
		Articles: articles,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	})
}

// Get handles GET /articles/:id.
func (h *ArticleHandler) Get(c echo.Context) error {
	article, err := h.articles.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, article)
}

type createArticleRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	ImageURL  string `json:"imageUrl"`
	Sentiment string `json:"sentiment"`
}

// Create handles POST /articles.
func (h *ArticleHandler) Create(c echo.Context) error {
	var req createArticleRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.logger, domain.Validation("malformed request body"))
	}

	article, err := h.articles.Create(c.Request().Context(), adminID(c), usecase.CreateInput{
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		ImageURL:  req.ImageURL,
		Sentiment: domain.Sentiment(req.Sentiment),
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, article)
}

type updateArticleRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Category  *string `json:"category"`
	ImageURL  *string `json:"imageUrl"`
	Sentiment *string `json:"sentiment"`
	Published *bool   `json:"published"`
}

// Update handles PUT /articles/:id; only the fields present in the body
// are touched.
func (h *ArticleHandler) Update(c echo.Context) error {
	var req updateArticleRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.logger, domain.Validation("malformed request body"))
	}

	patch := domain.ArticlePatch{
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		ImageURL:  req.ImageURL,
		Published: req.Published,
	}
	if req.Sentiment != nil {
		s := domain.Sentiment(*req.Sentiment)
		patch.Sentiment = &s
	}

	article, err := h.articles.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, article)
}

// Delete handles DELETE /articles/:id.
func (h *ArticleHandler) Delete(c echo.Context) error {
	if err := h.articles.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
