package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"CryptoPulse/internal/domain"
)

// PriceSnapshot is the cached view the ticker endpoint reads.
type PriceSnapshot interface {
	Snapshot() []domain.Price
}

// TickerHandler serves the decorative price strip.
type TickerHandler struct {
	prices PriceSnapshot
}

// NewTickerHandler creates the handler.
func NewTickerHandler(prices PriceSnapshot) *TickerHandler {
	return &TickerHandler{prices: prices}
}

// Handle processes GET /ticker. An empty cache yields an empty list, never
// an error; the feed is decoration.
func (h *TickerHandler) Handle(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]domain.Price{
		"prices": h.prices.Snapshot(),
	})
}
