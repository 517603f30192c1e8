package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"CryptoPulse/internal/infrastructure/telegram"
	"CryptoPulse/internal/usecase"
)

// WebhookHandler receives Telegram updates. Its contract is "never fail
// visibly": the sender always gets {ok:true}, even for payloads we cannot
// parse, so it never retry-storms us.
type WebhookHandler struct {
	ingestor *usecase.Ingestor
	logger   *slog.Logger
}

// NewWebhookHandler creates the handler.
func NewWebhookHandler(ingestor *usecase.Ingestor, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{ingestor: ingestor, logger: logger}
}

// Handle processes POST /telegram-webhook.
func (h *WebhookHandler) Handle(c echo.Context) error {
	ack := map[string]bool{"ok": true}

	var update telegram.Update
	if err := c.Bind(&update); err != nil {
		if h.logger != nil {
			h.logger.Warn("unparseable webhook payload, acknowledged anyway", "error", err)
		}
		return c.JSON(http.StatusOK, ack)
	}

	h.ingestor.Ingest(c.Request().Context(), &update)
	return c.JSON(http.StatusOK, ack)
}
