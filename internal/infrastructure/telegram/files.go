package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"CryptoPulse/internal/ports"
)

// FileResolver exchanges a file_id for a download URL via the Bot API
// getFile call.
type FileResolver struct {
	botToken string
	baseURL  string
	client   *http.Client
}

var _ ports.MediaResolver = (*FileResolver)(nil)

// NewFileResolver registers the bot token used for getFile calls.
func NewFileResolver(botToken string) *FileResolver {
	return &FileResolver{
		botToken: botToken,
		baseURL:  "https://api.telegram.org",
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// NewFileResolverWithBase overrides the API host, for tests.
func NewFileResolverWithBase(botToken, baseURL string) *FileResolver {
	r := NewFileResolver(botToken)
	r.baseURL = baseURL
	return r
}

type getFileResponse struct {
	OK     bool `json:"ok"`
	Result struct {
		FilePath string `json:"file_path"`
	} `json:"result"`
}

// ResolveURL asks the Bot API for the file path behind fileID and builds
// the static download URL from it.
func (r *FileResolver) ResolveURL(ctx context.Context, fileID string) (string, error) {
	if r.botToken == "" {
		return "", fmt.Errorf("telegram file resolver misconfigured")
	}

	endpoint := fmt.Sprintf("%s/bot%s/getFile?file_id=%s", r.baseURL, r.botToken, url.QueryEscape(fileID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("telegram error: %s", resp.Status)
	}

	var payload getFileResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode getFile response: %w", err)
	}
	if !payload.OK || payload.Result.FilePath == "" {
		return "", fmt.Errorf("getFile rejected file_id")
	}

	return fmt.Sprintf("%s/file/bot%s/%s", r.baseURL, r.botToken, payload.Result.FilePath), nil
}
