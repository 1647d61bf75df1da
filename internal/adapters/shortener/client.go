package shortener

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/meetboard/api/internal/core/ports"
)

type client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient talks to the external shortening service at baseURL
// (POST {baseURL}/api/shorten).
func NewClient(baseURL string) ports.LinkShortener {
	return &client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type shortenRequest struct {
	OriginalURL string `json:"originalUrl"`
}

type shortenResponse struct {
	ShortURL string `json:"shortUrl"`
	Error    string `json:"error"`
}

func (c *client) Shorten(ctx context.Context, originalURL string) (string, error) {
	body, err := json.Marshal(shortenRequest{OriginalURL: originalURL})
	if err != nil {
		return "", fmt.Errorf("failed to encode shorten request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/shorten", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build shorten request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("shorten request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded shortenResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode shorten response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if decoded.Error != "" {
			return "", fmt.Errorf("shortener returned %d: %s", resp.StatusCode, decoded.Error)
		}
		return "", fmt.Errorf("shortener returned status %d", resp.StatusCode)
	}
	if decoded.ShortURL == "" {
		return "", fmt.Errorf("shortener returned an empty short url")
	}

	return decoded.ShortURL, nil
}
