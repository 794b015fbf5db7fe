package figma

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"figmarelay/clients"
	"figmarelay/core"
	"figmarelay/models"
)

const DefaultAPIBaseURL = "https://api.figma.com/v1"

// FigmaClient implements the clients.FigmaClient interface over plain HTTP
type FigmaClient struct {
	httpClient *http.Client
	baseURL    string
	apiToken   string
}

// NewFigmaClient creates a Figma REST client. An empty baseURL falls back to the public API.
func NewFigmaClient(httpClient *http.Client, baseURL, apiToken string) clients.FigmaClient {
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	return &FigmaClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiToken:   apiToken,
	}
}

// ListComments fetches every comment on a file.
// 403 and 404 responses are returned wrapping core.ErrNotFound.
func (c *FigmaClient) ListComments(ctx context.Context, fileKey string) ([]models.FigmaComment, error) {
	endpoint := fmt.Sprintf("%s/files/%s/comments", c.baseURL, url.PathEscape(fileKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create comments request: %w", err)
	}
	req.Header.Set("X-Figma-Token", c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute comments request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read comments response body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden, http.StatusNotFound:
		log.Printf("❌ Figma API returned %d for file %s: check your API token and file key", resp.StatusCode, fileKey)
		return nil, fmt.Errorf("figma comments request failed with status %d: %w", resp.StatusCode, core.ErrNotFound)
	default:
		return nil, fmt.Errorf("figma comments request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var commentsResp models.FigmaCommentsResponse
	if err := json.Unmarshal(body, &commentsResp); err != nil {
		return nil, fmt.Errorf("failed to decode comments response: %w", err)
	}

	return commentsResp.Comments, nil
}
