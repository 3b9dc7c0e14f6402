package figma

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrUnavailable marks failures of the upstream design-tool API (network
// errors, auth rejections, 5xx). Callers can branch on it with errors.Is.
var ErrUnavailable = errors.New("figma api unavailable")

const DefaultBaseURL = "https://api.figma.com/v1"

// DefaultBatchSize bounds the number of node ids per request. The API caps
// URL length well before it caps id counts, so stay conservative.
const DefaultBatchSize = 100

// Client is a thin client for the Figma REST API. All calls are idempotent
// reads.
type Client struct {
	Token     string
	BaseURL   string
	BatchSize int
	HTTP      *http.Client
}

func NewClient(token, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Token:     token,
		BaseURL:   strings.TrimRight(baseURL, "/"),
		BatchSize: DefaultBatchSize,
		HTTP:      &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Figma-Token", c.Token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: GET %s returned %d: %s", ErrUnavailable, path, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response for %s: %w", path, err)
	}
	return nil
}

// GetFile fetches the full document tree plus the style and component
// catalogs for one file.
func (c *Client) GetFile(ctx context.Context, fileKey string) (*FileResponse, error) {
	var file FileResponse
	if err := c.get(ctx, "/files/"+fileKey, nil, &file); err != nil {
		return nil, err
	}
	if file.Document == nil {
		return nil, fmt.Errorf("file %s has no document", fileKey)
	}
	return &file, nil
}

// GetNodes fetches node detail for the given ids, chunked by BatchSize.
// A failed chunk is logged and skipped; the surviving chunks are merged, so
// the result may be partial.
func (c *Client) GetNodes(ctx context.Context, fileKey string, ids []string) (map[string]*Node, error) {
	nodes := make(map[string]*Node, len(ids))
	var lastErr error

	for _, chunk := range chunkIDs(ids, c.batchSize()) {
		q := url.Values{"ids": {strings.Join(chunk, ",")}}
		var resp nodesResponse
		if err := c.get(ctx, "/files/"+fileKey+"/nodes", q, &resp); err != nil {
			log.Printf("figma: node chunk of %d ids failed, continuing: %v", len(chunk), err)
			lastErr = err
			continue
		}
		for id, n := range resp.Nodes {
			if n.Document != nil {
				nodes[id] = n.Document
			}
		}
	}

	if len(nodes) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return nodes, nil
}

// GetImages fetches rendered preview URLs for the given node ids, chunked
// like GetNodes. Missing entries mean the render failed for that node.
func (c *Client) GetImages(ctx context.Context, fileKey string, ids []string, format string) (map[string]string, error) {
	if format == "" {
		format = "png"
	}
	images := make(map[string]string, len(ids))
	var lastErr error

	for _, chunk := range chunkIDs(ids, c.batchSize()) {
		q := url.Values{
			"ids":    {strings.Join(chunk, ",")},
			"format": {format},
		}
		var resp imagesResponse
		if err := c.get(ctx, "/images/"+fileKey, q, &resp); err != nil {
			log.Printf("figma: image chunk of %d ids failed, continuing: %v", len(chunk), err)
			lastErr = err
			continue
		}
		if resp.Err != "" {
			log.Printf("figma: image render error: %s", resp.Err)
			continue
		}
		for id, u := range resp.Images {
			if u != "" {
				images[id] = u
			}
		}
	}

	if len(images) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return images, nil
}

func (c *Client) batchSize() int {
	if c.BatchSize > 0 {
		return c.BatchSize
	}
	return DefaultBatchSize
}

func chunkIDs(ids []string, size int) [][]string {
	var chunks [][]string
	for i := 0; i < len(ids); i += size {
		end := i + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[i:end])
	}
	return chunks
}
