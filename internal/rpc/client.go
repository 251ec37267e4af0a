package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tripfolio/travel-platform/internal/core/domain"
	"github.com/tripfolio/travel-platform/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Client is a thin JSON-over-HTTP caller for the internal services. Failed
// calls come back as classified errors decoded from the peer's envelope;
// transport failures are internal.
type Client struct {
	base string
	http *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

// Do performs one internal call. caller, in and out may each be nil: caller
// attaches identity metadata, in is the JSON request body, out receives the
// decoded response body.
func (c *Client) Do(ctx context.Context, method, path string, caller *ports.AuthContext, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return domain.Ef(domain.KindInternal, "encode request: %v", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return domain.Ef(domain.KindInternal, "build request: %v", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if caller != nil {
		SetAuthHeaders(req.Header, *caller)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Ef(domain.KindInternal, "internal call failed: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Ef(domain.KindInternal, "read response: %v", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return DecodeError(resp.StatusCode, data)
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return domain.Ef(domain.KindInternal, "decode response: %v", err)
		}
	}
	return nil
}
