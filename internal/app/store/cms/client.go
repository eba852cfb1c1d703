// Package cms is the HTTP client for the headless content repository. All
// durable state of the site lives there: the four catalog collections are
// read through it, and user, suggestion, and click records are written
// through it. Responses arrive wrapped in a {"data": ...} envelope.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	log     *zap.Logger
}

// New builds a client for the repository at baseURL authenticating with a
// static bearer token.
func New(baseURL, token string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		log:     logger,
	}
}

// envelope is the repository's standard response wrapper.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// List fetches every item of a collection into out (a pointer to a slice).
func (c *Client) List(ctx context.Context, collection string, out any) error {
	return c.get(ctx, "/items/"+url.PathEscape(collection), out)
}

// ListFilter fetches the items whose field equals value, optionally limited
// to the named response fields.
func (c *Client) ListFilter(ctx context.Context, collection, field, value string, out any, fields ...string) error {
	q := url.Values{}
	q.Set(fmt.Sprintf("filter[%s][_eq]", field), value)
	if len(fields) > 0 {
		q.Set("fields", strings.Join(fields, ","))
	}
	path := "/items/" + url.PathEscape(collection) + "?" + q.Encode()
	return c.get(ctx, path, out)
}

// Create POSTs a new item and, when out is non-nil, decodes the created
// record (including its generated id) into it.
func (c *Client) Create(ctx context.Context, collection string, item, out any) error {
	return c.send(ctx, http.MethodPost, "/items/"+url.PathEscape(collection), item, out)
}

// Patch updates fields of an existing item by id. A nil field value in the
// patch map clears that field on the record.
func (c *Client) Patch(ctx context.Context, collection, id string, patch any) error {
	path := "/items/" + url.PathEscape(collection) + "/" + url.PathEscape(id)
	return c.send(ctx, http.MethodPatch, path, patch, nil)
}

// Ping verifies the repository answers at all. Used by the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/server/ping", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("cms ping: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 500 {
		return fmt.Errorf("cms ping: status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("cms %s %s: encode body: %w", method, path, err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("cms %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Read a little of the body for the log; repository errors carry
		// a JSON description.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Warn("cms request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", snippet),
		)
		return fmt.Errorf("cms %s %s: status %d", req.Method, req.URL.Path, resp.StatusCode)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("cms %s %s: decode envelope: %w", req.Method, req.URL.Path, err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("cms %s %s: decode data: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
