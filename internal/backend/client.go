// Package backend is the typed HTTP client for the external retail API.
// The backend owns catalog, inventory and order state; this client only
// shuttles JSON and never caches.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tienda-storefront/internal/domain"
)

// APIError is a non-2xx response from the backend. Message carries the
// backend's own error body verbatim so forms can surface it unchanged.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a Client for the given base URL. A zero timeout disables the
// client-side deadline; callers still cancel through ctx.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Products lists the catalog, optionally filtered server-side by search.
func (c *Client) Products(ctx context.Context, search string) ([]domain.Product, error) {
	path := "/products"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}
	var out []domain.Product
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Product(ctx context.Context, id int64) (*domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, http.MethodPost, "/products", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, in domain.ProductInput) (*domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, http.MethodPatch, "/products/"+strconv.FormatInt(id, 10), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/products/"+strconv.FormatInt(id, 10), nil, nil)
}

func (c *Client) CreateOrder(ctx context.Context, in domain.OrderInput) (*domain.Order, error) {
	var out domain.Order
	if err := c.do(ctx, http.MethodPost, "/orders", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Orders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Order(ctx context.Context, id int64) (*domain.Order, error) {
	var out domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	body := map[string]string{"status": status}
	var out domain.Order
	if err := c.do(ctx, http.MethodPatch, "/orders/"+strconv.FormatInt(id, 10)+"/status", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Stats(ctx context.Context) (*domain.Stats, error) {
	var out domain.Stats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage extracts the backend's {"message": ...} body, falling back
// to the HTTP status text when the body is absent or not JSON.
func errorMessage(resp *http.Response) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return http.StatusText(resp.StatusCode)
}
