// Package catalog talks to the remote recipe collection resource.
package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"recipebox/webclient/internal/model"
)

// Client is the fetch layer. It never retries.
type Client interface {
	List(ctx context.Context) ([]model.Recipe, error)
	Create(ctx context.Context, in model.RecipeInput) error
	Update(ctx context.Context, id model.RecipeID, in model.RecipeInput) error
	Delete(ctx context.Context, id model.RecipeID) error
}

type httpClient struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the collection at baseURL. A zero timeout
// leaves requests unbounded apart from the caller's context.
func NewClient(baseURL string, timeout time.Duration) Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

func NewClientWithHTTP(baseURL string, hc *http.Client) Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

func (c *httpClient) itemURL(id model.RecipeID) string {
	return c.baseURL + "/" + url.PathEscape(id.String())
}

func (c *httpClient) List(ctx context.Context) ([]model.Recipe, error) {
	body, _, err := c.do(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}

	var recipes []model.Recipe
	if err := json.Unmarshal(body, &recipes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if recipes == nil {
		recipes = []model.Recipe{}
	}
	return recipes, nil
}

func (c *httpClient) Create(ctx context.Context, in model.RecipeInput) error {
	return c.write(ctx, http.MethodPost, c.baseURL, in)
}

func (c *httpClient) Update(ctx context.Context, id model.RecipeID, in model.RecipeInput) error {
	if id == "" {
		return ErrEmptyID
	}
	return c.write(ctx, http.MethodPut, c.itemURL(id), in)
}

// Delete judges success by status code alone; the body is ignored.
func (c *httpClient) Delete(ctx context.Context, id model.RecipeID) error {
	if id == "" {
		return ErrEmptyID
	}
	_, status, err := c.do(ctx, http.MethodDelete, c.itemURL(id), nil)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return ErrDeleteFailed
	}
	return nil
}

// write sends a create or update. The HTTP status is not consulted; failure
// is signalled by an error field in the decoded body.
func (c *httpClient) write(ctx context.Context, method, target string, in model.RecipeInput) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode recipe: %w", err)
	}

	body, _, err := c.do(ctx, method, target, payload)
	if err != nil {
		return err
	}

	var result struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if truthy(result.Error) {
		return &APIError{Message: result.Message}
	}
	return nil
}

func (c *httpClient) do(ctx context.Context, method, target string, payload []byte) ([]byte, int, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}
	return body, resp.StatusCode, nil
}

// truthy mirrors a loose boolean check on a raw json value: absent, null,
// false, 0 and "" are all falsy.
func truthy(raw json.RawMessage) bool {
	v := strings.TrimSpace(string(raw))
	switch v {
	case "", "null", "false", "0", `""`:
		return false
	}
	return true
}
