package api

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
)

// HTTPClient talks JSON over HTTP to the bucketlist server. The token
// obtained at login is attached to every subsequent request and dropped
// again on logout.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) IsLoggedIn() bool {
	return c.token != ""
}

// do performs a request and decodes the JSON response body into out when a
// 2xx status arrives. Other statuses are turned into sentinel errors.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		return json.NewDecoder(resp.Body).Decode(out)
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		var apiErr struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil {
			if apiErr.Error != "" {
				return fmt.Errorf("server error: %s", apiErr.Error)
			}
			if apiErr.Message != "" {
				return fmt.Errorf("server error: %s", apiErr.Message)
			}
		}
		return fmt.Errorf("server error: status %d", resp.StatusCode)
	}
}

func (c *HTTPClient) Register(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	return c.do(ctx, http.MethodPost, "/auth/register", body, nil)
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodGet, "/auth/logout", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

func (c *HTTPClient) Lists(ctx context.Context, search string) ([]BucketList, error) {
	path := "/bucketlists/"
	if search != "" {
		path += "?q=" + url.QueryEscape(search)
	}
	var lists []BucketList
	if err := c.do(ctx, http.MethodGet, path, nil, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

func (c *HTTPClient) CreateList(ctx context.Context, name string) (*BucketList, error) {
	var list BucketList
	if err := c.do(ctx, http.MethodPost, "/bucketlists/", map[string]string{"name": name}, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *HTTPClient) GetList(ctx context.Context, id int64) (*BucketList, error) {
	var list BucketList
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/bucketlists/%d", id), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *HTTPClient) DeleteList(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/bucketlists/%d", id), nil, nil)
}

func (c *HTTPClient) AddItem(ctx context.Context, listID int64, name string) (*BucketList, error) {
	var list BucketList
	path := fmt.Sprintf("/bucketlists/%d/items/", listID)
	if err := c.do(ctx, http.MethodPost, path, map[string]string{"name": name}, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *HTTPClient) SetItemDone(ctx context.Context, listID, itemID int64, done string) (*BucketListItem, error) {
	var item BucketListItem
	path := fmt.Sprintf("/bucketlists/%d/items/%d", listID, itemID)
	if err := c.do(ctx, http.MethodPut, path, map[string]string{"done": done}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
