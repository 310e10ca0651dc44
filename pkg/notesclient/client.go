// Package notesclient is a small HTTP client for the notes API.
package notesclient

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

	"github.com/evgeniy-krivenko/notes-api/internal/entity"
)

// APIError is returned for every response outside the 2xx range.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notes api: %d %s: %s", e.StatusCode, e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}

	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

type NoteList struct {
	Results int           `json:"results"`
	Notes   []entity.Note `json:"notes"`
}

type UserList struct {
	Results int           `json:"results"`
	Users   []entity.User `json:"users"`
}

type CreateNoteRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Category *string `json:"category,omitempty"`
}

type CreateUserRequest struct {
	Name        *string `json:"name,omitempty"`
	DisplayName *string `json:"display_name,omitempty"`
	Email       *string `json:"email,omitempty"`
}

// Health returns the message of the health endpoint.
func (c *Client) Health(ctx context.Context) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &out); err != nil {
		return "", err
	}

	return out.Message, nil
}

// ListNotes fetches one page. Zero page or limit lets the server pick.
func (c *Client) ListNotes(ctx context.Context, page, limit int) (NoteList, error) {
	var out NoteList
	err := c.do(ctx, http.MethodGet, "/api/notes"+pageQuery(page, limit), nil, &out)

	return out, err
}

func (c *Client) CreateNote(ctx context.Context, req CreateNoteRequest) (entity.Note, error) {
	var out struct {
		Data struct {
			Note entity.Note `json:"note"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/notes", req, &out); err != nil {
		return entity.Note{}, err
	}

	return out.Data.Note, nil
}

func (c *Client) ListUsers(ctx context.Context, page, limit int) (UserList, error) {
	var out UserList
	err := c.do(ctx, http.MethodGet, "/api/users"+pageQuery(page, limit), nil, &out)

	return out, err
}

func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (entity.User, error) {
	var out struct {
		Data struct {
			User entity.User `json:"user"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/users", req, &out); err != nil {
		return entity.User{}, err
	}

	return out.Data.User, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("new request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&env)

		return &APIError{StatusCode: resp.StatusCode, Status: env.Status, Message: env.Message}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %v", err)
	}

	return nil
}

func pageQuery(page, limit int) string {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if len(q) == 0 {
		return ""
	}

	return "?" + q.Encode()
}
