// Package client is the Go consumer of the aroundb API. It owns the
// session lifecycle: Login stores the token through a pluggable
// TokenStore, every protected call attaches it as a Bearer header, and a
// 401 response clears the stored token so the caller knows to re-login.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUnauthorized is returned when the server rejects the session token.
// The stored token has already been cleared when this is returned.
var ErrUnauthorized = errors.New("session expired or invalid")

// APIError carries a non-2xx response through to the caller.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	About     string    `json:"about"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

type Card struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Owner     string    `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

type Client struct {
	baseURL string
	http    *http.Client
	store   TokenStore
}

func New(baseURL string, store TokenStore) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		store:   store,
	}
}

// Register creates an account. It does not log in; call Login next.
func (c *Client) Register(ctx context.Context, email, password string) (*User, error) {
	var user User
	err := c.do(ctx, http.MethodPost, "/signup", map[string]string{
		"email":    email,
		"password": password,
	}, false, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a token and saves it in the TokenStore.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/signin", map[string]string{
		"email":    email,
		"password": password,
	}, false, &resp)
	if err != nil {
		return err
	}
	return c.store.Save(resp.Token)
}

// Logout discards the stored token. Purely local; the token itself stays
// valid until expiry.
func (c *Client) Logout() error {
	return c.store.Clear()
}

func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, true, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/users", nil, true, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) User(ctx context.Context, id string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/users/"+id, nil, true, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateProfile(ctx context.Context, name, about string) (*User, error) {
	var user User
	err := c.do(ctx, http.MethodPatch, "/users/me", map[string]string{
		"name":  name,
		"about": about,
	}, true, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateAvatar(ctx context.Context, avatar string) (*User, error) {
	var user User
	err := c.do(ctx, http.MethodPatch, "/users/me/avatar", map[string]string{
		"avatar": avatar,
	}, true, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Cards(ctx context.Context) ([]Card, error) {
	var cards []Card
	if err := c.do(ctx, http.MethodGet, "/cards", nil, true, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *Client) CreateCard(ctx context.Context, name, link string) (*Card, error) {
	var card Card
	err := c.do(ctx, http.MethodPost, "/cards", map[string]string{
		"name": name,
		"link": link,
	}, true, &card)
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *Client) DeleteCard(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/cards/"+id, nil, true, nil)
}

func (c *Client) LikeCard(ctx context.Context, id string) (*Card, error) {
	var card Card
	if err := c.do(ctx, http.MethodPut, "/cards/"+id+"/likes", nil, true, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *Client) UnlikeCard(ctx context.Context, id string) (*Card, error) {
	var card Card
	if err := c.do(ctx, http.MethodDelete, "/cards/"+id+"/likes", nil, true, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, auth bool, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if auth {
		tok, err := c.store.Token()
		if err != nil {
			if errors.Is(err, ErrNoToken) {
				return ErrUnauthorized
			}
			return fmt.Errorf("read token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && auth {
		// The token was rejected; drop it so callers re-login.
		_ = c.store.Clear()
		return ErrUnauthorized
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var body struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			apiErr.Message = body.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
