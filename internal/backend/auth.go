package backend

import (
	"context"
	"net/http"
)

// Credentials is the login/register request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is the backend's answer to a successful login or
// registration.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	resp := &AuthResponse{}
	if err := c.do(ctx, "", http.MethodPost, "/api/auth/login", nil, creds, resp, "log in"); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, &Error{Kind: KindInternal, Op: "log in"}
	}
	return resp, nil
}

// Register creates a new account and returns a bearer token for it.
func (c *Client) Register(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	resp := &AuthResponse{}
	if err := c.do(ctx, "", http.MethodPost, "/api/auth/register", nil, creds, resp, "register"); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, &Error{Kind: KindInternal, Op: "register"}
	}
	return resp, nil
}
