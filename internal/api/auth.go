package api

import (
	"context"
	"fmt"
)

// LoginRequest POST /User/Login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token payload returned on successful login.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role,omitempty"`
}

// RegisterRequest POST /User/Register body.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates and installs the returned token into the session.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.Post(ctx, "/User/Login", req, &out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, fmt.Errorf("login: backend returned no token")
	}
	if c.session != nil {
		if err := c.session.SetToken(out.Token); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

// Register creates a new account. The backend decides the role.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.Post(ctx, "/User/Register", req, nil)
}
