package api

import (
	"context"

	"github.com/amelnikov/learnly/internal/client/models"
)

// AuthAPI groups the authentication endpoints of the platform backend.
type AuthAPI struct {
	c *Client
}

// NewAuthAPI binds the auth endpoints to the given transport.
func NewAuthAPI(c *Client) *AuthAPI {
	return &AuthAPI{c: c}
}

// Login exchanges credentials for a token and user record.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	req := models.LoginRequest{Email: email, Password: password}
	var resp models.AuthResponse
	if err := a.c.Post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account and logs it in.
func (a *AuthAPI) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.c.Post(ctx, "/auth/signup", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateProfile submits the full (already merged) user record and returns
// the server's authoritative copy.
func (a *AuthAPI) UpdateProfile(ctx context.Context, user models.User) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.c.Put(ctx, "/auth/updateprofile", user, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Profile fetches the current user's profile.
func (a *AuthAPI) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := a.c.Get(ctx, "/auth/profile", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser fetches the generic "who am I" record.
func (a *AuthAPI) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := a.c.Get(ctx, "/users/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
