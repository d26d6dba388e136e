package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jerseystore/storefront-go/domain"
	"github.com/jerseystore/storefront-go/validator"
)

// LoginInput holds the credentials for the login endpoint.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResult is the successful login response.
type LoginResult struct {
	AccessToken string
	User        domain.User
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	User        *userPayload `json:"user"`
}

// Login exchanges credentials for an access token and the user profile.
func (c *Client) Login(ctx context.Context, input LoginInput) (LoginResult, error) {
	if err := validator.Validate(input); err != nil {
		return LoginResult{}, fmt.Errorf("login: %w", err)
	}

	var resp loginResponse
	if err := c.do(ctx, "login", http.MethodPost, "/login", input, &resp, ""); err != nil {
		return LoginResult{}, fmt.Errorf("login: %w", err)
	}

	// An incomplete 2xx body is treated as a failed login, not a zero-value
	// session.
	if resp.AccessToken == "" || resp.User == nil {
		return LoginResult{}, fmt.Errorf("login: incomplete response from server")
	}
	user, err := resp.User.toDomain()
	if err != nil {
		return LoginResult{}, fmt.Errorf("login: %w", err)
	}

	return LoginResult{AccessToken: resp.AccessToken, User: user}, nil
}

// Profile validates a token by fetching the profile it belongs to.
func (c *Client) Profile(ctx context.Context, token string) (domain.User, error) {
	var payload userPayload
	if err := c.do(ctx, "profile", http.MethodGet, "/login/profile", nil, &payload, token); err != nil {
		return domain.User{}, fmt.Errorf("get profile: %w", err)
	}

	user, err := payload.toDomain()
	if err != nil {
		return domain.User{}, fmt.Errorf("get profile: %w", err)
	}
	return user, nil
}
