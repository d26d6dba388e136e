package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jerseystore/storefront-go/domain"
	apperrors "github.com/jerseystore/storefront-go/errors"
	"github.com/jerseystore/storefront-go/validator"
)

// UpdateUserInput holds the editable profile fields. Empty fields are left
// unchanged by the backend.
type UpdateUserInput struct {
	Name  string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

// UpdatePasswordInput holds a new password.
type UpdatePasswordInput struct {
	Password string `json:"password" validate:"required,min=6"`
}

// The user-management endpoints answer with the users table shape, which
// names its key id_user rather than id.
type userRow struct {
	ID    *int64 `json:"id_user"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u userRow) toDomain() (domain.User, error) {
	if u.ID == nil || *u.ID <= 0 {
		return domain.User{}, fmt.Errorf("user row missing id_user")
	}
	return domain.User{
		ID:    *u.ID,
		Name:  u.Name,
		Email: u.Email,
	}, nil
}

type messageResponse struct {
	Message string `json:"message"`
}

// UpdateUser patches the user's name and/or email and returns the updated
// profile.
func (c *Client) UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (domain.User, error) {
	if input.Name == "" && input.Email == "" {
		return domain.User{}, apperrors.InvalidInput("nothing to update")
	}
	if err := validator.Validate(input); err != nil {
		return domain.User{}, fmt.Errorf("update user: %w", err)
	}

	var row userRow
	path := fmt.Sprintf("/users/%d", id)
	if err := c.do(ctx, "update_user", http.MethodPatch, path, input, &row, ""); err != nil {
		return domain.User{}, fmt.Errorf("update user %d: %w", id, err)
	}

	user, err := row.toDomain()
	if err != nil {
		return domain.User{}, fmt.Errorf("update user %d: %w", id, err)
	}
	return user, nil
}

// UpdatePassword changes the user's password and returns the backend's
// confirmation message.
func (c *Client) UpdatePassword(ctx context.Context, id int64, input UpdatePasswordInput) (string, error) {
	if err := validator.Validate(input); err != nil {
		return "", fmt.Errorf("update password: %w", err)
	}

	var resp messageResponse
	path := fmt.Sprintf("/users/update-password/%d", id)
	if err := c.do(ctx, "update_password", http.MethodPatch, path, input, &resp, ""); err != nil {
		return "", fmt.Errorf("update password for user %d: %w", id, err)
	}

	if resp.Message == "" {
		resp.Message = "password updated"
	}
	return resp.Message, nil
}
