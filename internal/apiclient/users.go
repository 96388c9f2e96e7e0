package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ovenworks/bakeryadmin/internal/models"
)

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := c.do(ctx, http.MethodGet, "/api/users", nil, "", true, "failed to fetch users", &users)
	return users, err
}

func (c *Client) GetUser(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil, "", true, "failed to fetch user", &user)
	return user, err
}

func (c *Client) CreateUser(ctx context.Context, payload models.UserPayload) (models.User, error) {
	var user models.User
	if err := payload.Validate(true); err != nil {
		return user, err
	}
	err := c.doJSON(ctx, http.MethodPost, "/api/users", payload, true, "failed to create user", &user)
	return user, err
}

func (c *Client) UpdateUser(ctx context.Context, id uint, payload models.UserPayload) (models.User, error) {
	var user models.User
	if err := payload.Validate(false); err != nil {
		return user, err
	}
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d", id), payload, true, "failed to update user", &user)
	return user, err
}

// DeleteUser returns the deleted identifier so callers can evict the record
// from local state.
func (c *Client) DeleteUser(ctx context.Context, id uint) (uint, error) {
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil, "", true, "failed to delete user", nil)
	if err != nil {
		return 0, err
	}
	return id, nil
}
