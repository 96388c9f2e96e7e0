package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ovenworks/bakeryadmin/internal/models"
)

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := c.do(ctx, http.MethodGet, "/api/categories", nil, "", true, "failed to fetch categories", &categories)
	return categories, err
}

func (c *Client) GetCategory(ctx context.Context, id uint) (models.Category, error) {
	var category models.Category
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/categories/%d", id), nil, "", true, "failed to fetch category", &category)
	return category, err
}

func (c *Client) CreateCategory(ctx context.Context, payload models.CategoryPayload) (models.Category, error) {
	var category models.Category
	if err := payload.Validate(); err != nil {
		return category, err
	}
	err := c.doJSON(ctx, http.MethodPost, "/api/categories", payload, true, "failed to create category", &category)
	return category, err
}

func (c *Client) UpdateCategory(ctx context.Context, id uint, payload models.CategoryPayload) (models.Category, error) {
	var category models.Category
	if err := payload.Validate(); err != nil {
		return category, err
	}
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/categories/%d", id), payload, true, "failed to update category", &category)
	return category, err
}

func (c *Client) DeleteCategory(ctx context.Context, id uint) (uint, error) {
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/categories/%d", id), nil, "", true, "failed to delete category", nil)
	if err != nil {
		return 0, err
	}
	return id, nil
}
