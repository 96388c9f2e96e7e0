package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ovenworks/bakeryadmin/internal/models"
)

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := c.do(ctx, http.MethodGet, "/api/products", nil, "", true, "failed to fetch products", &products)
	return products, err
}

func (c *Client) GetProduct(ctx context.Context, id uint) (models.Product, error) {
	var product models.Product
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, "", true, "failed to fetch product", &product)
	return product, err
}

// CreateProduct sends the product fields as a multipart form, with the image
// attached as a binary part when ImagePath is set.
func (c *Client) CreateProduct(ctx context.Context, payload models.ProductPayload) (models.Product, error) {
	var product models.Product
	if err := payload.Validate(); err != nil {
		return product, err
	}
	body, contentType, err := encodeProductForm(payload)
	if err != nil {
		return product, err
	}
	err = c.do(ctx, http.MethodPost, "/api/products", body, contentType, true, "failed to create product", &product)
	return product, err
}

func (c *Client) UpdateProduct(ctx context.Context, id uint, payload models.ProductPayload) (models.Product, error) {
	var product models.Product
	if err := payload.Validate(); err != nil {
		return product, err
	}
	body, contentType, err := encodeProductForm(payload)
	if err != nil {
		return product, err
	}
	err = c.do(ctx, http.MethodPut, fmt.Sprintf("/api/products/%d", id), body, contentType, true, "failed to update product", &product)
	return product, err
}

func (c *Client) DeleteProduct(ctx context.Context, id uint) (uint, error) {
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil, "", true, "failed to delete product", nil)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func encodeProductForm(payload models.ProductPayload) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := map[string]string{
		"name":        payload.Name,
		"description": payload.Description,
		"price":       strconv.FormatFloat(payload.Price, 'f', -1, 64),
		"category_id": strconv.FormatUint(uint64(payload.CategoryID), 10),
		"stock":       strconv.Itoa(payload.Stock),
		"is_active":   strconv.FormatBool(payload.IsActive),
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("encode form field %s: %w", name, err)
		}
	}

	if payload.ImagePath != "" {
		f, err := os.Open(payload.ImagePath)
		if err != nil {
			return nil, "", fmt.Errorf("open image: %w", err)
		}
		defer f.Close()

		part, err := w.CreateFormFile("image", filepath.Base(payload.ImagePath))
		if err != nil {
			return nil, "", fmt.Errorf("create image part: %w", err)
		}
		if _, err := io.Copy(part, f); err != nil {
			return nil, "", fmt.Errorf("copy image: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finish form: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}
