package apiclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenworks/bakeryadmin/internal/models"
)

func TestBearerTokenAttachment(t *testing.T) {
	var gotAuth string
	e := echo.New()
	e.GET("/api/users", func(c echo.Context) error {
		gotAuth = c.Request().Header.Get(echo.HeaderAuthorization)
		return c.JSON(http.StatusOK, []models.User{})
	})
	e.POST("/api/auth/login", func(c echo.Context) error {
		gotAuth = c.Request().Header.Get(echo.HeaderAuthorization)
		return c.JSON(http.StatusOK, models.LoginResponse{Token: "issued"})
	})
	ts := httptest.NewServer(e)
	defer ts.Close()

	client := New(ts.URL, StaticToken("abc123"))

	_, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)

	// Login never carries the header, token or not.
	_, err = client.Login(context.Background(), "admin", "pw")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestNoHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	var headerPresent bool
	e := echo.New()
	e.GET("/api/products", func(c echo.Context) error {
		gotAuth = c.Request().Header.Get(echo.HeaderAuthorization)
		_, headerPresent = c.Request().Header[echo.HeaderAuthorization]
		return c.JSON(http.StatusOK, []models.Product{})
	})
	ts := httptest.NewServer(e)
	defer ts.Close()

	client := New(ts.URL, StaticToken(""))

	_, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.False(t, headerPresent, "absence of a token means no header at all")
}

func TestErrorMessageFromBody(t *testing.T) {
	e := echo.New()
	e.POST("/api/auth/login", func(c echo.Context) error {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
	})
	ts := httptest.NewServer(e)
	defer ts.Close()

	client := New(ts.URL, StaticToken(""))

	_, err := client.Login(context.Background(), "admin", "wrongpass")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestErrorFallbackWhenBodyLacksMessage(t *testing.T) {
	e := echo.New()
	e.GET("/api/users", func(c echo.Context) error {
		return c.String(http.StatusInternalServerError, "<html>oops</html>")
	})
	ts := httptest.NewServer(e)
	defer ts.Close()

	client := New(ts.URL, StaticToken("tok"))

	_, err := client.ListUsers(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "failed to fetch users", apiErr.Message)
}

func TestNotFoundSentinel(t *testing.T) {
	e := echo.New()
	e.GET("/api/products/:id", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	})
	ts := httptest.NewServer(e)
	defer ts.Close()

	client := New(ts.URL, StaticToken("tok"))

	_, err := client.GetProduct(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "product not found")
}

func TestDeleteReturnsIdentifier(t *testing.T) {
	e := echo.New()
	e.DELETE("/api/categories/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	ts := httptest.NewServer(e)
	defer ts.Close()

	client := New(ts.URL, StaticToken("tok"))

	id, err := client.DeleteCategory(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)
}

func TestProductMultipartEncoding(t *testing.T) {
	var form map[string]string
	var imageName string
	var imageBody []byte

	e := echo.New()
	e.POST("/api/products", func(c echo.Context) error {
		form = map[string]string{
			"name":        c.FormValue("name"),
			"description": c.FormValue("description"),
			"price":       c.FormValue("price"),
			"category_id": c.FormValue("category_id"),
			"stock":       c.FormValue("stock"),
			"is_active":   c.FormValue("is_active"),
		}
		if file, err := c.FormFile("image"); err == nil {
			imageName = file.Filename
			src, err := file.Open()
			require.NoError(t, err)
			defer src.Close()
			imageBody, err = io.ReadAll(src)
			require.NoError(t, err)
		}
		return c.JSON(http.StatusCreated, models.Product{ID: 1, Name: c.FormValue("name"), Price: 2.5, CategoryID: 3, IsActive: true, Image: "/public/uploads/x.png"})
	})
	ts := httptest.NewServer(e)
	defer ts.Close()

	imgPath := filepath.Join(t.TempDir(), "baguette.png")
	require.NoError(t, os.WriteFile(imgPath, []byte("png-bytes"), 0o644))

	client := New(ts.URL, StaticToken("tok"))
	product, err := client.CreateProduct(context.Background(), models.ProductPayload{
		Name:        "Baguette",
		Description: "day fresh",
		Price:       2.5,
		CategoryID:  3,
		Stock:       5,
		IsActive:    true,
		ImagePath:   imgPath,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), product.ID)

	assert.Equal(t, "Baguette", form["name"])
	assert.Equal(t, "day fresh", form["description"])
	assert.Equal(t, "2.5", form["price"])
	assert.Equal(t, "3", form["category_id"])
	assert.Equal(t, "5", form["stock"])
	assert.Equal(t, "true", form["is_active"])
	assert.Equal(t, "baguette.png", imageName)
	assert.Equal(t, []byte("png-bytes"), imageBody)
}

func TestProductWithoutImageOmitsPart(t *testing.T) {
	var hadImage bool
	e := echo.New()
	e.PUT("/api/products/:id", func(c echo.Context) error {
		_, err := c.FormFile("image")
		hadImage = err == nil
		return c.JSON(http.StatusOK, models.Product{ID: 3, Name: c.FormValue("name"), Price: 1, CategoryID: 1, IsActive: true})
	})
	ts := httptest.NewServer(e)
	defer ts.Close()

	client := New(ts.URL, StaticToken("tok"))
	_, err := client.UpdateProduct(context.Background(), 3, models.ProductPayload{
		Name:       "Baguette",
		Price:      1,
		CategoryID: 1,
	})
	require.NoError(t, err)
	assert.False(t, hadImage, "unchanged image means no image part")
}

func TestValidationRunsBeforeRequest(t *testing.T) {
	var hits int
	e := echo.New()
	e.POST("/api/products", func(c echo.Context) error {
		hits++
		return c.JSON(http.StatusCreated, models.Product{})
	})
	ts := httptest.NewServer(e)
	defer ts.Close()

	client := New(ts.URL, StaticToken("tok"))

	_, err := client.CreateProduct(context.Background(), models.ProductPayload{Name: "Baguette", Price: 0, CategoryID: 1})
	require.EqualError(t, err, "price must be greater than zero")
	assert.Zero(t, hits, "invalid payloads never reach the network")
}

func TestImageURL(t *testing.T) {
	client := New("http://localhost:4000/", StaticToken(""))

	assert.Equal(t, "", client.ImageURL(""))
	assert.Equal(t, "http://localhost:4000/public/uploads/a.png", client.ImageURL("/public/uploads/a.png"))
	assert.Equal(t, "http://localhost:4000/public/uploads/a.png", client.ImageURL("public/uploads/a.png"))
	assert.Equal(t, "https://cdn.example.com/a.png", client.ImageURL("https://cdn.example.com/a.png"))
}
