package mockapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenworks/bakeryadmin/internal/hash"
	"github.com/ovenworks/bakeryadmin/internal/models"
)

type testEnv struct {
	srv *Server
	ts  *httptest.Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	db, err := OpenDB("", filepath.Join(dir, "mockapi.db"))
	require.NoError(t, err)
	require.NoError(t, Seed(db, "admin123"))

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	srv := New(db, []byte("test-secret"), filepath.Join(dir, "uploads"), logger)
	ts := httptest.NewServer(srv.Echo())
	t.Cleanup(ts.Close)

	return &testEnv{srv: srv, ts: ts}
}

func (env *testEnv) doJSON(t *testing.T, method, path, token string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, env.ts.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func loginAdmin(t *testing.T, env *testEnv) string {
	t.Helper()
	resp := env.doJSON(t, http.MethodPost, "/api/auth/login", "", models.LoginRequest{Username: "admin", Password: "admin123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	res := decodeBody[models.LoginResponse](t, resp)
	require.NotEmpty(t, res.Token)
	return res.Token
}

func TestLoginIssuesTokenAndUser(t *testing.T) {
	env := newTestEnv(t)

	resp := env.doJSON(t, http.MethodPost, "/api/auth/login", "", models.LoginRequest{Username: "admin", Password: "admin123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	res := decodeBody[models.LoginResponse](t, resp)
	assert.Equal(t, "admin", res.User.Username)
	assert.Equal(t, models.RoleAdmin, res.User.Role)
	assert.NotEmpty(t, res.Token)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	env := newTestEnv(t)

	resp := env.doJSON(t, http.MethodPost, "/api/auth/login", "", models.LoginRequest{Username: "admin", Password: "wrongpass"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "Invalid credentials", body["error"])
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	env := newTestEnv(t)

	hashed, err := hash.HashPassword("pw")
	require.NoError(t, err)
	require.NoError(t, env.srv.DB.Create(&models.User{
		Username:     "ghost",
		PasswordHash: hashed,
		Role:         models.RoleClerk,
		IsActive:     false,
	}).Error)

	resp := env.doJSON(t, http.MethodPost, "/api/auth/login", "", models.LoginRequest{Username: "ghost", Password: "pw"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestUsersRequireToken(t *testing.T) {
	env := newTestEnv(t)

	resp := env.doJSON(t, http.MethodGet, "/api/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = env.doJSON(t, http.MethodGet, "/api/users", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestCatalogReadsArePublic(t *testing.T) {
	env := newTestEnv(t)

	resp := env.doJSON(t, http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.doJSON(t, http.MethodGet, "/api/categories", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestUserCRUD(t *testing.T) {
	env := newTestEnv(t)
	token := loginAdmin(t, env)

	resp := env.doJSON(t, http.MethodPost, "/api/users", token, models.UserPayload{
		Username: "berna",
		Password: "s3cret",
		Role:     models.RoleSupervisor,
		IsActive: true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[models.User](t, resp)
	assert.NotZero(t, created.ID)
	assert.Equal(t, models.RoleSupervisor, created.Role)

	// The password never appears in a fetched record.
	resp = env.doJSON(t, http.MethodGet, "/api/users", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "s3cret")

	resp = env.doJSON(t, http.MethodPut, "/api/users/2", token, models.UserPayload{
		Username: "berna",
		Role:     models.RoleClerk,
		IsActive: false,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[models.User](t, resp)
	assert.Equal(t, models.RoleClerk, updated.Role)
	assert.False(t, updated.IsActive)

	// Blank password on update keeps the stored hash.
	var stored models.User
	require.NoError(t, env.srv.DB.First(&stored, created.ID).Error)
	assert.True(t, hash.CheckPassword(stored.PasswordHash, "s3cret"))

	resp = env.doJSON(t, http.MethodDelete, "/api/users/2", token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = env.doJSON(t, http.MethodDelete, "/api/users/2", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestDuplicateUsernameConflicts(t *testing.T) {
	env := newTestEnv(t)
	token := loginAdmin(t, env)

	payload := models.UserPayload{Username: "berna", Password: "pw", Role: models.RoleClerk, IsActive: true}

	resp := env.doJSON(t, http.MethodPost, "/api/users", token, payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.doJSON(t, http.MethodPost, "/api/users", token, payload)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "username already exists", body["error"])
}

func TestCategoryValidation(t *testing.T) {
	env := newTestEnv(t)
	token := loginAdmin(t, env)

	resp := env.doJSON(t, http.MethodPost, "/api/categories", token, models.CategoryPayload{Title: "  "})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "title is required", body["error"])
}

func productForm(t *testing.T, fields map[string]string, imageName string, image []byte) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	if imageName != "" {
		part, err := w.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func TestProductCreateWithImage(t *testing.T) {
	env := newTestEnv(t)
	token := loginAdmin(t, env)

	resp := env.doJSON(t, http.MethodPost, "/api/categories", token, models.CategoryPayload{Title: "Breads", IsActive: true})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	cat := decodeBody[models.Category](t, resp)

	body, contentType := productForm(t, map[string]string{
		"name":        "Baguette",
		"description": "day fresh",
		"price":       "2.5",
		"category_id": "1",
		"stock":       "5",
		"is_active":   "true",
	}, "baguette.png", []byte("png-bytes"))

	req, err := http.NewRequest(http.MethodPost, env.ts.URL+"/api/products", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	httpResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, httpResp.StatusCode)

	product := decodeBody[models.Product](t, httpResp)
	assert.Equal(t, "Baguette", product.Name)
	assert.Equal(t, 2.5, product.Price)
	assert.Equal(t, cat.ID, product.CategoryID)
	assert.Equal(t, 5, product.Stock)
	require.True(t, strings.HasPrefix(product.Image, "/public/uploads/"), "image served from the static path, got %q", product.Image)

	// The upload is served back from the public path.
	imgResp, err := http.Get(env.ts.URL + product.Image)
	require.NoError(t, err)
	defer imgResp.Body.Close()
	require.Equal(t, http.StatusOK, imgResp.StatusCode)
	served, err := io.ReadAll(imgResp.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), served)
}

func TestProductUpdateWithoutImageKeepsIt(t *testing.T) {
	env := newTestEnv(t)
	token := loginAdmin(t, env)

	require.NoError(t, env.srv.DB.Create(&models.Product{
		Name: "Baguette", Price: 2.5, CategoryID: 1, Stock: 5, IsActive: true, Image: "/public/uploads/old.png",
	}).Error)

	body, contentType := productForm(t, map[string]string{
		"name":        "Baguette",
		"description": "",
		"price":       "2.5",
		"category_id": "1",
		"stock":       "0",
		"is_active":   "true",
	}, "", nil)

	req, err := http.NewRequest(http.MethodPut, env.ts.URL+"/api/products/1", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	product := decodeBody[models.Product](t, resp)
	assert.Equal(t, 0, product.Stock)
	assert.Equal(t, "/public/uploads/old.png", product.Image)
}

func TestProductValidation(t *testing.T) {
	env := newTestEnv(t)
	token := loginAdmin(t, env)

	body, contentType := productForm(t, map[string]string{
		"name":        "Baguette",
		"description": "",
		"price":       "0",
		"category_id": "1",
		"stock":       "5",
		"is_active":   "true",
	}, "", nil)

	req, err := http.NewRequest(http.MethodPost, env.ts.URL+"/api/products", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errBody := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "price must be greater than zero", errBody["error"])
}

func TestCategoryDeleteLeavesProductsDangling(t *testing.T) {
	env := newTestEnv(t)
	token := loginAdmin(t, env)

	resp := env.doJSON(t, http.MethodPost, "/api/categories", token, models.CategoryPayload{Title: "Breads", IsActive: true})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	cat := decodeBody[models.Category](t, resp)

	require.NoError(t, env.srv.DB.Create(&models.Product{
		Name: "Baguette", Price: 2.5, CategoryID: cat.ID, Stock: 5, IsActive: true,
	}).Error)

	resp = env.doJSON(t, http.MethodDelete, "/api/categories/1", token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	var product models.Product
	require.NoError(t, env.srv.DB.First(&product).Error)
	assert.Equal(t, cat.ID, product.CategoryID, "no cascade: the reference stays dangling")
}
