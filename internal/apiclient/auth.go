package apiclient

import (
	"context"
	"net/http"

	"github.com/ovenworks/bakeryadmin/internal/models"
)

// Login authenticates against the API. It is the only call that never
// attaches an Authorization header.
func (c *Client) Login(ctx context.Context, username, password string) (models.LoginResponse, error) {
	var res models.LoginResponse
	req := models.LoginRequest{Username: username, Password: password}
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", req, false, "login failed", &res)
	return res, err
}
