package mockapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/ovenworks/bakeryadmin/internal/hash"
	"github.com/ovenworks/bakeryadmin/internal/logging"
	"github.com/ovenworks/bakeryadmin/internal/models"
)

const tokenTTL = 24 * time.Hour

func (s *Server) Login(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "auth.login")

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid request body")
	}

	var user models.User
	err := s.DB.Where("username = ?", req.Username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		l.Warn("login_failed", "reason", "unknown username")
		return errJSON(c, http.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		l.Error("login_failed", "error", err)
		return errJSON(c, http.StatusInternalServerError, "login failed")
	}

	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		l.Warn("login_failed", "reason", "wrong password", "username", req.Username)
		return errJSON(c, http.StatusUnauthorized, "Invalid credentials")
	}
	if !user.IsActive {
		return errJSON(c, http.StatusForbidden, "account is disabled")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "login failed")
	}

	return c.JSON(http.StatusOK, models.LoginResponse{User: user, Token: token})
}

func (s *Server) issueToken(user models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.JWTSecret)
}

func (s *Server) requireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			return errJSON(c, http.StatusUnauthorized, "missing bearer token")
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return s.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			return errJSON(c, http.StatusUnauthorized, "invalid or expired token")
		}

		c.Set("claims", token.Claims)
		return next(c)
	}
}
