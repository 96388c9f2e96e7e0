package mockapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ovenworks/bakeryadmin/internal/hash"
	"github.com/ovenworks/bakeryadmin/internal/models"
)

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func (s *Server) ListUsers(c echo.Context) error {
	var users []models.User
	if err := s.DB.Order("id ASC").Find(&users).Error; err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to fetch users")
	}
	return c.JSON(http.StatusOK, users)
}

func (s *Server) GetUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid user id")
	}

	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		return errJSON(c, http.StatusNotFound, "user not found")
	}
	return c.JSON(http.StatusOK, user)
}

func (s *Server) CreateUser(c echo.Context) error {
	var payload models.UserPayload
	if err := c.Bind(&payload); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid request body")
	}
	if err := payload.Validate(true); err != nil {
		return errJSON(c, http.StatusBadRequest, err.Error())
	}

	var existing models.User
	if err := s.DB.Where("username = ?", payload.Username).First(&existing).Error; err == nil {
		return errJSON(c, http.StatusConflict, "username already exists")
	}

	hashed, err := hash.HashPassword(payload.Password)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to create user")
	}

	user := models.User{
		Username:     payload.Username,
		PasswordHash: hashed,
		Role:         payload.Role,
		IsActive:     payload.IsActive,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to create user")
	}
	return c.JSON(http.StatusCreated, user)
}

func (s *Server) UpdateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid user id")
	}

	var payload models.UserPayload
	if err := c.Bind(&payload); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid request body")
	}
	if err := payload.Validate(false); err != nil {
		return errJSON(c, http.StatusBadRequest, err.Error())
	}

	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		return errJSON(c, http.StatusNotFound, "user not found")
	}

	user.Username = payload.Username
	user.Role = payload.Role
	user.IsActive = payload.IsActive
	// Blank password means "leave unchanged".
	if payload.Password != "" {
		hashed, err := hash.HashPassword(payload.Password)
		if err != nil {
			return errJSON(c, http.StatusInternalServerError, "failed to update user")
		}
		user.PasswordHash = hashed
	}

	if err := s.DB.Save(&user).Error; err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to update user")
	}
	return c.JSON(http.StatusOK, user)
}

func (s *Server) DeleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid user id")
	}

	res := s.DB.Delete(&models.User{}, id)
	if res.Error != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to delete user")
	}
	if res.RowsAffected == 0 {
		return errJSON(c, http.StatusNotFound, "user not found")
	}
	return c.NoContent(http.StatusNoContent)
}
