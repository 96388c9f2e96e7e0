package mockapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ovenworks/bakeryadmin/internal/models"
)

func (s *Server) ListCategories(c echo.Context) error {
	var categories []models.Category
	if err := s.DB.Order("id ASC").Find(&categories).Error; err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to fetch categories")
	}
	return c.JSON(http.StatusOK, categories)
}

func (s *Server) GetCategory(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid category id")
	}

	var category models.Category
	if err := s.DB.First(&category, id).Error; err != nil {
		return errJSON(c, http.StatusNotFound, "category not found")
	}
	return c.JSON(http.StatusOK, category)
}

func (s *Server) CreateCategory(c echo.Context) error {
	var payload models.CategoryPayload
	if err := c.Bind(&payload); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return errJSON(c, http.StatusBadRequest, err.Error())
	}

	category := models.Category{
		Title:    payload.Title,
		IsActive: payload.IsActive,
	}
	if err := s.DB.Create(&category).Error; err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to create category")
	}
	return c.JSON(http.StatusCreated, category)
}

func (s *Server) UpdateCategory(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid category id")
	}

	var payload models.CategoryPayload
	if err := c.Bind(&payload); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return errJSON(c, http.StatusBadRequest, err.Error())
	}

	var category models.Category
	if err := s.DB.First(&category, id).Error; err != nil {
		return errJSON(c, http.StatusNotFound, "category not found")
	}

	category.Title = payload.Title
	category.IsActive = payload.IsActive
	if err := s.DB.Save(&category).Error; err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to update category")
	}
	return c.JSON(http.StatusOK, category)
}

// DeleteCategory does not cascade into products; their category_id keeps
// pointing at the removed row and display layers resolve it as a fallback.
func (s *Server) DeleteCategory(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid category id")
	}

	res := s.DB.Delete(&models.Category{}, id)
	if res.Error != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to delete category")
	}
	if res.RowsAffected == 0 {
		return errJSON(c, http.StatusNotFound, "category not found")
	}
	return c.NoContent(http.StatusNoContent)
}
