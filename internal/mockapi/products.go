package mockapi

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ovenworks/bakeryadmin/internal/models"
)

func (s *Server) ListProducts(c echo.Context) error {
	var products []models.Product
	if err := s.DB.Order("id ASC").Find(&products).Error; err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to fetch products")
	}
	return c.JSON(http.StatusOK, products)
}

func (s *Server) GetProduct(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid product id")
	}

	var product models.Product
	if err := s.DB.First(&product, id).Error; err != nil {
		return errJSON(c, http.StatusNotFound, "product not found")
	}
	return c.JSON(http.StatusOK, product)
}

func (s *Server) CreateProduct(c echo.Context) error {
	payload, err := bindProductForm(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, err.Error())
	}

	product := models.Product{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		CategoryID:  payload.CategoryID,
		Stock:       payload.Stock,
		IsActive:    payload.IsActive,
	}

	image, err := s.saveUpload(c)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to store image")
	}
	product.Image = image

	if err := s.DB.Create(&product).Error; err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to create product")
	}
	return c.JSON(http.StatusCreated, product)
}

func (s *Server) UpdateProduct(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid product id")
	}

	payload, err := bindProductForm(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, err.Error())
	}

	var product models.Product
	if err := s.DB.First(&product, id).Error; err != nil {
		return errJSON(c, http.StatusNotFound, "product not found")
	}

	product.Name = payload.Name
	product.Description = payload.Description
	product.Price = payload.Price
	product.CategoryID = payload.CategoryID
	product.Stock = payload.Stock
	product.IsActive = payload.IsActive

	// Image part absent means the stored image stays as it is.
	image, err := s.saveUpload(c)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to store image")
	}
	if image != "" {
		product.Image = image
	}

	if err := s.DB.Save(&product).Error; err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to update product")
	}
	return c.JSON(http.StatusOK, product)
}

func (s *Server) DeleteProduct(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid product id")
	}

	res := s.DB.Delete(&models.Product{}, id)
	if res.Error != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to delete product")
	}
	if res.RowsAffected == 0 {
		return errJSON(c, http.StatusNotFound, "product not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// bindProductForm reads the multipart fields; all values arrive as strings.
func bindProductForm(c echo.Context) (*models.ProductPayload, error) {
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		return nil, errInvalidField("price")
	}
	categoryID, err := strconv.ParseUint(c.FormValue("category_id"), 10, 32)
	if err != nil {
		return nil, errInvalidField("category_id")
	}
	stock, err := strconv.Atoi(c.FormValue("stock"))
	if err != nil {
		return nil, errInvalidField("stock")
	}
	isActive, err := strconv.ParseBool(c.FormValue("is_active"))
	if err != nil {
		return nil, errInvalidField("is_active")
	}

	payload := &models.ProductPayload{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       price,
		CategoryID:  uint(categoryID),
		Stock:       stock,
		IsActive:    isActive,
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	return payload, nil
}

func errInvalidField(name string) error {
	return fmt.Errorf("invalid value for %s", name)
}

// saveUpload stores the optional image part under the upload dir with a
// generated name and returns the public path, or "" when no part was sent.
func (s *Server) saveUpload(c echo.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	if err := os.MkdirAll(s.UploadDir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.UploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/public/uploads/" + name, nil
}
